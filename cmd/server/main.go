package main

import (
	"log"
	"net/http"
	"os"

	_ "recipebox/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"recipebox/internal/auth"
	"recipebox/internal/cache"
	"recipebox/internal/config"
	"recipebox/internal/db"
	"recipebox/internal/handler"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/router"
	"recipebox/internal/service"
)

// @title Recipe Catalog API
// @version 1.0
// @description Recipe catalog API with users, categories, ingredients, recipes, recipe-ingredient links, saved-recipe bookmarks and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.SavedRecipe{},
			&model.RecipeIngredient{},
			&model.Recipe{},
			&model.Ingredient{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.SavedRecipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)
	recipeIngredientRepo := repository.NewRecipeIngredientRepository(gormDB)
	savedRecipeRepo := repository.NewSavedRecipeRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, hasher)
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo)
	ingredientService := service.NewIngredientService(ingredientRepo)
	recipeService := service.NewRecipeService(recipeRepo, cacheClient)
	recipeIngredientService := service.NewRecipeIngredientService(recipeIngredientRepo)
	savedRecipeService := service.NewSavedRecipeService(savedRecipeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	recipeIngredientHandler := handler.NewRecipeIngredientHandler(recipeIngredientService)
	savedRecipeHandler := handler.NewSavedRecipeHandler(savedRecipeService)

	// Register routes behind the access guard where required
	authMW := auth.Middleware(jwtService, userRepo)
	router.Register(
		e,
		authMW,
		authHandler,
		userHandler,
		categoryHandler,
		ingredientHandler,
		recipeHandler,
		recipeIngredientHandler,
		savedRecipeHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
