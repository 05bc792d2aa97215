package main

import (
	"context"
	"errors"
	"log"

	"recipebox/internal/auth"
	"recipebox/internal/config"
	"recipebox/internal/db"
	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

var starterCategories = []string{
	"Breakfast", "Soup", "Salad", "Main course", "Dessert", "Drinks",
}

var starterIngredients = []model.Ingredient{
	{Name: "Egg", CaloriesPer100g: intPtr(155)},
	{Name: "Flour", CaloriesPer100g: intPtr(364)},
	{Name: "Milk", CaloriesPer100g: intPtr(42)},
	{Name: "Butter", CaloriesPer100g: intPtr(717)},
	{Name: "Sugar", CaloriesPer100g: intPtr(387)},
	{Name: "Salt"},
	{Name: "Olive oil", CaloriesPer100g: intPtr(884)},
	{Name: "Tomato", CaloriesPer100g: intPtr(18)},
	{Name: "Onion", CaloriesPer100g: intPtr(40)},
	{Name: "Chicken breast", CaloriesPer100g: intPtr(165)},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.SavedRecipe{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	ingredientRepo := repository.NewIngredientRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created, skipped := 0, 0
	for _, name := range starterCategories {
		err := categoryRepo.Create(ctx, &model.Category{Name: name})
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrCategoryExists):
			skipped++
		default:
			log.Fatalf("Failed to seed category %q: %v", name, err)
		}
	}
	log.Printf("Categories: %d created, %d already present", created, skipped)

	created, skipped = 0, 0
	for _, ingredient := range starterIngredients {
		ingredient := ingredient
		err := ingredientRepo.Create(ctx, &ingredient)
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrIngredientExists):
			skipped++
		default:
			log.Fatalf("Failed to seed ingredient %q: %v", ingredient.Name, err)
		}
	}
	log.Printf("Ingredients: %d created, %d already present", created, skipped)

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	digest, err := hasher.Hash("demo-password")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	demo := &model.User{
		Username:     "demo",
		Email:        "demo@recipebox.local",
		PasswordHash: digest,
	}
	switch err := userRepo.Create(ctx, demo); {
	case err == nil:
		log.Printf("Demo user created: %s", demo.Email)
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Printf("Demo user already present: %s", demo.Email)
	default:
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func intPtr(v int) *int {
	return &v
}
