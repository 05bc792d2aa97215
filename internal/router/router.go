package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipebox/internal/handler"
)

// Register wires routes and middleware. authMW guards the routes that
// require a bearer token; every guarded route rejects with 401 before the
// handler executes any effect.
func Register(
	e *echo.Echo,
	authMW echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	ingredientHandler *handler.IngredientHandler,
	recipeHandler *handler.RecipeHandler,
	recipeIngredientHandler *handler.RecipeIngredientHandler,
	savedRecipeHandler *handler.SavedRecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/auth/login", authHandler.Login)

	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.PATCH("/users/:id", userHandler.Patch)
	e.DELETE("/users/:id", userHandler.Delete, authMW)

	e.POST("/categories", categoryHandler.Create)
	e.GET("/categories", categoryHandler.List)
	e.GET("/categories/:id", categoryHandler.Get)
	e.PUT("/categories/:id", categoryHandler.Update)
	e.DELETE("/categories/:id", categoryHandler.Delete, authMW)

	e.POST("/ingredients", ingredientHandler.Create)
	e.GET("/ingredients", ingredientHandler.List)
	e.GET("/ingredients/:id", ingredientHandler.Get)
	e.PUT("/ingredients/:id", ingredientHandler.Update)
	e.PATCH("/ingredients/:id", ingredientHandler.Patch)
	e.DELETE("/ingredients/:id", ingredientHandler.Delete, authMW)

	e.POST("/recipes", recipeHandler.Create, authMW)
	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/:id", recipeHandler.Get)
	e.PUT("/recipes/:id", recipeHandler.Update)
	e.PATCH("/recipes/:id", recipeHandler.Patch)
	e.DELETE("/recipes/:id", recipeHandler.Delete, authMW)

	e.POST("/recipe_ingredients", recipeIngredientHandler.Create, authMW)
	e.GET("/recipe_ingredients", recipeIngredientHandler.List)
	e.GET("/recipe_ingredients/:recipe_id/:ingredient_id", recipeIngredientHandler.Get)
	e.PATCH("/recipe_ingredients/:recipe_id/:ingredient_id", recipeIngredientHandler.Patch)
	e.DELETE("/recipe_ingredients/:recipe_id/:ingredient_id", recipeIngredientHandler.Delete, authMW)

	e.POST("/saved_recipes", savedRecipeHandler.Create, authMW)
	e.GET("/saved_recipes", savedRecipeHandler.List)
	e.GET("/saved_recipes/:id", savedRecipeHandler.Get)
	e.DELETE("/saved_recipes/:id", savedRecipeHandler.Delete, authMW)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
