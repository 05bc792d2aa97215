package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// RecipeIngredientHandler handles recipe-ingredient link endpoints. Links
// are addressed by the (recipe_id, ingredient_id) pair, not a synthetic id.
type RecipeIngredientHandler struct {
	linkService service.RecipeIngredientService
}

// NewRecipeIngredientHandler creates a new recipe-ingredient handler.
func NewRecipeIngredientHandler(linkService service.RecipeIngredientService) *RecipeIngredientHandler {
	return &RecipeIngredientHandler{linkService: linkService}
}

// CreateRecipeIngredientRequest represents a link creation payload.
type CreateRecipeIngredientRequest struct {
	RecipeID     uint   `json:"recipe_id" validate:"required,gt=0"`
	IngredientID uint   `json:"ingredient_id" validate:"required,gt=0"`
	Amount       string `json:"amount" validate:"required,max=50"`
}

// PatchRecipeIngredientRequest represents a partial link update. Only the
// amount is updatable; the key pair is the row's identity.
type PatchRecipeIngredientRequest struct {
	Amount *string `json:"amount" validate:"omitempty,max=50"`
}

// Create godoc
// @Summary Add an ingredient to a recipe
// @Tags recipe_ingredients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRecipeIngredientRequest true "Link data"
// @Success 201 {object} model.RecipeIngredient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe_ingredients [post]
func (h *RecipeIngredientHandler) Create(c echo.Context) error {
	var req CreateRecipeIngredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	link, err := h.linkService.Create(c.Request().Context(), req.RecipeID, req.IngredientID, req.Amount)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, link)
}

// List godoc
// @Summary List all recipe-ingredient links
// @Tags recipe_ingredients
// @Produce json
// @Success 200 {array} model.RecipeIngredient
// @Router /recipe_ingredients [get]
func (h *RecipeIngredientHandler) List(c echo.Context) error {
	links, err := h.linkService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, links)
}

// Get godoc
// @Summary Get a link by its (recipe, ingredient) pair
// @Tags recipe_ingredients
// @Produce json
// @Param recipe_id path int true "Recipe ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 200 {object} model.RecipeIngredient
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe_ingredients/{recipe_id}/{ingredient_id} [get]
func (h *RecipeIngredientHandler) Get(c echo.Context) error {
	recipeID, err := parseID(c, "recipe_id")
	if err != nil {
		return err
	}
	ingredientID, err := parseID(c, "ingredient_id")
	if err != nil {
		return err
	}

	link, err := h.linkService.Get(c.Request().Context(), recipeID, ingredientID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, link)
}

// Patch godoc
// @Summary Update the amount of a link
// @Tags recipe_ingredients
// @Accept json
// @Produce json
// @Param recipe_id path int true "Recipe ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Param request body PatchRecipeIngredientRequest true "Fields to update"
// @Success 200 {object} model.RecipeIngredient
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe_ingredients/{recipe_id}/{ingredient_id} [patch]
func (h *RecipeIngredientHandler) Patch(c echo.Context) error {
	recipeID, err := parseID(c, "recipe_id")
	if err != nil {
		return err
	}
	ingredientID, err := parseID(c, "ingredient_id")
	if err != nil {
		return err
	}
	var req PatchRecipeIngredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	link, err := h.linkService.Patch(c.Request().Context(), recipeID, ingredientID, req.Amount)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, link)
}

// Delete godoc
// @Summary Remove an ingredient from a recipe
// @Tags recipe_ingredients
// @Security BearerAuth
// @Param recipe_id path int true "Recipe ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe_ingredients/{recipe_id}/{ingredient_id} [delete]
func (h *RecipeIngredientHandler) Delete(c echo.Context) error {
	recipeID, err := parseID(c, "recipe_id")
	if err != nil {
		return err
	}
	ingredientID, err := parseID(c, "ingredient_id")
	if err != nil {
		return err
	}
	if err := h.linkService.Delete(c.Request().Context(), recipeID, ingredientID); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
