package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/service"
)

// IngredientHandler handles ingredient endpoints.
type IngredientHandler struct {
	ingredientService service.IngredientService
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// IngredientRequest represents an ingredient create or full-update payload.
type IngredientRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	CaloriesPer100g *int   `json:"calories_per_100g" validate:"omitempty,min=0"`
}

// PatchIngredientRequest represents a partial ingredient update.
type PatchIngredientRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=100"`
	CaloriesPer100g *int    `json:"calories_per_100g" validate:"omitempty,min=0"`
}

// Create godoc
// @Summary Create an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param request body IngredientRequest true "Ingredient data"
// @Success 201 {object} model.Ingredient
// @Failure 400 {object} errors.ErrorResponse
// @Router /ingredients [post]
func (h *IngredientHandler) Create(c echo.Context) error {
	var req IngredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ingredient, err := h.ingredientService.Create(c.Request().Context(), service.IngredientInput{
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, ingredient)
}

// List godoc
// @Summary List all ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} model.Ingredient
// @Router /ingredients [get]
func (h *IngredientHandler) List(c echo.Context) error {
	ingredients, err := h.ingredientService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ingredients)
}

// Get godoc
// @Summary Get an ingredient by id
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} model.Ingredient
// @Failure 404 {object} errors.ErrorResponse
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ingredient, err := h.ingredientService.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ingredient)
}

// Update godoc
// @Summary Replace an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param request body IngredientRequest true "Ingredient data"
// @Success 200 {object} model.Ingredient
// @Failure 404 {object} errors.ErrorResponse
// @Router /ingredients/{id} [put]
func (h *IngredientHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req IngredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ingredient, err := h.ingredientService.Update(c.Request().Context(), id, service.IngredientInput{
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ingredient)
}

// Patch godoc
// @Summary Partially update an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param request body PatchIngredientRequest true "Fields to update"
// @Success 200 {object} model.Ingredient
// @Failure 404 {object} errors.ErrorResponse
// @Router /ingredients/{id} [patch]
func (h *IngredientHandler) Patch(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req PatchIngredientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ingredient, err := h.ingredientService.Patch(c.Request().Context(), id, service.IngredientPatch{
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, ingredient)
}

// Delete godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Security BearerAuth
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ingredientService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
