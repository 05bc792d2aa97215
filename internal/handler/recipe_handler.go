package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	recipeService service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(recipeService service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// RecipeRequest represents a recipe create or full-update payload. There is
// no author field: the author is the authenticated caller.
type RecipeRequest struct {
	CategoryID         uint    `json:"category_id" validate:"required,gt=0"`
	Name               string  `json:"name" validate:"required,max=100"`
	Description        *string `json:"description"`
	Instructions       *string `json:"instructions"`
	CookingTimeMinutes *int    `json:"cooking_time_minutes" validate:"omitempty,gt=0"`
	ImageURL           *string `json:"image_url" validate:"omitempty,max=255"`
}

// PatchRecipeRequest represents a partial recipe update.
type PatchRecipeRequest struct {
	CategoryID         *uint   `json:"category_id" validate:"omitempty,gt=0"`
	Name               *string `json:"name" validate:"omitempty,max=100"`
	Description        *string `json:"description"`
	Instructions       *string `json:"instructions"`
	CookingTimeMinutes *int    `json:"cooking_time_minutes" validate:"omitempty,gt=0"`
	ImageURL           *string `json:"image_url" validate:"omitempty,max=255"`
}

func (r *RecipeRequest) toInput() service.RecipeInput {
	return service.RecipeInput{
		CategoryID:         r.CategoryID,
		Name:               r.Name,
		Description:        r.Description,
		Instructions:       r.Instructions,
		CookingTimeMinutes: r.CookingTimeMinutes,
		ImageURL:           r.ImageURL,
	}
}

// Create godoc
// @Summary Create a recipe authored by the caller
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecipeRequest true "Recipe data"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), user.ID, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, recipe)
}

// List godoc
// @Summary List all recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} model.Recipe
// @Router /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipeService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, recipes)
}

// Get godoc
// @Summary Get a recipe by id
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	recipe, err := h.recipeService.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// Update godoc
// @Summary Replace a recipe's mutable fields
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body RecipeRequest true "Recipe data"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	recipe, err := h.recipeService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// Patch godoc
// @Summary Partially update a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param request body PatchRecipeRequest true "Fields to update"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [patch]
func (h *RecipeHandler) Patch(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req PatchRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	recipe, err := h.recipeService.Patch(c.Request().Context(), id, service.RecipePatch{
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Description:        req.Description,
		Instructions:       req.Instructions,
		CookingTimeMinutes: req.CookingTimeMinutes,
		ImageURL:           req.ImageURL,
	})
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// Delete godoc
// @Summary Delete a recipe
// @Tags recipes
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.recipeService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
