package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipebox/internal/auth"
	"recipebox/internal/service"
)

// SavedRecipeHandler handles bookmark endpoints.
type SavedRecipeHandler struct {
	savedService service.SavedRecipeService
}

// NewSavedRecipeHandler creates a new saved-recipe handler.
func NewSavedRecipeHandler(savedService service.SavedRecipeService) *SavedRecipeHandler {
	return &SavedRecipeHandler{savedService: savedService}
}

// CreateSavedRecipeRequest represents a bookmark creation payload. The user
// is the authenticated caller; only the recipe is client-supplied.
type CreateSavedRecipeRequest struct {
	RecipeID uint `json:"recipe_id" validate:"required,gt=0"`
}

// Create godoc
// @Summary Bookmark a recipe for the caller
// @Tags saved_recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSavedRecipeRequest true "Bookmark data"
// @Success 201 {object} model.SavedRecipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /saved_recipes [post]
func (h *SavedRecipeHandler) Create(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req CreateSavedRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	saved, err := h.savedService.Save(c.Request().Context(), user.ID, req.RecipeID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, saved)
}

// List godoc
// @Summary List all saved recipes
// @Tags saved_recipes
// @Produce json
// @Success 200 {array} model.SavedRecipe
// @Router /saved_recipes [get]
func (h *SavedRecipeHandler) List(c echo.Context) error {
	saved, err := h.savedService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Get godoc
// @Summary Get a saved recipe by id
// @Tags saved_recipes
// @Produce json
// @Param id path int true "Saved recipe ID"
// @Success 200 {object} model.SavedRecipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved_recipes/{id} [get]
func (h *SavedRecipeHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	saved, err := h.savedService.Get(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

// Delete godoc
// @Summary Remove a bookmark
// @Tags saved_recipes
// @Security BearerAuth
// @Param id path int true "Saved recipe ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /saved_recipes/{id} [delete]
func (h *SavedRecipeHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.savedService.Delete(c.Request().Context(), id); err != nil {
		return mapError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
