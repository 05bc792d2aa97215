package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recipebox/internal/cache"
	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const recipeCacheTTL = 5 * time.Minute

// RecipeInput carries the full mutable field set of a recipe. The author is
// not part of the input: it is assigned from the authenticated caller.
type RecipeInput struct {
	CategoryID         uint
	Name               string
	Description        *string
	Instructions       *string
	CookingTimeMinutes *int
	ImageURL           *string
}

// RecipePatch carries the fields a partial update may touch. author_id and
// created_at are deliberately not patchable.
type RecipePatch struct {
	CategoryID         *uint
	Name               *string
	Description        *string
	Instructions       *string
	CookingTimeMinutes *int
	ImageURL           *string
}

// RecipeService exposes recipe domain operations.
type RecipeService interface {
	Create(ctx context.Context, authorID uint, in RecipeInput) (*model.Recipe, error)
	Get(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, id uint, in RecipeInput) (*model.Recipe, error)
	Patch(ctx context.Context, id uint, patch RecipePatch) (*model.Recipe, error)
	Delete(ctx context.Context, id uint) error
}

type recipeService struct {
	repo  repository.RecipeRepository
	cache *cache.Client
}

// NewRecipeService builds a RecipeService with repository and cache.
func NewRecipeService(repo repository.RecipeRepository, cache *cache.Client) RecipeService {
	return &recipeService{repo: repo, cache: cache}
}

func (s *recipeService) cacheKey(id uint) string {
	return fmt.Sprintf("recipe:%d", id)
}

// Create stores a new recipe owned by authorID, which comes from the access
// guard and never from client input.
func (s *recipeService) Create(ctx context.Context, authorID uint, in RecipeInput) (*model.Recipe, error) {
	recipe := &model.Recipe{
		AuthorID:           authorID,
		CategoryID:         in.CategoryID,
		Name:               in.Name,
		Description:        in.Description,
		Instructions:       in.Instructions,
		CookingTimeMinutes: in.CookingTimeMinutes,
		ImageURL:           in.ImageURL,
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) Get(ctx context.Context, id uint) (*model.Recipe, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Recipe
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(recipe); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, recipeCacheTTL)
	}
	return recipe, nil
}

func (s *recipeService) List(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.List(ctx)
}

// Update replaces every mutable field; author_id and created_at are kept.
func (s *recipeService) Update(ctx context.Context, id uint, in RecipeInput) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	recipe.CategoryID = in.CategoryID
	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.CookingTimeMinutes = in.CookingTimeMinutes
	recipe.ImageURL = in.ImageURL

	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return recipe, nil
}

// Patch merges only the provided fields into the stored recipe.
func (s *recipeService) Patch(ctx context.Context, id uint, patch RecipePatch) (*model.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.CategoryID != nil {
		recipe.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		recipe.Name = *patch.Name
	}
	if patch.Description != nil {
		recipe.Description = patch.Description
	}
	if patch.Instructions != nil {
		recipe.Instructions = patch.Instructions
	}
	if patch.CookingTimeMinutes != nil {
		recipe.CookingTimeMinutes = patch.CookingTimeMinutes
	}
	if patch.ImageURL != nil {
		recipe.ImageURL = patch.ImageURL
	}

	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return recipe, nil
}

func (s *recipeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
