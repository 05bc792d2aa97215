package service

import (
	"context"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// SavedRecipeService exposes bookmark operations.
type SavedRecipeService interface {
	Save(ctx context.Context, userID, recipeID uint) (*model.SavedRecipe, error)
	Get(ctx context.Context, id uint) (*model.SavedRecipe, error)
	List(ctx context.Context) ([]model.SavedRecipe, error)
	Delete(ctx context.Context, id uint) error
}

type savedRecipeService struct {
	repo repository.SavedRecipeRepository
}

// NewSavedRecipeService builds a SavedRecipeService.
func NewSavedRecipeService(repo repository.SavedRecipeRepository) SavedRecipeService {
	return &savedRecipeService{repo: repo}
}

// Save bookmarks a recipe for userID, which comes from the access guard and
// never from client input. The unique (user_id, recipe_id) index makes a
// second save of the same recipe fail.
func (s *savedRecipeService) Save(ctx context.Context, userID, recipeID uint) (*model.SavedRecipe, error) {
	saved := &model.SavedRecipe{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.repo.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *savedRecipeService) Get(ctx context.Context, id uint) (*model.SavedRecipe, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *savedRecipeService) List(ctx context.Context) ([]model.SavedRecipe, error) {
	return s.repo.List(ctx)
}

func (s *savedRecipeService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
