package service

import (
	"context"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// RecipeIngredientService exposes operations on recipe-ingredient links.
type RecipeIngredientService interface {
	Create(ctx context.Context, recipeID, ingredientID uint, amount string) (*model.RecipeIngredient, error)
	Get(ctx context.Context, recipeID, ingredientID uint) (*model.RecipeIngredient, error)
	List(ctx context.Context) ([]model.RecipeIngredient, error)
	Patch(ctx context.Context, recipeID, ingredientID uint, amount *string) (*model.RecipeIngredient, error)
	Delete(ctx context.Context, recipeID, ingredientID uint) error
}

type recipeIngredientService struct {
	repo repository.RecipeIngredientRepository
}

// NewRecipeIngredientService builds a RecipeIngredientService.
func NewRecipeIngredientService(repo repository.RecipeIngredientRepository) RecipeIngredientService {
	return &recipeIngredientService{repo: repo}
}

// Create links an ingredient to a recipe. Duplicate pairs are rejected by
// the composite primary key, so the check holds under concurrent writers.
func (s *recipeIngredientService) Create(ctx context.Context, recipeID, ingredientID uint, amount string) (*model.RecipeIngredient, error) {
	link := &model.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *recipeIngredientService) Get(ctx context.Context, recipeID, ingredientID uint) (*model.RecipeIngredient, error) {
	return s.repo.FindByKey(ctx, recipeID, ingredientID)
}

func (s *recipeIngredientService) List(ctx context.Context) ([]model.RecipeIngredient, error) {
	return s.repo.List(ctx)
}

// Patch updates the amount when provided. The (recipe, ingredient) pair is
// the row's identity and is not updatable.
func (s *recipeIngredientService) Patch(ctx context.Context, recipeID, ingredientID uint, amount *string) (*model.RecipeIngredient, error) {
	link, err := s.repo.FindByKey(ctx, recipeID, ingredientID)
	if err != nil {
		return nil, err
	}
	if amount != nil {
		link.Amount = *amount
		if err := s.repo.Update(ctx, link); err != nil {
			return nil, err
		}
	}
	return link, nil
}

func (s *recipeIngredientService) Delete(ctx context.Context, recipeID, ingredientID uint) error {
	return s.repo.Delete(ctx, recipeID, ingredientID)
}
