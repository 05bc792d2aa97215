package service

import (
	"context"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// IngredientInput carries the full mutable field set of an ingredient.
type IngredientInput struct {
	Name            string
	CaloriesPer100g *int
}

// IngredientPatch carries the fields a partial update may touch.
type IngredientPatch struct {
	Name            *string
	CaloriesPer100g *int
}

// IngredientService exposes ingredient domain operations.
type IngredientService interface {
	Create(ctx context.Context, in IngredientInput) (*model.Ingredient, error)
	Get(ctx context.Context, id uint) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, id uint, in IngredientInput) (*model.Ingredient, error)
	Patch(ctx context.Context, id uint, patch IngredientPatch) (*model.Ingredient, error)
	Delete(ctx context.Context, id uint) error
}

type ingredientService struct {
	repo repository.IngredientRepository
}

// NewIngredientService builds an IngredientService.
func NewIngredientService(repo repository.IngredientRepository) IngredientService {
	return &ingredientService{repo: repo}
}

func (s *ingredientService) Create(ctx context.Context, in IngredientInput) (*model.Ingredient, error) {
	ingredient := &model.Ingredient{
		Name:            in.Name,
		CaloriesPer100g: in.CaloriesPer100g,
	}
	if err := s.repo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) Get(ctx context.Context, id uint) (*model.Ingredient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ingredientService) List(ctx context.Context) ([]model.Ingredient, error) {
	return s.repo.List(ctx)
}

// Update replaces every mutable field with the supplied values.
func (s *ingredientService) Update(ctx context.Context, id uint, in IngredientInput) (*model.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ingredient.Name = in.Name
	ingredient.CaloriesPer100g = in.CaloriesPer100g
	if err := s.repo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Patch merges only the provided fields into the stored ingredient.
func (s *ingredientService) Patch(ctx context.Context, id uint, patch IngredientPatch) (*model.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		ingredient.Name = *patch.Name
	}
	if patch.CaloriesPer100g != nil {
		ingredient.CaloriesPer100g = patch.CaloriesPer100g
	}
	if err := s.repo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *ingredientService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
