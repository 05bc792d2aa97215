package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// RecipeIngredientRepository defines persistence for recipe-ingredient links.
// Rows are addressed by the (recipe_id, ingredient_id) composite key.
type RecipeIngredientRepository interface {
	Create(ctx context.Context, link *model.RecipeIngredient) error
	FindByKey(ctx context.Context, recipeID, ingredientID uint) (*model.RecipeIngredient, error)
	List(ctx context.Context) ([]model.RecipeIngredient, error)
	Update(ctx context.Context, link *model.RecipeIngredient) error
	Delete(ctx context.Context, recipeID, ingredientID uint) error
}

type recipeIngredientRepository struct {
	db *gorm.DB
}

// NewRecipeIngredientRepository builds a GORM-backed repository.
func NewRecipeIngredientRepository(db *gorm.DB) RecipeIngredientRepository {
	return &recipeIngredientRepository{db: db}
}

func (r *recipeIngredientRepository) Create(ctx context.Context, link *model.RecipeIngredient) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateLink
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrForeignKeyViolation
		}
		return err
	}
	return nil
}

func (r *recipeIngredientRepository) FindByKey(ctx context.Context, recipeID, ingredientID uint) (*model.RecipeIngredient, error) {
	var link model.RecipeIngredient
	err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeIngredientNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *recipeIngredientRepository) List(ctx context.Context) ([]model.RecipeIngredient, error) {
	var links []model.RecipeIngredient
	if err := r.db.WithContext(ctx).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *recipeIngredientRepository) Update(ctx context.Context, link *model.RecipeIngredient) error {
	return r.db.WithContext(ctx).
		Model(&model.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", link.RecipeID, link.IngredientID).
		Update("amount", link.Amount).Error
}

func (r *recipeIngredientRepository) Delete(ctx context.Context, recipeID, ingredientID uint) error {
	res := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&model.RecipeIngredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRecipeIngredientNotFound
	}
	return nil
}
