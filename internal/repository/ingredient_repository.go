package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// IngredientRepository defines ingredient persistence operations.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *model.Ingredient) error
	FindByID(ctx context.Context, id uint) (*model.Ingredient, error)
	List(ctx context.Context) ([]model.Ingredient, error)
	Update(ctx context.Context, ingredient *model.Ingredient) error
	Delete(ctx context.Context, id uint) error
}

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository builds a GORM-backed repository.
func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrIngredientExists
		}
		return err
	}
	return nil
}

func (r *ingredientRepository) FindByID(ctx context.Context, id uint) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	if err := r.db.WithContext(ctx).First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	if err := r.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	// Save writes every column, so clearing calories to nil persists.
	if err := r.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrIngredientExists
		}
		return err
	}
	return nil
}

func (r *ingredientRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Ingredient{}, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrRecordInUse
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrIngredientNotFound
	}
	return nil
}
