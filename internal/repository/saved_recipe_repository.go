package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// SavedRecipeRepository defines persistence for recipe bookmarks.
type SavedRecipeRepository interface {
	Create(ctx context.Context, saved *model.SavedRecipe) error
	FindByID(ctx context.Context, id uint) (*model.SavedRecipe, error)
	List(ctx context.Context) ([]model.SavedRecipe, error)
	Delete(ctx context.Context, id uint) error
}

type savedRecipeRepository struct {
	db *gorm.DB
}

// NewSavedRecipeRepository builds a GORM-backed repository.
func NewSavedRecipeRepository(db *gorm.DB) SavedRecipeRepository {
	return &savedRecipeRepository{db: db}
}

func (r *savedRecipeRepository) Create(ctx context.Context, saved *model.SavedRecipe) error {
	if err := r.db.WithContext(ctx).Create(saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadySaved
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrForeignKeyViolation
		}
		return err
	}
	return nil
}

func (r *savedRecipeRepository) FindByID(ctx context.Context, id uint) (*model.SavedRecipe, error) {
	var saved model.SavedRecipe
	if err := r.db.WithContext(ctx).First(&saved, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSavedRecipeNotFound
		}
		return nil, err
	}
	return &saved, nil
}

func (r *savedRecipeRepository) List(ctx context.Context) ([]model.SavedRecipe, error) {
	var saved []model.SavedRecipe
	if err := r.db.WithContext(ctx).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedRecipeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.SavedRecipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrSavedRecipeNotFound
	}
	return nil
}
