package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recipebox/internal/model"
)

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRecipeService_Create_AssignsAuthorFromCaller(t *testing.T) {
	mockRepo := new(MockRecipeRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)

	service := NewRecipeService(mockRepo, nil)

	recipe, err := service.Create(context.Background(), 42, RecipeInput{
		CategoryID: 3,
		Name:       "Pancakes",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), recipe.AuthorID)
	assert.Equal(t, uint(3), recipe.CategoryID)

	mockRepo.AssertExpectations(t)
}

func TestRecipeService_Patch_MergesOnlyProvidedFields(t *testing.T) {
	description := "B"
	stored := &model.Recipe{
		ID:          1,
		AuthorID:    42,
		CategoryID:  3,
		Name:        "A",
		Description: &description,
	}

	mockRepo := new(MockRecipeRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)

	service := NewRecipeService(mockRepo, nil)

	name := "C"
	recipe, err := service.Patch(context.Background(), 1, RecipePatch{Name: &name})
	assert.NoError(t, err)
	assert.Equal(t, "C", recipe.Name)
	assert.NotNil(t, recipe.Description)
	assert.Equal(t, "B", *recipe.Description)
	assert.Equal(t, uint(42), recipe.AuthorID)
	assert.Equal(t, uint(3), recipe.CategoryID)

	mockRepo.AssertExpectations(t)
}

func TestRecipeService_Update_KeepsAuthor(t *testing.T) {
	stored := &model.Recipe{
		ID:         1,
		AuthorID:   42,
		CategoryID: 3,
		Name:       "A",
	}

	mockRepo := new(MockRecipeRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Recipe")).Return(nil)

	service := NewRecipeService(mockRepo, nil)

	recipe, err := service.Update(context.Background(), 1, RecipeInput{
		CategoryID: 5,
		Name:       "Replaced",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), recipe.AuthorID)
	assert.Equal(t, uint(5), recipe.CategoryID)
	assert.Equal(t, "Replaced", recipe.Name)
	assert.Nil(t, recipe.Description)

	mockRepo.AssertExpectations(t)
}
