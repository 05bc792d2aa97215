package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"recipebox/internal/auth"
	"recipebox/internal/model"
)

func strPtr(s string) *string { return &s }

func TestUserService_Create_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	hasher := auth.NewPasswordHasher(0)
	service := NewUserService(mockRepo, hasher, nil)

	user, err := service.Create(context.Background(), "u1", "u1@example.com", "plaintext")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.Username)
	assert.Equal(t, "u1@example.com", user.Email)
	assert.NotEqual(t, "plaintext", user.PasswordHash)
	assert.True(t, hasher.Verify("plaintext", user.PasswordHash))

	mockRepo.AssertExpectations(t)
}

func TestUserService_Patch_MergesOnlyProvidedFields(t *testing.T) {
	hasher := auth.NewPasswordHasher(0)
	originalDigest, err := hasher.Hash("original")
	assert.NoError(t, err)

	stored := &model.User{
		ID:           7,
		Username:     "before",
		Email:        "before@example.com",
		PasswordHash: originalDigest,
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewUserService(mockRepo, hasher, nil)

	user, err := service.Patch(context.Background(), 7, UserPatch{Username: strPtr("after")})
	assert.NoError(t, err)
	assert.Equal(t, "after", user.Username)
	assert.Equal(t, "before@example.com", user.Email)
	assert.Equal(t, originalDigest, user.PasswordHash)

	mockRepo.AssertExpectations(t)
}

func TestUserService_Patch_RehashesPassword(t *testing.T) {
	hasher := auth.NewPasswordHasher(0)
	originalDigest, err := hasher.Hash("original")
	assert.NoError(t, err)

	stored := &model.User{
		ID:           7,
		Username:     "u",
		Email:        "u@example.com",
		PasswordHash: originalDigest,
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(7)).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	service := NewUserService(mockRepo, hasher, nil)

	user, err := service.Patch(context.Background(), 7, UserPatch{Password: strPtr("rotated")})
	assert.NoError(t, err)
	assert.NotEqual(t, "rotated", user.PasswordHash)
	assert.NotEqual(t, originalDigest, user.PasswordHash)
	assert.True(t, hasher.Verify("rotated", user.PasswordHash))

	mockRepo.AssertExpectations(t)
}
