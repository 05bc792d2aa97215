package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/model"
)

// newTestDB opens a private in-memory database with foreign keys enforced,
// mirroring the constraints the mysql schema carries in production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.SavedRecipe{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Username: "u", Email: email, PasswordHash: "digest"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) *model.Ingredient {
	t.Helper()
	ingredient := &model.Ingredient{Name: name}
	require.NoError(t, NewIngredientRepository(db).Create(context.Background(), ingredient))
	return ingredient
}

func seedRecipe(t *testing.T, db *gorm.DB, authorID, categoryID uint) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{AuthorID: authorID, CategoryID: categoryID, Name: "r"}
	require.NoError(t, NewRecipeRepository(db).Create(context.Background(), recipe))
	return recipe
}

func TestUserRepository_EmailUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "dup@example.com")

	err := repo.Create(ctx, &model.User{Username: "other", Email: "dup@example.com", PasswordHash: "d"})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	// the failed insert wrote nothing
	users, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "u@example.com")

	found, err := repo.FindByEmail(ctx, "u@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	assert.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), apperrors.ErrUserNotFound)
}

func TestCategoryRepository_NameUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "Dessert")

	err := repo.Create(ctx, &model.Category{Name: "Dessert"})
	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
}

func TestIngredientRepository_NameUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewIngredientRepository(db)
	ctx := context.Background()

	seedIngredient(t, db, "Salt")

	err := repo.Create(ctx, &model.Ingredient{Name: "Salt"})
	assert.ErrorIs(t, err, apperrors.ErrIngredientExists)
}

func TestRecipeRepository_ForeignKeys(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "author@example.com")
	category := seedCategory(t, db, "Soup")

	// missing category
	err := repo.Create(ctx, &model.Recipe{AuthorID: user.ID, CategoryID: 9999, Name: "r"})
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)

	// missing author
	err = repo.Create(ctx, &model.Recipe{AuthorID: 9999, CategoryID: category.ID, Name: "r"})
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)

	// valid references
	err = repo.Create(ctx, &model.Recipe{AuthorID: user.ID, CategoryID: category.ID, Name: "r"})
	assert.NoError(t, err)
}

func TestCategoryRepository_DeleteReferencedRejected(t *testing.T) {
	db := newTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	recipeRepo := NewRecipeRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "author@example.com")
	category := seedCategory(t, db, "Soup")
	recipe := seedRecipe(t, db, user.ID, category.ID)

	// a referenced category cannot be deleted
	assert.ErrorIs(t, categoryRepo.Delete(ctx, category.ID), apperrors.ErrRecordInUse)

	// once the recipe is gone the delete goes through
	require.NoError(t, recipeRepo.Delete(ctx, recipe.ID))
	assert.NoError(t, categoryRepo.Delete(ctx, category.ID))
}

func TestRecipeIngredientRepository_CompositeKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeIngredientRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "author@example.com")
	category := seedCategory(t, db, "Soup")
	recipe := seedRecipe(t, db, user.ID, category.ID)
	ingredient := seedIngredient(t, db, "Salt")

	link := &model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: "1 tsp"}
	require.NoError(t, repo.Create(ctx, link))

	// second link for the same pair is rejected by the composite key
	err := repo.Create(ctx, &model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ingredient.ID, Amount: "2 tsp"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateLink)

	found, err := repo.FindByKey(ctx, recipe.ID, ingredient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "1 tsp", found.Amount)

	_, err = repo.FindByKey(ctx, recipe.ID, 9999)
	assert.ErrorIs(t, err, apperrors.ErrRecipeIngredientNotFound)

	found.Amount = "3 tsp"
	assert.NoError(t, repo.Update(ctx, found))
	updated, err := repo.FindByKey(ctx, recipe.ID, ingredient.ID)
	assert.NoError(t, err)
	assert.Equal(t, "3 tsp", updated.Amount)

	assert.NoError(t, repo.Delete(ctx, recipe.ID, ingredient.ID))
	assert.ErrorIs(t, repo.Delete(ctx, recipe.ID, ingredient.ID), apperrors.ErrRecipeIngredientNotFound)
}

func TestSavedRecipeRepository_PairUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewSavedRecipeRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "reader@example.com")
	author := seedUser(t, db, "author@example.com")
	category := seedCategory(t, db, "Soup")
	recipe := seedRecipe(t, db, author.ID, category.ID)

	saved := &model.SavedRecipe{UserID: user.ID, RecipeID: recipe.ID}
	require.NoError(t, repo.Create(ctx, saved))
	assert.False(t, saved.SavedAt.IsZero())

	// saving the same recipe twice for the same user is rejected
	err := repo.Create(ctx, &model.SavedRecipe{UserID: user.ID, RecipeID: recipe.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadySaved)

	// a different user may save the same recipe
	err = repo.Create(ctx, &model.SavedRecipe{UserID: author.ID, RecipeID: recipe.ID})
	assert.NoError(t, err)

	// bookmarks of unknown recipes are rejected
	err = repo.Create(ctx, &model.SavedRecipe{UserID: user.ID, RecipeID: 9999})
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
}

func TestUserRepository_UpdatePersists(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "u@example.com")
	user.Username = "renamed"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", found.Username)
	assert.Equal(t, "u@example.com", found.Email)
}
