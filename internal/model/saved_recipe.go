package model

import "time"

// SavedRecipe is a user's bookmark of a recipe. It carries its own id but
// the (user_id, recipe_id) pair is unique: a user saves a recipe at most once.
type SavedRecipe struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_saved_user_recipe"`
	RecipeID uint      `json:"recipe_id" gorm:"not null;uniqueIndex:idx_saved_user_recipe"`
	SavedAt  time.Time `json:"saved_at" gorm:"autoCreateTime"`

	User   *User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Recipe *Recipe `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT"`
}
