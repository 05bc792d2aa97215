package model

// Ingredient is a reusable ingredient referenced by recipes.
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CaloriesPer100g *int   `json:"calories_per_100g"`
}
