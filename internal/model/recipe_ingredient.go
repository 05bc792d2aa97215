package model

// RecipeIngredient links a recipe to an ingredient with a free-text amount.
// The (recipe_id, ingredient_id) pair is the row identity; the composite
// primary key makes a duplicate link impossible under concurrent writers.
type RecipeIngredient struct {
	RecipeID     uint   `json:"recipe_id" gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint   `json:"ingredient_id" gorm:"primaryKey;autoIncrement:false"`
	Amount       string `json:"amount" gorm:"size:50;not null"`

	Recipe     *Recipe     `json:"-" gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT"`
	Ingredient *Ingredient `json:"-" gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}
