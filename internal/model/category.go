package model

// Category groups recipes by kind (e.g. "dessert", "soup").
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:30;not null"`
}
