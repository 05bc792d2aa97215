package model

import "time"

// Recipe belongs to an author and a category. AuthorID is always assigned
// server-side from the authenticated caller, never from client input.
// CreatedAt is set on insert and immutable afterwards.
type Recipe struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	AuthorID           uint      `json:"author_id" gorm:"not null;index"`
	CategoryID         uint      `json:"category_id" gorm:"not null;index"`
	Name               string    `json:"name" gorm:"size:100;not null"`
	Description        *string   `json:"description" gorm:"type:text"`
	Instructions       *string   `json:"instructions" gorm:"type:text"`
	CookingTimeMinutes *int      `json:"cooking_time_minutes"`
	ImageURL           *string   `json:"image_url" gorm:"size:255"`
	CreatedAt          time.Time `json:"created_at"`

	// Declared only so AutoMigrate emits the FK constraints; never preloaded.
	Author   *User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
