package models

import (
	"time"
)

// Account is a named activity or client that time is billed against.
type Account struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Records []TimeRecord `gorm:"foreignKey:AccountID" json:"records"`
}
