package models

import (
	"time"
)

// User represents an account that owns monitoring projects
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}
