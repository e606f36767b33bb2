package models

import (
	"time"
)

// Project represents a container for monitored services, owned by one user
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(120);not null"`
	OwnerID   uint      `json:"owner_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Owner    User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Services []Service `json:"services,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}
