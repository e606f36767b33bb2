package models

import (
	"time"
)

// CheckLog is one recorded health-check observation for a service.
// Logs are immutable: they are only created and queried, never updated.
type CheckLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ServiceID      uint      `json:"service_id" gorm:"not null;index"`
	StatusCode     int       `json:"status_code" gorm:"not null"`
	ResponseTimeMs int       `json:"response_time_ms" gorm:"not null"`
	IsSuccess      bool      `json:"is_success" gorm:"not null"`
	Message        *string   `json:"message" gorm:"type:varchar(500)"`
	CreatedAt      time.Time `json:"created_at" gorm:"index"`

	// Relations
	Service Service `json:"-" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}
