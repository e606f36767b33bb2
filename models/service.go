package models

import (
	"time"
)

// Service represents a monitored HTTP endpoint belonging to a project.
// Method is always stored uppercased.
type Service struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"type:varchar(120);not null"`
	URL       string    `json:"url" gorm:"type:varchar(500);not null"`
	Method    string    `json:"method" gorm:"type:varchar(10);not null;default:GET"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Project Project    `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Logs    []CheckLog `json:"logs,omitempty" gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}
