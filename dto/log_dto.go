package dto

import (
	"time"
)

// CreateLogRequest represents one health-check observation to record.
// Pointer fields distinguish an absent value from a zero one, so
// response_time_ms=0 and is_success=false still pass `required`.
type CreateLogRequest struct {
	StatusCode     *int    `json:"status_code" binding:"required,gte=100,lte=599"`
	ResponseTimeMs *int    `json:"response_time_ms" binding:"required,gte=0,lte=120000"`
	IsSuccess      *bool   `json:"is_success" binding:"required"`
	Message        *string `json:"message" binding:"omitempty,max=500"`
}

// ListLogsQuery carries the optional, independently composable log filters.
// FromTime and ToTime bound created_at inclusively.
type ListLogsQuery struct {
	IsSuccess  *bool      `form:"is_success"`
	StatusCode *int       `form:"status_code"`
	FromTime   *time.Time `form:"from_time" time_format:"2006-01-02T15:04:05Z07:00"`
	ToTime     *time.Time `form:"to_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Skip       int        `form:"skip,default=0" binding:"gte=0"`
	Limit      int        `form:"limit,default=20" binding:"gte=1,lte=100"`
}
