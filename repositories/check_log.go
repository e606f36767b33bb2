package repositories

import (
	"time"

	"github.com/upmon-simple/database"
	"github.com/upmon-simple/models"
)

// CheckLogRepository handles database operations for health-check logs
type CheckLogRepository struct{}

// NewCheckLogRepository creates a new check log repository instance
func NewCheckLogRepository() *CheckLogRepository {
	return &CheckLogRepository{}
}

// Create inserts a new log row into the database
func (r *CheckLogRepository) Create(checkLog models.CheckLog) (models.CheckLog, error) {
	result := database.DB.Create(&checkLog)
	return checkLog, result.Error
}

// FindByService retrieves a service's logs, newest first. All filters are
// optional and combine with AND; fromTime and toTime bound created_at
// inclusively. The id tiebreak keeps pagination stable when several logs
// share a millisecond timestamp.
func (r *CheckLogRepository) FindByService(
	serviceID uint,
	isSuccess *bool,
	statusCode *int,
	fromTime, toTime *time.Time,
	skip, limit int) ([]models.CheckLog, error) {

	query := database.DB.Where("service_id = ?", serviceID)

	if isSuccess != nil {
		query = query.Where("is_success = ?", *isSuccess)
	}
	if statusCode != nil {
		query = query.Where("status_code = ?", *statusCode)
	}
	if fromTime != nil {
		query = query.Where("created_at >= ?", *fromTime)
	}
	if toTime != nil {
		query = query.Where("created_at <= ?", *toTime)
	}

	var logs []models.CheckLog
	result := query.
		Order("created_at DESC, id DESC").
		Offset(skip).
		Limit(limit).
		Find(&logs)
	return logs, result.Error
}

// CountByService counts a service's stored logs
func (r *CheckLogRepository) CountByService(serviceID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.CheckLog{}).Where("service_id = ?", serviceID).Count(&count)
	return count, result.Error
}
