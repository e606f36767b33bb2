package services

import (
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/models"
	"github.com/upmon-simple/repositories"
)

// LogService handles health-check log recording and querying. Logs are
// reached through project and service, which transitively validates the
// whole ownership chain.
type LogService struct {
	projectRepo *repositories.ProjectRepository
	serviceRepo *repositories.ServiceRepository
	logRepo     *repositories.CheckLogRepository
}

// NewLogService creates a new log service instance
func NewLogService() *LogService {
	return &LogService{
		projectRepo: repositories.NewProjectRepository(),
		serviceRepo: repositories.NewServiceRepository(),
		logRepo:     repositories.NewCheckLogRepository(),
	}
}

// resolveService walks the ownership chain down to the service
func (s *LogService) resolveService(ownerID, projectID, serviceID uint) error {
	if _, err := s.projectRepo.FindByIDAndOwner(projectID, ownerID); err != nil {
		return notFoundOr(err)
	}
	if _, err := s.serviceRepo.FindByIDAndProject(serviceID, projectID); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// CreateLog records one health-check observation. The timestamp is assigned
// at insert time and the row is immutable from then on.
func (s *LogService) CreateLog(ownerID, projectID, serviceID uint, req dto.CreateLogRequest) (models.CheckLog, error) {
	if err := s.resolveService(ownerID, projectID, serviceID); err != nil {
		return models.CheckLog{}, err
	}

	checkLog := models.CheckLog{
		ServiceID:      serviceID,
		StatusCode:     *req.StatusCode,
		ResponseTimeMs: *req.ResponseTimeMs,
		IsSuccess:      *req.IsSuccess,
		Message:        req.Message,
	}
	return s.logRepo.Create(checkLog)
}

// ListLogs retrieves a service's logs, newest first, applying the optional
// filters from the query
func (s *LogService) ListLogs(ownerID, projectID, serviceID uint, query dto.ListLogsQuery) ([]models.CheckLog, error) {
	if err := s.resolveService(ownerID, projectID, serviceID); err != nil {
		return nil, err
	}

	return s.logRepo.FindByService(
		serviceID,
		query.IsSuccess,
		query.StatusCode,
		query.FromTime,
		query.ToTime,
		query.Skip,
		query.Limit,
	)
}
