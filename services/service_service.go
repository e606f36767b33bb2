package services

import (
	"net/url"
	"strings"

	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/models"
	"github.com/upmon-simple/repositories"
)

// ServiceService handles business logic for monitored services. Access
// always resolves the enclosing project under its owner first, so the
// ownership chain is re-validated on every call.
type ServiceService struct {
	projectRepo *repositories.ProjectRepository
	serviceRepo *repositories.ServiceRepository
}

// NewServiceService creates a new service service instance
func NewServiceService() *ServiceService {
	return &ServiceService{
		projectRepo: repositories.NewProjectRepository(),
		serviceRepo: repositories.NewServiceRepository(),
	}
}

// validateServiceURL accepts only absolute http(s) URLs
func validateServiceURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// resolveProject re-checks the project ownership chain
func (s *ServiceService) resolveProject(ownerID, projectID uint) error {
	if _, err := s.projectRepo.FindByIDAndOwner(projectID, ownerID); err != nil {
		return notFoundOr(err)
	}
	return nil
}

// CreateService attaches a new service to an owned project.
// Method is stored uppercased and defaults to GET.
func (s *ServiceService) CreateService(ownerID, projectID uint, req dto.CreateServiceRequest) (models.Service, error) {
	if err := s.resolveProject(ownerID, projectID); err != nil {
		return models.Service{}, err
	}

	if err := validateServiceURL(req.URL); err != nil {
		return models.Service{}, err
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = "GET"
	}

	service := models.Service{
		ProjectID: projectID,
		Name:      req.Name,
		URL:       req.URL,
		Method:    method,
		IsActive:  true,
	}
	return s.serviceRepo.Create(service)
}

// ListServices retrieves a project's services, newest first.
// status narrows to active or inactive services; empty applies no filter.
func (s *ServiceService) ListServices(ownerID, projectID uint, query dto.ListServicesQuery) ([]models.Service, error) {
	if err := s.resolveProject(ownerID, projectID); err != nil {
		return nil, err
	}

	var isActive *bool
	switch query.Status {
	case "active":
		active := true
		isActive = &active
	case "inactive":
		inactive := false
		isActive = &inactive
	}

	return s.serviceRepo.FindByProject(projectID, isActive, query.Skip, query.Limit)
}

// GetService retrieves one service under an owned project
func (s *ServiceService) GetService(ownerID, projectID, serviceID uint) (models.Service, error) {
	if err := s.resolveProject(ownerID, projectID); err != nil {
		return models.Service{}, err
	}

	service, err := s.serviceRepo.FindByIDAndProject(serviceID, projectID)
	if err != nil {
		return models.Service{}, notFoundOr(err)
	}
	return service, nil
}

// UpdateService applies a partial update to a service. A provided URL is
// re-validated, a provided method is re-uppercased.
func (s *ServiceService) UpdateService(ownerID, projectID, serviceID uint, req dto.UpdateServiceRequest) (models.Service, error) {
	if err := s.resolveProject(ownerID, projectID); err != nil {
		return models.Service{}, err
	}

	if req.URL != nil {
		if err := validateServiceURL(*req.URL); err != nil {
			return models.Service{}, err
		}
	}

	service, err := s.serviceRepo.UpdateInProject(serviceID, projectID, req.Apply)
	if err != nil {
		return models.Service{}, notFoundOr(err)
	}
	return service, nil
}

// DeleteService removes a service and cascades to its logs
func (s *ServiceService) DeleteService(ownerID, projectID, serviceID uint) error {
	if err := s.resolveProject(ownerID, projectID); err != nil {
		return err
	}

	if err := s.serviceRepo.DeleteInProject(serviceID, projectID); err != nil {
		return notFoundOr(err)
	}
	return nil
}
