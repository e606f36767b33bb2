package services

import (
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/models"
	"github.com/upmon-simple/repositories"
)

// ProjectService handles business logic for projects. Every operation is
// scoped to the authenticated owner; a project belonging to another user is
// reported as not found.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateProject persists a new project for the owner
func (s *ProjectService) CreateProject(ownerID uint, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Name:    req.Name,
		OwnerID: ownerID,
	}
	return s.projectRepo.Create(project)
}

// ListProjects retrieves the owner's projects, newest first
func (s *ProjectService) ListProjects(ownerID uint, query dto.ListQuery) ([]models.Project, error) {
	return s.projectRepo.FindByOwner(ownerID, query.Skip, query.Limit)
}

// GetProject retrieves one owned project
func (s *ProjectService) GetProject(ownerID, projectID uint) (models.Project, error) {
	project, err := s.projectRepo.FindByIDAndOwner(projectID, ownerID)
	if err != nil {
		return models.Project{}, notFoundOr(err)
	}
	return project, nil
}

// UpdateProject applies a partial update to an owned project
func (s *ProjectService) UpdateProject(ownerID, projectID uint, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.UpdateOwned(projectID, ownerID, req.Apply)
	if err != nil {
		return models.Project{}, notFoundOr(err)
	}
	return project, nil
}

// DeleteProject removes an owned project and cascades to its services and logs
func (s *ProjectService) DeleteProject(ownerID, projectID uint) error {
	if err := s.projectRepo.DeleteOwned(projectID, ownerID); err != nil {
		return notFoundOr(err)
	}
	return nil
}
