package repositories

import (
	"github.com/upmon-simple/database"
	"github.com/upmon-simple/models"
	"gorm.io/gorm"
)

// ServiceRepository handles database operations for services
type ServiceRepository struct{}

// NewServiceRepository creates a new service repository instance
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

// FindByIDAndProject retrieves a service by ID, scoped to its project.
// A service under a different project behaves exactly like a missing one.
func (r *ServiceRepository) FindByIDAndProject(id, projectID uint) (models.Service, error) {
	var service models.Service
	result := database.DB.First(&service, "id = ? AND project_id = ?", id, projectID)
	return service, result.Error
}

// FindByProject retrieves a project's services, newest first.
// isActive narrows the list when non-nil.
func (r *ServiceRepository) FindByProject(projectID uint, isActive *bool, skip, limit int) ([]models.Service, error) {
	var services []models.Service
	query := database.DB.Where("project_id = ?", projectID)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	result := query.
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&services)
	return services, result.Error
}

// Create inserts a new service into the database
func (r *ServiceRepository) Create(service models.Service) (models.Service, error) {
	result := database.DB.Create(&service)
	return service, result.Error
}

// UpdateInProject re-resolves the service under its project and applies the
// given changes inside one transaction
func (r *ServiceRepository) UpdateInProject(id, projectID uint, apply func(*models.Service)) (models.Service, error) {
	var service models.Service
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&service, "id = ? AND project_id = ?", id, projectID).Error; err != nil {
			return err
		}
		apply(&service)
		return tx.Save(&service).Error
	})
	return service, err
}

// DeleteInProject removes a service and its logs in one transaction
func (r *ServiceRepository) DeleteInProject(id, projectID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ? AND project_id = ?", id, projectID).Error; err != nil {
			return err
		}

		if err := tx.Where("service_id = ?", id).Delete(&models.CheckLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, "id = ?", id).Error
	})
}
