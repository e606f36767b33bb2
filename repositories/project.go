package repositories

import (
	"github.com/upmon-simple/database"
	"github.com/upmon-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByIDAndOwner retrieves a project by ID, scoped to its owner.
// A project owned by someone else behaves exactly like a missing one.
func (r *ProjectRepository) FindByIDAndOwner(id, ownerID uint) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ? AND owner_id = ?", id, ownerID)
	return project, result.Error
}

// FindByOwner retrieves the owner's projects, newest first
func (r *ProjectRepository) FindByOwner(ownerID uint, skip, limit int) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Where("owner_id = ?", ownerID).
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// UpdateOwned re-resolves the project under its owner and applies the given
// changes inside one transaction, so concurrent patches cannot lose updates
func (r *ProjectRepository) UpdateOwned(id, ownerID uint, apply func(*models.Project)) (models.Project, error) {
	var project models.Project
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			return err
		}
		apply(&project)
		return tx.Save(&project).Error
	})
	return project, err
}

// DeleteOwned removes an owned project together with its services and logs.
// The delete runs bottom-up inside one transaction: either every child row
// goes or none does.
func (r *ProjectRepository) DeleteOwned(id, ownerID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
			return err
		}

		serviceIDs := tx.Model(&models.Service{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("service_id IN (?)", serviceIDs).Delete(&models.CheckLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
