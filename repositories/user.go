package repositories

import (
	"github.com/upmon-simple/database"
	"github.com/upmon-simple/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// ExistsByEmail checks whether a user with the given email already exists
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// Delete removes a user and everything it owns. The delete runs bottom-up
// (logs, services, projects, user) inside one transaction so no orphaned
// child rows can survive.
func (r *UserRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		projectIDs := tx.Model(&models.Project{}).Select("id").Where("owner_id = ?", id)
		serviceIDs := tx.Model(&models.Service{}).Select("id").Where("project_id IN (?)", projectIDs)

		if err := tx.Where("service_id IN (?)", serviceIDs).Delete(&models.CheckLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id IN (?)", projectIDs).Delete(&models.Service{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
