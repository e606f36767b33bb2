package dto

import (
	"github.com/upmon-simple/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required,min=2,max=120"`
}

// UpdateProjectRequest represents a partial project update.
// Nil fields are left untouched.
type UpdateProjectRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=120"`
}

// Apply copies the provided fields onto the project model
func (req *UpdateProjectRequest) Apply(project *models.Project) {
	if req.Name != nil {
		project.Name = *req.Name
	}
}

// ListQuery carries the shared pagination parameters for list endpoints
type ListQuery struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=20" binding:"gte=1,lte=100"`
}
