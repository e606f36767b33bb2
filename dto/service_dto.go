package dto

import (
	"strings"

	"github.com/upmon-simple/models"
)

// CreateServiceRequest represents the request payload for attaching a
// service to a project. Method defaults to GET when omitted.
type CreateServiceRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=120"`
	URL    string `json:"url" binding:"required,max=500"`
	Method string `json:"method" binding:"omitempty,min=3,max=10"`
}

// UpdateServiceRequest represents a partial service update.
// Nil fields are left untouched.
type UpdateServiceRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=120"`
	URL      *string `json:"url" binding:"omitempty,max=500"`
	Method   *string `json:"method" binding:"omitempty,min=3,max=10"`
	IsActive *bool   `json:"is_active"`
}

// Apply copies the provided fields onto the service model.
// Method is re-uppercased so the stored value stays normalized.
func (req *UpdateServiceRequest) Apply(service *models.Service) {
	if req.Name != nil {
		service.Name = *req.Name
	}

	if req.URL != nil {
		service.URL = *req.URL
	}

	if req.Method != nil {
		service.Method = strings.ToUpper(*req.Method)
	}

	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
}

// ListServicesQuery carries filters for the service list endpoint
type ListServicesQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Skip   int    `form:"skip,default=0" binding:"gte=0"`
	Limit  int    `form:"limit,default=20" binding:"gte=1,lte=100"`
}
