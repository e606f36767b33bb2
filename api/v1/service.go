package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/services"
)

// ServiceController handles service-related API endpoints
type ServiceController struct {
	serviceService *services.ServiceService
}

// NewServiceController creates a new service controller
func NewServiceController() *ServiceController {
	return &ServiceController{
		serviceService: services.NewServiceService(),
	}
}

// RegisterRoutes registers service routes under the projects group
func (ctrl *ServiceController) RegisterRoutes(projects *gin.RouterGroup) {
	servicesGroup := projects.Group("/:id/services")
	{
		servicesGroup.POST("", ctrl.CreateService)
		servicesGroup.GET("", ctrl.ListServices)
		servicesGroup.GET("/:serviceId", ctrl.GetService)
		servicesGroup.PATCH("/:serviceId", ctrl.UpdateService)
		servicesGroup.DELETE("/:serviceId", ctrl.DeleteService)
	}
}

// CreateService attaches a new service to an owned project
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	service, err := ctrl.serviceService.CreateService(userID, projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ListServices lists a project's services, optionally filtered by status
func (ctrl *ServiceController) ListServices(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var query dto.ListServicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	list, err := ctrl.serviceService.ListServices(userID, projectID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetService returns one service under an owned project
func (ctrl *ServiceController) GetService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}

	service, err := ctrl.serviceService.GetService(userID, projectID, serviceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService applies a partial update to a service
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	service, err := ctrl.serviceService.UpdateService(userID, projectID, serviceID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service and its logs
func (ctrl *ServiceController) DeleteService(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	serviceID, ok := pathID(c, "serviceId")
	if !ok {
		return
	}

	if err := ctrl.serviceService.DeleteService(userID, projectID, serviceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
