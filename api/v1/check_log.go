package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/services"
)

// LogController handles health-check log API endpoints
type LogController struct {
	logService *services.LogService
}

// NewLogController creates a new log controller
func NewLogController() *LogController {
	return &LogController{
		logService: services.NewLogService(),
	}
}

// RegisterRoutes registers log routes under the projects group
func (ctrl *LogController) RegisterRoutes(projects *gin.RouterGroup) {
	logsGroup := projects.Group("/:id/services/:serviceId/logs")
	{
		logsGroup.POST("", ctrl.CreateLog)
		logsGroup.GET("", ctrl.ListLogs)
	}
}

// CreateLog records one health-check observation for a service
func (ctrl *LogController) CreateLog(c *gin.Context) {
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

	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	checkLog, err := ctrl.logService.CreateLog(userID, projectID, serviceID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checkLog)
}

// ListLogs lists a service's logs, newest first, with optional filters
func (ctrl *LogController) ListLogs(c *gin.Context) {
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

	var query dto.ListLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := ctrl.logService.ListLogs(userID, projectID, serviceID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
