package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/services"
)

var projectService = services.NewProjectService()

// CreateProject creates a new project for the authenticated user
func CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	project, err := projectService.CreateProject(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects lists the caller's projects, newest first
func ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	projects, err := projectService.ListProjects(userID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns one owned project
func GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := projectService.GetProject(userID, projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject applies a partial update to an owned project
func UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	project, err := projectService.UpdateProject(userID, projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes an owned project and all its services and logs
func DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := projectService.DeleteProject(userID, projectID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
