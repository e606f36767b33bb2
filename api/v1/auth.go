package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/upmon-simple/dto"
	"github.com/upmon-simple/services"
)

// Register creates a new user account
func Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	user, err := services.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns a bearer token
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	token, err := services.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// GetCurrentUser returns the authenticated user
func GetCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
