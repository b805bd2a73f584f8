// controllers/authController.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-tracker/repository"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController checks login credentials against the users document. This
// is a convenience for the login page, not a security boundary.
type AuthController struct {
	users *repository.Users
}

func NewAuthController(users *repository.Users) *AuthController {
	return &AuthController{users: users}
}

// Login matches the submitted credentials against the stored users.
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, user := range ctl.users.Get() {
		if user.Username == req.Username && user.Password == req.Password {
			c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
}
