package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ArowuTest/luckygen/internal/models"
)

func validRole(r models.AdminUserRole) bool {
	switch r {
	case models.RoleSuperAdmin, models.RoleAdmin, models.RoleViewer:
		return true
	}
	return false
}

func validStatus(s models.UserStatus) bool {
	switch s {
	case models.StatusActive, models.StatusInactive, models.StatusLocked:
		return true
	}
	return false
}

// CreateUser creates a new admin user.
func (h *Handler) CreateUser(c *gin.Context) {
	if h.Users == nil {
		databaseDisabled(c)
		return
	}
	var input struct {
		Username string               `json:"username" binding:"required"`
		Email    string               `json:"email" binding:"required,email"`
		Password string               `json:"password" binding:"required,min=6"`
		Role     models.AdminUserRole `json:"role" binding:"required"`
		Status   models.UserStatus    `json:"status,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}
	if !validRole(input.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if input.Status == "" {
		input.Status = models.StatusActive
	} else if !validStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := models.AdminUser{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
		Status:       input.Status,
	}
	if err := h.Users.CreateUser(c.Request.Context(), &newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user: " + err.Error()})
		return
	}
	h.Log.WithFields(logrus.Fields{
		"username": newUser.Username,
		"role":     newUser.Role,
	}).Info("admin user created")
	c.JSON(http.StatusCreated, newUser)
}

// ListUsers returns all admin users.
func (h *Handler) ListUsers(c *gin.Context) {
	if h.Users == nil {
		databaseDisabled(c)
		return
	}
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users: " + err.Error()})
		return
	}
	if users == nil {
		users = []models.AdminUser{}
	}
	c.JSON(http.StatusOK, users)
}
