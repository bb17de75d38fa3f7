package mockapi

import (
	"github.com/gin-gonic/gin"

	"storefront-client/internal/models"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id, ok := s.state.emails[req.Email]
	if !ok || s.state.passwords[req.Email] != req.Password {
		c.JSON(401, gin.H{"message": "Invalid credentials"})
		return
	}
	token := s.state.issueToken(id)
	c.JSON(200, gin.H{"token": token, "user": s.state.users[id]})
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.emails[req.Email]; exists {
		c.JSON(409, gin.H{"message": "Email already registered"})
		return
	}
	user := &models.User{ID: newID(), Name: req.Name, Email: req.Email, Role: models.RoleUser}
	s.state.users[user.ID] = user
	s.state.emails[user.Email] = user.ID
	s.state.passwords[user.Email] = req.Password

	token := s.state.issueToken(user.ID)
	c.JSON(201, gin.H{"token": token, "user": user})
}

func (s *Server) profile(c *gin.Context, user *models.User) {
	c.JSON(200, gin.H{"user": user})
}

func (s *Server) updateProfile(c *gin.Context, user *models.User) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "Invalid request body"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	stored := s.state.users[user.ID]
	if req.Name != "" {
		stored.Name = req.Name
	}
	dataJSON(c, 200, stored)
}
