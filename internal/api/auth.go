package api

import (
	"errors"
	"time"

	a "campus-events/internal/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandlers struct {
	authService *a.AuthService
	secret      string
	tokenTTL    time.Duration
}

func NewAuthHandlers(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthHandlers {
	return &AuthHandlers{
		authService: a.NewAuthService(db),
		secret:      secret,
		tokenTTL:    tokenTTL,
	}
}

type UserCreateInput struct {
	Email    string `json:"email" binding:"required" example:"student@college.edu"`
	FullName string `json:"full_name" example:"Jamie Lee"`
	Password string `json:"password" binding:"required" example:"securePassword123"`
}

type UserLoginInput struct {
	Email    string `json:"email" binding:"required" example:"student@college.edu"`
	Password string `json:"password" binding:"required" example:"securePassword123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"incorrect email or password"`
}

// CreateUserHandler registers a new user
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserCreateInput true "Registration request"
// @Success 200 {object} campus.User "User created successfully"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /api/v1/users [post]
func (h *AuthHandlers) CreateUserHandler(c *gin.Context) {
	var input UserCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(input.Email, input.FullName, input.Password, false)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, user)
}

// LoginHandler authenticates a user and issues a bearer token
// @Summary Login user
// @Description Authenticate with email and password, returns a JWT access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body UserLoginInput true "Login request"
// @Success 200 {object} TokenResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /api/v1/login [post]
func (h *AuthHandlers) LoginHandler(c *gin.Context) {
	var input UserLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, a.ErrInvalidCredentials) || errors.Is(err, a.ErrInactiveUser) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Login failed"})
		return
	}

	token, err := a.GenerateToken(h.secret, user, h.tokenTTL)
	if err != nil {
		c.JSON(500, gin.H{"error": "Token generation failed"})
		return
	}

	c.JSON(200, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// MeHandler returns the authenticated user
// @Summary Get current user
// @Description Return the profile of the authenticated user
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} campus.User
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/v1/users/me [get]
func (h *AuthHandlers) MeHandler(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := h.authService.GetUser(userID)
	if err != nil {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, user)
}
