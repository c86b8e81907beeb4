package controllers

import (
	"innpilot/dto"
	"innpilot/middleware"
	"innpilot/models"
	"innpilot/response"
	"innpilot/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	DB   *gorm.DB
	Auth *services.AuthService
}

func NewAuthController(db *gorm.DB, auth *services.AuthService) *AuthController {
	return &AuthController{DB: db, Auth: auth}
}

// Register creates the hotel and its first manager account.
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, err := ctl.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone, req.HotelName)
	if err != nil {
		handleError(c, err)
		return
	}

	access, refresh, err := ctl.Auth.IssueTokens(user)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, dto.TokenResponse{AccessToken: access, RefreshToken: refresh, User: user})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	user, access, refresh, err := ctl.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.TokenResponse{AccessToken: access, RefreshToken: refresh, User: user})
}

// GoogleLogin exchanges a Google id token for our token pair, provisioning a
// shell hotel for first-time users.
func (ctl *AuthController) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	payload, err := ctl.Auth.VerifyGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	user, err := ctl.Auth.FindOrCreateGoogleUser(c.Request.Context(), email, name, picture)
	if err != nil {
		handleError(c, err)
		return
	}

	access, refresh, err := ctl.Auth.IssueTokens(user)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, dto.TokenResponse{AccessToken: access, RefreshToken: refresh, User: user})
}

// Profile returns the authenticated user.
func (ctl *AuthController) Profile(c *gin.Context) {
	userID := middleware.UserID(c)

	var user models.User
	if err := ctl.DB.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, user)
}
