package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"barberhub/internal/auth"
	"barberhub/internal/config"
	"barberhub/internal/httperr"
	"barberhub/internal/middleware"
	"barberhub/internal/models"
	"barberhub/internal/validators"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	revoker *auth.Revoker
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, revoker *auth.Revoker) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, revoker: revoker}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.VerifyEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "email_already_used", "This email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         models.RoleClient,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
		return
	}

	token, err := auth.NewAccessToken(h.config, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":        userJSON(&user),
		"accessToken": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := auth.NewAccessToken(h.config, &user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        userJSON(&user),
		"accessToken": token,
	})
}

// Logout revokes the presented token until its natural expiry. Without
// Redis the endpoint still succeeds; the client just drops the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.revoker != nil {
		jti := c.GetString(middleware.ContextTokenJTI)
		exp := c.GetInt64(middleware.ContextTokenExp)
		if jti != "" && exp > 0 {
			if err := h.revoker.Revoke(c.Request.Context(), jti, time.Unix(exp, 0)); err != nil {
				httperr.BadGateway(c, "revocation_failed", "Could not revoke the session, try again.")
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func userJSON(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName,
		"phone":    user.Phone,
		"role":     user.Role,
	}
}
