package handlers

import (
	"net/http"
	"time"

	"techsphere-api/config"
	"techsphere-api/helper"
	"techsphere-api/models"
	"techsphere-api/services"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the session cookie written at login.
type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	authService services.AuthService
	cookie      CookieOptions
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := h.Helper.DecodeJSON(c, &req, true); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := h.Helper.DecodeJSON(c, &req, true); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.setTokenCookie(c, token, int(h.cookie.MaxAge.Seconds()))
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	h.Helper.SendSuccess(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(config.TokenCookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
