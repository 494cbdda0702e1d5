package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/auth"
)

//go:generate mockgen -source=auth_handler.go -destination=mocks/auth_handler_mock.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
}

type AuthHandler struct {
	service      AuthService
	secureCookie bool
}

func NewAuthHandler(service AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup, sessionAuth gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", sessionAuth, h.Me)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)

	if err != nil {
		respondError(c, err, "failed to login")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, session.Token, int(time.Until(session.ExpiresAt).Seconds()), "/", "", h.secureCookie, true)

	c.IndentedJSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", h.secureCookie, true)

	c.IndentedJSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the current user with rights read at request time.
func (h *AuthHandler) Me(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, currentUser(c))
}
