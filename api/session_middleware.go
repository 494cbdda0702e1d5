package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/auth"
	"github.com/hanksha/court-booking-backend/reservation"
)

//go:generate mockgen -source=session_middleware.go -destination=mocks/session_middleware_mock.go -package=mocks

const (
	SessionCookie = "session-token"

	userKey       = "user"
	credentialKey = "credential"
)

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Session, error)
}

// SessionAuth reads the session cookie, or a bearer token for non-browser clients,
// and stores the user and the provider credential in the context.
func SessionAuth(authenticator SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)

		if err != nil || len(token) == 0 {
			token, _ = strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		}

		if len(token) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		session, err := authenticator.Authenticate(c.Request.Context(), token)

		if err != nil {
			c.Error(err)
			if errors.Is(err, auth.ErrInvalidToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
			}
			c.Abort()
			return
		}

		c.Set(userKey, session.User)
		c.Set(credentialKey, session.Credential)
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(userKey).(auth.User)

		if !user.Rights.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func currentUser(c *gin.Context) auth.User {
	return c.MustGet(userKey).(auth.User)
}

func currentActor(c *gin.Context) reservation.Actor {
	user := currentUser(c)
	return reservation.Actor{UserID: user.ID, Rights: user.Rights}
}

func credential(c *gin.Context) string {
	return c.GetString(credentialKey)
}
