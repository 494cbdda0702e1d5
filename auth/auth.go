package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hanksha/court-booking-backend/access"
)

// Claims travel in the session cookie; the subject is the provider user id. Credential is the provider token forwarded on every upstream call.
type Claims struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Credential string `json:"credential"`
	jwt.RegisteredClaims
}

type User struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Rights    access.Rights `json:"rights"`
}

type Session struct {
	Token      string    `json:"-"`
	Credential string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
	User       User      `json:"user"`
}
