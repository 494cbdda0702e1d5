package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/auth"
	"github.com/hanksha/court-booking-backend/favorite"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/reservation"
	"github.com/hanksha/court-booking-backend/upstream"
)

var badRequestErrors = []error{
	reservation.ErrInvalidParameter,
	access.ErrInvalidEmail,
	access.ErrUnknownRight,
	access.ErrInvalidUserID,
	actionlog.ErrInvalidQuery,
	licensee.ErrInvalidBatch,
	favorite.ErrInvalidFavorite,
	favorite.ErrUnknownLicensee,
	auth.ErrMissingCredentials,
}

// respondError writes the status matching err. fallback is the message for anything unexpected.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, upstream.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, auth.ErrEmailNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "email not authorized"})
	case errors.Is(err, reservation.ErrPastDate):
		c.JSON(http.StatusForbidden, gin.H{"error": "date is in the past"})
	case errors.Is(err, reservation.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, upstream.ErrSlotAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
