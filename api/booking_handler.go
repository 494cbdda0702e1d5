package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/reservation"
	"github.com/hanksha/court-booking-backend/upstream"
)

//go:generate mockgen -source=booking_handler.go -destination=mocks/booking_handler_mock.go -package=mocks

type BookingService interface {
	UserBookings(ctx context.Context, actor reservation.Actor, credential string, from *time.Time) ([]upstream.Booking, error)
	QrCode(ctx context.Context, actor reservation.Actor, credential string, req reservation.QrRequest) (string, error)
}

// BookingHandler serves the provider-side view of the user's bookings.
type BookingHandler struct {
	service BookingService
	loc     *time.Location
}

func NewBookingHandler(service BookingService, loc *time.Location) *BookingHandler {
	return &BookingHandler{service: service, loc: loc}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/qr-code", h.QrCode)
}

func (h *BookingHandler) List(c *gin.Context) {
	var from *time.Time

	if len(c.Query("from")) > 0 {
		date, ok := parseDay(c, "from", h.loc)

		if !ok {
			return
		}

		from = &date
	}

	bookings, err := h.service.UserBookings(c.Request.Context(), currentActor(c), credential(c), from)

	if err != nil {
		respondError(c, err, "failed to retrieve bookings")
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) QrCode(c *gin.Context) {
	req := reservation.QrRequest{
		BookingID: c.Query("bookingId"),
		SessionID: c.Query("sessionId"),
		UserID:    c.Query("userId"),
	}

	uri, err := h.service.QrCode(c.Request.Context(), currentActor(c), credential(c), req)

	if err != nil {
		respondError(c, err, "failed to fetch qr code")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"qrCodeUri": uri})
}
