package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/reservation"
	"github.com/hanksha/court-booking-backend/upstream"
)

//go:generate mockgen -source=reservation_handler.go -destination=mocks/reservation_handler_mock.go -package=mocks

type ReservationService interface {
	ListReservations(ctx context.Context, date time.Time) ([]reservation.Reservation, error)
	DayGrid(ctx context.Context, date time.Time) (reservation.DayView, error)
	Book(ctx context.Context, actor reservation.Actor, credential string, req reservation.BookRequest) (*upstream.BookingConfirmation, error)
	Cancel(ctx context.Context, actor reservation.Actor, credential string, req reservation.CancelRequest) error
	FutureBookingsByActor(ctx context.Context, userID string) ([]reservation.Entry, error)
}

type ReservationHandler struct {
	service ReservationService
	loc     *time.Location
}

func NewReservationHandler(service ReservationService, loc *time.Location) *ReservationHandler {
	return &ReservationHandler{service: service, loc: loc}
}

func (h *ReservationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/grid", h.Grid)
	rg.GET("/mine", h.Mine)
	rg.PUT("/:sessionId", h.Book)
	rg.DELETE("/:sessionId", h.Cancel)
}

// parseDay reads a YYYY-MM-DD query parameter in the club timezone.
func parseDay(c *gin.Context, name string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(time.DateOnly, c.Query(name), loc)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse " + name})
		return time.Time{}, false
	}

	return date, true
}

func (h *ReservationHandler) List(c *gin.Context) {
	date, ok := parseDay(c, "date", h.loc)

	if !ok {
		return
	}

	reservations, err := h.service.ListReservations(c.Request.Context(), date)

	if err != nil {
		respondError(c, err, "failed to retrieve reservations")
		return
	}

	c.IndentedJSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) Grid(c *gin.Context) {
	date, ok := parseDay(c, "date", h.loc)

	if !ok {
		return
	}

	view, err := h.service.DayGrid(c.Request.Context(), date)

	if err != nil {
		respondError(c, err, "failed to retrieve reservations")
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *ReservationHandler) Mine(c *gin.Context) {
	entries, err := h.service.FutureBookingsByActor(c.Request.Context(), currentUser(c).ID)

	if err != nil {
		respondError(c, err, "failed to retrieve reservations")
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}

func (h *ReservationHandler) Book(c *gin.Context) {
	var req reservation.BookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	req.SessionID = c.Param("sessionId")

	confirmation, err := h.service.Book(c.Request.Context(), currentActor(c), credential(c), req)

	if err != nil {
		respondError(c, err, "failed to book session")
		return
	}

	c.IndentedJSON(http.StatusOK, confirmation)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	var req reservation.CancelRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	req.SessionID = c.Param("sessionId")

	if err := h.service.Cancel(c.Request.Context(), currentActor(c), credential(c), req); err != nil {
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"success": true})
}
