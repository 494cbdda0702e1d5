package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hanksha/court-booking-backend/api"
	mock_api "github.com/hanksha/court-booking-backend/api/mocks"
	"github.com/hanksha/court-booking-backend/auth"
	"github.com/hanksha/court-booking-backend/reservation"
	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupReservationRouter(t *testing.T, user auth.User) (http.Handler, *gomock.Controller, *mock_api.MockReservationService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	router := newRouter()
	mockService := mock_api.NewMockReservationService(ctrl)
	rg := router.Group("/api/v1/reservations")
	rg.Use(setUserInContext(user))
	api.NewReservationHandler(mockService, club).Register(rg)

	return router, ctrl, mockService
}

const bookBody = `{"userId":"u1","partnerId":"u2","startDate":"2026-10-20T08:00:00+01:00","court":1}`

func TestListReservations(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		reservations := []reservation.Reservation{{
			SessionID:    "s1",
			ClubID:       "club-a",
			Court:        1,
			StartDate:    time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC),
			Participants: []upstream.Participant{},
			Source:       reservation.SourceUpstream,
		}}
		reservationsJson, _ := json.MarshalIndent(reservations, "", "    ")

		mockService.EXPECT().ListReservations(gomock.Any(), time.Date(2026, 10, 20, 0, 0, 0, 0, club)).Return(reservations, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations?date=2026-10-20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(reservationsJson), w.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().ListReservations(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse date"}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().ListReservations(gomock.Any(), gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/reservations?date=2026-10-20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve reservations"}`, w.Body.String())
	})
}

func TestDayGrid(t *testing.T) {
	router, ctrl, mockService := setupReservationRouter(t, member)
	defer ctrl.Finish()

	view := reservation.DayView{Date: "2026-10-20", TimeLabels: []string{}, Courts: []reservation.CourtView{}}
	viewJson, _ := json.MarshalIndent(view, "", "    ")

	mockService.EXPECT().DayGrid(gomock.Any(), time.Date(2026, 10, 20, 0, 0, 0, 0, club)).Return(view, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations/grid?date=2026-10-20", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, string(viewJson), w.Body.String())
}

func TestMyReservations(t *testing.T) {
	router, ctrl, mockService := setupReservationRouter(t, member)
	defer ctrl.Finish()

	mockService.EXPECT().FutureBookingsByActor(gomock.Any(), "u1").Return([]reservation.Entry{}, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/reservations/mine", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBookReservation(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		confirmation := &upstream.BookingConfirmation{Transaction: upstream.Transaction{ID: "t1", Status: "PAID"}}

		mockService.EXPECT().Book(gomock.Any(), reservation.Actor{UserID: "u1", Rights: member.Rights}, "provider-token", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ reservation.Actor, _ string, req reservation.BookRequest) (*upstream.BookingConfirmation, error) {
				assert.Equal(t, "s1", req.SessionID)
				assert.Equal(t, "u1", req.MainUserID)
				assert.Equal(t, "u2", req.PartnerID)
				assert.Equal(t, 1, req.Court)
				assert.True(t, req.StartDate.Equal(time.Date(2026, 10, 20, 8, 0, 0, 0, club)))
				return confirmation, nil
			}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/reservations/s1", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"t1"`)
	})

	t.Run("already booked", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream.ErrSlotAlreadyBooked).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/reservations/s1", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"slot already booked"}`, w.Body.String())
	})

	t.Run("business rule", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, reservation.ErrPastDate).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/reservations/s1", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"date is in the past"}`, w.Body.String())
	})

	t.Run("upstream session expired", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, upstream.ErrUnauthorized).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/reservations/s1", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/reservations/s1", strings.NewReader(`{"userId":`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"failed to parse JSON body"}`, w.Body.String())
	})
}

func TestCancelReservation(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, admin)
		defer ctrl.Finish()

		mockService.EXPECT().Cancel(gomock.Any(), reservation.Actor{UserID: "a1", Rights: admin.Rights}, "provider-token", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ reservation.Actor, _ string, req reservation.CancelRequest) error {
				assert.Equal(t, "s7", req.SessionID)
				return nil
			}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/reservations/s7", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("not allowed", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/reservations/s7", strings.NewReader(bookBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("invalid parameter", func(t *testing.T) {
		router, ctrl, mockService := setupReservationRouter(t, member)
		defer ctrl.Finish()

		mockService.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation.ErrInvalidParameter).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/reservations/s7", strings.NewReader(`{}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"invalid parameter"}`, w.Body.String())
	})
}
