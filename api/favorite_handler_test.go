package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/api"
	mock_api "github.com/hanksha/court-booking-backend/api/mocks"
	"github.com/hanksha/court-booking-backend/favorite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupFavoriteRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockFavoriteService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	router := newRouter()
	mockService := mock_api.NewMockFavoriteService(ctrl)
	api.NewFavoriteHandler(mockService).Register(router.Group("/api/v1/favorites", setUserInContext(member)))

	return router, ctrl, mockService
}

func TestFavorites(t *testing.T) {

	t.Run("list", func(t *testing.T) {
		router, ctrl, mockService := setupFavoriteRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().List(gomock.Any(), "u1").Return([]favorite.Favorite{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/favorites", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("add", func(t *testing.T) {
		router, ctrl, mockService := setupFavoriteRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), "u1", "u2").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/favorites", strings.NewReader(`{"licenseeId":"u2"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("add unknown licensee", func(t *testing.T) {
		router, ctrl, mockService := setupFavoriteRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Add(gomock.Any(), "u1", "u9").Return(favorite.ErrUnknownLicensee).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/favorites", strings.NewReader(`{"licenseeId":"u9"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("remove", func(t *testing.T) {
		router, ctrl, mockService := setupFavoriteRouter(t)
		defer ctrl.Finish()

		mockService.EXPECT().Remove(gomock.Any(), "u1", "u2").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/favorites/u2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})
}
