package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/favorite"
)

//go:generate mockgen -source=favorite_handler.go -destination=mocks/favorite_handler_mock.go -package=mocks

type FavoriteService interface {
	List(ctx context.Context, userID string) ([]favorite.Favorite, error)
	Add(ctx context.Context, userID, licenseeID string) error
	Remove(ctx context.Context, userID, licenseeID string) error
}

type FavoriteHandler struct {
	service FavoriteService
}

func NewFavoriteHandler(service FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

func (h *FavoriteHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Add)
	rg.DELETE("/:licenseeId", h.Remove)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	favorites, err := h.service.List(c.Request.Context(), currentUser(c).ID)

	if err != nil {
		respondError(c, err, "failed to retrieve favorites")
		return
	}

	c.IndentedJSON(http.StatusOK, favorites)
}

type favoriteRequest struct {
	LicenseeID string `json:"licenseeId" binding:"required"`
}

func (h *FavoriteHandler) Add(c *gin.Context) {
	var req favoriteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := h.service.Add(c.Request.Context(), currentUser(c).ID, req.LicenseeID); err != nil {
		respondError(c, err, "failed to add favorite")
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{"message": "favorite added"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), currentUser(c).ID, c.Param("licenseeId")); err != nil {
		respondError(c, err, "failed to remove favorite")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "favorite removed"})
}
