package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/reservation"
)

//go:generate mockgen -source=admin_handler.go -destination=mocks/admin_handler_mock.go -package=mocks

type ActionLogService interface {
	List(ctx context.Context, query actionlog.Query) (actionlog.Page, error)
}

type AccessService interface {
	ListAuthorizedEmails(ctx context.Context) ([]access.AuthorizedUser, error)
	AuthorizeEmail(ctx context.Context, email string) error
	RevokeEmail(ctx context.Context, email string) error
	ListUserRights(ctx context.Context) ([]access.UserRights, error)
	AddRight(ctx context.Context, userID string, right access.Right) (access.Rights, error)
	RemoveRight(ctx context.Context, userID string, right access.Right) (access.Rights, error)
}

type LicenseeService interface {
	Import(ctx context.Context, batch, batchSize int) (licensee.ImportResult, error)
	Search(ctx context.Context, query string, limit int) ([]licensee.Licensee, error)
}

type LedgerService interface {
	Ledger(ctx context.Context, from, to *time.Time) ([]reservation.Entry, error)
	Anomalies(ctx context.Context) ([]reservation.Entry, error)
}

// AdminHandler groups the admin-only endpoints; it expects AdminOnly to run first.
type AdminHandler struct {
	logs      ActionLogService
	access    AccessService
	licensees LicenseeService
	ledger    LedgerService
	loc       *time.Location
}

func NewAdminHandler(logs ActionLogService, access AccessService, licensees LicenseeService, ledger LedgerService, loc *time.Location) *AdminHandler {
	return &AdminHandler{logs: logs, access: access, licensees: licensees, ledger: ledger, loc: loc}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/action-logs", h.ListActionLogs)

	rg.GET("/authorized-users", h.ListAuthorizedUsers)
	rg.POST("/authorized-users", h.AuthorizeUser)
	rg.DELETE("/authorized-users/:email", h.RevokeUser)

	rg.GET("/user-rights", h.ListUserRights)
	rg.POST("/user-rights", h.UpdateUserRights)

	rg.GET("/licensees", h.SearchLicensees)
	rg.POST("/licensees/import", h.ImportLicensees)

	rg.GET("/reservations", h.Ledger)
	rg.GET("/reservations/anomalies", h.Anomalies)
}

type actionLogQuery struct {
	Page        int      `form:"page" binding:"omitempty,min=1"`
	Limit       int      `form:"limit" binding:"omitempty,min=1"`
	UserName    string   `form:"userName"`
	ActionTypes []string `form:"actionTypes"`
	Status      string   `form:"status"`
}

func (h *AdminHandler) ListActionLogs(c *gin.Context) {
	var params actionLogQuery

	if err := c.ShouldBindQuery(&params); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	query := actionlog.Query{
		Page:     params.Page,
		Limit:    params.Limit,
		UserName: strings.TrimSpace(params.UserName),
		Status:   actionlog.Result(strings.ToUpper(params.Status)),
	}

	// accepts both repeated parameters and a comma separated list
	for _, value := range params.ActionTypes {
		for _, actionType := range strings.Split(value, ",") {
			if actionType = strings.TrimSpace(actionType); len(actionType) > 0 {
				query.ActionTypes = append(query.ActionTypes, actionlog.ActionType(strings.ToUpper(actionType)))
			}
		}
	}

	page, err := h.logs.List(c.Request.Context(), query)

	if err != nil {
		respondError(c, err, "failed to retrieve action logs")
		return
	}

	c.IndentedJSON(http.StatusOK, page)
}

func (h *AdminHandler) ListAuthorizedUsers(c *gin.Context) {
	users, err := h.access.ListAuthorizedEmails(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve authorized users")
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

type authorizeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *AdminHandler) AuthorizeUser(c *gin.Context) {
	var req authorizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := h.access.AuthorizeEmail(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "failed to authorize user")
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{"message": "user authorized"})
}

func (h *AdminHandler) RevokeUser(c *gin.Context) {
	if err := h.access.RevokeEmail(c.Request.Context(), c.Param("email")); err != nil {
		respondError(c, err, "failed to revoke user")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "user revoked"})
}

func (h *AdminHandler) ListUserRights(c *gin.Context) {
	rights, err := h.access.ListUserRights(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve user rights")
		return
	}

	c.IndentedJSON(http.StatusOK, rights)
}

type rightsRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Right   string `json:"right" binding:"required"`
	Granted *bool  `json:"granted" binding:"required"`
}

func (h *AdminHandler) UpdateUserRights(c *gin.Context) {
	var req rightsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	var (
		rights access.Rights
		err    error
	)

	right := access.Right(strings.ToUpper(req.Right))

	if *req.Granted {
		rights, err = h.access.AddRight(c.Request.Context(), req.UserID, right)
	} else {
		rights, err = h.access.RemoveRight(c.Request.Context(), req.UserID, right)
	}

	if err != nil {
		respondError(c, err, "failed to update user rights")
		return
	}

	c.IndentedJSON(http.StatusOK, access.UserRights{UserID: req.UserID, Rights: rights})
}

type searchQuery struct {
	Query string `form:"query" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

func (h *AdminHandler) SearchLicensees(c *gin.Context) {
	var params searchQuery

	if err := c.ShouldBindQuery(&params); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "query cannot be empty"})
		return
	}

	licensees, err := h.licensees.Search(c.Request.Context(), params.Query, params.Limit)

	if err != nil {
		respondError(c, err, "failed to search licensees")
		return
	}

	c.IndentedJSON(http.StatusOK, licensees)
}

type importQuery struct {
	Batch     int `form:"batch" binding:"omitempty,min=0"`
	BatchSize int `form:"batchSize" binding:"omitempty,min=1"`
}

func (h *AdminHandler) ImportLicensees(c *gin.Context) {
	var params importQuery

	if err := c.ShouldBindQuery(&params); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	result, err := h.licensees.Import(c.Request.Context(), params.Batch, params.BatchSize)

	if err != nil {
		respondError(c, err, "failed to import licensees")
		return
	}

	c.IndentedJSON(http.StatusOK, result)
}

func (h *AdminHandler) Ledger(c *gin.Context) {
	var from, to *time.Time

	if len(c.Query("from")) > 0 {
		date, ok := parseDay(c, "from", h.loc)

		if !ok {
			return
		}

		from = &date
	}

	if len(c.Query("to")) > 0 {
		date, ok := parseDay(c, "to", h.loc)

		if !ok {
			return
		}

		to = &date
	}

	entries, err := h.ledger.Ledger(c.Request.Context(), from, to)

	if err != nil {
		respondError(c, err, "failed to retrieve ledger")
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}

func (h *AdminHandler) Anomalies(c *gin.Context) {
	entries, err := h.ledger.Anomalies(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve ledger anomalies")
		return
	}

	c.IndentedJSON(http.StatusOK, entries)
}
