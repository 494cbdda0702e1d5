package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/api"
	"github.com/hanksha/court-booking-backend/auth"
	"github.com/hanksha/court-booking-backend/config"
	"github.com/hanksha/court-booking-backend/favorite"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/reservation"
	"github.com/hanksha/court-booking-backend/upstream"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	cfg, err := config.Load()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	_, err = pool.Exec(context.Background(), setupSQL)
	if err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	} else {
		logger.Info("initialized database tables")
	}

	loc := cfg.Location()

	client := upstream.NewClient(
		cfg.UpstreamBaseURL,
		cfg.UpstreamAPIKey,
		cfg.UpstreamFacilityID,
		upstream.Coordinates{Latitude: cfg.ClubLatitude, Longitude: cfg.ClubLongitude},
		cfg.UpstreamTimeout,
	)

	directory := licensee.NewDirectory(client)

	if cfg.PrimeDirectory {
		go func() {
			if err := directory.Initialize(context.Background()); err != nil {
				logger.Error("failed to prime licensee directory", "err", err)
			}
		}()
	}

	actionLogService := actionlog.NewService(actionlog.NewRepository(pool))
	accessService := access.NewService(access.NewRepository(pool))
	licenseeService := licensee.NewService(licensee.NewRepository(pool), directory)
	favoriteService := favorite.NewService(favorite.NewRepository(pool), directory)
	reservationService := reservation.NewService(
		client,
		reservation.NewRepository(pool),
		actionLogService,
		directory,
		reservation.NewCourts(cfg.Courts),
		loc,
	)
	authService := auth.NewService(client, accessService, actionLogService, directory, auth.NewTokens(cfg.SessionSecret, cfg.SessionTTL))

	r := gin.Default()

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"directory": directory.IsInitialized(),
		})
	})

	v1 := r.Group("/api/v1")
	sessionAuth := api.SessionAuth(authService)

	// AUTH API

	api.NewAuthHandler(authService, cfg.SecureCookie).Register(v1.Group("/auth"), sessionAuth)

	// RESERVATION API

	authenticated := v1.Group("", sessionAuth)

	api.NewReservationHandler(reservationService, loc).Register(authenticated.Group("/reservations"))
	api.NewBookingHandler(reservationService, loc).Register(authenticated.Group("/bookings"))
	api.NewFavoriteHandler(favoriteService).Register(authenticated.Group("/favorites"))

	// ADMIN API

	adminRouter := authenticated.Group("/admin", api.AdminOnly())
	adminHandler := api.NewAdminHandler(actionLogService, accessService, licenseeService, reservationService, loc)

	adminHandler.Register(adminRouter)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
