// Package server wires repositories, services and handlers into a gin engine.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookingdesk/internal/config"
	"bookingdesk/internal/domain/admin"
	"bookingdesk/internal/domain/auth"
	"bookingdesk/internal/domain/booking"
	"bookingdesk/internal/locale"
	"bookingdesk/internal/middleware"
	"bookingdesk/internal/pkg/jwt"
	"bookingdesk/internal/pkg/response"
)

// Migrate creates the users and bookings tables.
func Migrate(db *gorm.DB) error {
	if err := auth.NewUserRepository(db).Migrate(); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := booking.NewRepository(db).Migrate(); err != nil {
		return fmt.Errorf("migrate bookings: %w", err)
	}
	return nil
}

// New builds the HTTP engine for cfg on top of db. The schema must already
// exist.
func New(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	policy, err := cfg.BookingPolicy()
	if err != nil {
		return nil, err
	}

	userRepo := auth.NewUserRepository(db)
	bookingRepo := booking.NewRepository(db)

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, jwtService, cfg.BcryptCost)
	bookingService := booking.NewService(bookingRepo, userRepo, policy)
	adminQuery := admin.NewQuery(bookingRepo, userRepo)

	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	adminHandler := admin.NewHandler(bookingService, adminQuery)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(locale.Middleware())
	r.Use(response.StatusMode(cfg.StrictStatus))

	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "BACKEND_OK", nil)
	})

	api := r.Group("/api")
	{
		// public: a stale bearer header must not block login
		authHandler.RegisterPublicRoutes(api)

		user := api.Group("")
		user.Use(middleware.JWTAuth(jwtService, cfg.AllowClientIDs))
		user.Use(middleware.RequireIdentity())
		bookingHandler.RegisterRoutes(user)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(jwtService, cfg.AllowClientIDs))
		adminGroup.Use(middleware.RequireAdmin(authService))
		adminHandler.RegisterRoutes(adminGroup)
	}

	return r, nil
}
