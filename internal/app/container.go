package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/padelarena/booking-backend/internal/api"
	"github.com/padelarena/booking-backend/internal/auth"
	"github.com/padelarena/booking-backend/internal/booking"
	"github.com/padelarena/booking-backend/internal/payment"
	"github.com/padelarena/booking-backend/internal/pkg/storage"
	"github.com/padelarena/booking-backend/internal/resource"
	"github.com/padelarena/booking-backend/internal/unavailability"
	"github.com/padelarena/booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	DBPool           *pgxpool.Pool
	JWTSecret        string
	JWTTTL           time.Duration
	BcryptCost       int
	BusinessLocation *time.Location
	WebhookSecret    string
	Storage          storage.Storage
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptHasher(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Resource Module
	resRepo := resource.NewPgxRepository(cfg.DBPool)
	resService := resource.NewService(resRepo, cfg.Storage)

	// Unavailability Module
	unavRepo := unavailability.NewPgxRepository(cfg.DBPool)
	unavService := unavailability.NewService(unavRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, resService, unavService, cfg.BusinessLocation)

	// Payment Module
	paymentRepo := payment.NewPgxRepository(cfg.DBPool)
	paymentService := payment.NewService(paymentRepo, bookingService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		WebhookSecret:    cfg.WebhookSecret,
		UserService:      userService,
		ResService:       resService,
		UnavService:      unavService,
		BookingService:   bookingService,
		PaymentService:   paymentService,
		JWTManager:       jwtManager,
		BusinessLocation: cfg.BusinessLocation,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
