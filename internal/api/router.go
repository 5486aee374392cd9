package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/padelarena/booking-backend/internal/auth"
	"github.com/padelarena/booking-backend/internal/booking"
	bookingHttp "github.com/padelarena/booking-backend/internal/booking/http"
	"github.com/padelarena/booking-backend/internal/payment"
	paymentHttp "github.com/padelarena/booking-backend/internal/payment/http"
	"github.com/padelarena/booking-backend/internal/resource"
	resourceHttp "github.com/padelarena/booking-backend/internal/resource/http"
	"github.com/padelarena/booking-backend/internal/unavailability"
	unavHttp "github.com/padelarena/booking-backend/internal/unavailability/http"
	"github.com/padelarena/booking-backend/internal/user"
	userHttp "github.com/padelarena/booking-backend/internal/user/http"
)

// Config holds everything the router needs to assemble the HTTP surface.
type Config struct {
	IsProduction     bool
	ProdOrigins      string
	WebhookSecret    string
	UserService      user.Service
	ResService       resource.Service
	UnavService      unavailability.Service
	BookingService   booking.Service
	PaymentService   payment.Service
	JWTManager       *auth.JWTManager
	BusinessLocation *time.Location
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
			"http://localhost:3000", // Frontend dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks that the authenticated user is an admin.
	adminMiddleware := auth.RequireRole(user.RoleAdmin)
	// staffMiddleware: Admits coaches as well, for day-to-day schedule upkeep.
	staffMiddleware := auth.RequireRole(user.RoleAdmin, user.RoleCoach)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	resHandler := resourceHttp.NewHandler(cfg.ResService)
	unavHandler := unavHttp.NewHandler(cfg.UnavService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.BusinessLocation)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService, cfg.WebhookSecret)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware)
		resourceHttp.RegisterRoutes(v1, resHandler, authMiddleware, adminMiddleware)
		unavHttp.RegisterRoutes(v1, unavHandler, authMiddleware, staffMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
