package routes

import (
	"strings"
	"time"

	"inkwell/config"
	"inkwell/handlers"
	"inkwell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

// RegisterBookingRoutes registers the public booking endpoints behind the
// credential guard. The /api paths match the studio's deployed frontend;
// the plain paths are the same handlers under their REST names.
func RegisterBookingRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, booking *handlers.BookingHandler, ts oauth2.TokenSource) {
	guard := middleware.RequireCredentials(ts)

	api := r.Group("/api")
	{
		api.Use(guard)
		api.GET("/horarios", availability.GetAvailableSlotsHandler)
		api.POST("/agendar", booking.CreateBookingHandler)
	}

	r.GET("/slots", guard, availability.GetAvailableSlotsHandler)
	r.POST("/bookings", guard, booking.CreateBookingHandler)
}

// RegisterHealthRoute exposes the dependency health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, booking *handlers.BookingHandler, ts oauth2.TokenSource) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     splitOrigins(config.AppConfig.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, availability, booking, ts)
	RegisterHealthRoute(r)
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
