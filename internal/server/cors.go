package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/storage/internal/config"
)

// corsMiddleware builds the CORS policy from configuration.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Content-Length",
			"Accept",
			"Origin",
			"Cache-Control",
			"X-Requested-With",
		},
		MaxAge: 12 * time.Hour,
	})
}
