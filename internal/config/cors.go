package config

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend, or any origin when none is
// set.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: frontendURL != "",
		MaxAge:           12 * time.Hour,
	}
	if frontendURL == "" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = []string{frontendURL}
	}
	return cors.New(c)
}
