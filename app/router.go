// Package app wires the shared HTTP routes.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP router over an App.
func NewRouter(a *App) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/", a.Index)
	router.GET("/health", a.Health)
	router.POST("/ensure-user", a.EnsureUser)
	router.GET("/user/:id", a.GetUser)
	router.POST("/upload-swing/", a.UploadSwing)
	router.POST("/create-checkout-session/", a.CreateCheckoutSession)
	router.POST("/stripe-webhook/", a.StripeWebhook)

	return router
}
