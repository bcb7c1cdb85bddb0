package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/generate"
)

func NewRouter(handler *generate.Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menus := r.Group("/menus")
	{
		menus.POST("/generate", handler.Generate)
		menus.POST("/pdf", handler.GenerateFromPDF)
		menus.POST("/publish", handler.Publish)
		menus.GET("/generations/:id", handler.GetGeneration)
	}

	return r
}
