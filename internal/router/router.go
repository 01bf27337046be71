package router

import (
	"github.com/gin-gonic/gin"
	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/internal/app/controller"
	"github.com/zubalebr/contestacoes-backend/internal/middleware"
)

type Router struct {
	storeController      *controller.StoreController
	submissionController *controller.SubmissionController
	config               *config.Config
}

func NewRouter(
	storeController *controller.StoreController,
	submissionController *controller.SubmissionController,
	cfg *config.Config,
) *Router {
	return &Router{
		storeController:      storeController,
		submissionController: submissionController,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Portal de Contestações API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/stores", r.storeController.ListStores)
		v1.GET("/forms/:type/schema", r.submissionController.GetFormSchema)
		v1.POST("/submissions", r.submissionController.Submit)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
