package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/merchware/shipcast/internal/middleware"
)

// NewRouter builds the Gin engine: global middlewares, a 10 second request
// timeout, the Swagger mount and the /api/v1 routes. Health probes are
// registered separately in app.InitializeApp, next to the database they
// check.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
	)

	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/estimate", handler.Estimate)
		v1.POST("/preview", handler.Preview)
		v1.GET("/countries", handler.Countries)

		v1.GET("/settings", handler.GetSettings)
		v1.PUT("/settings", handler.PutSettings)

		v1.GET("/rules", handler.ListRules)
		v1.POST("/rules", handler.CreateRule)
		v1.GET("/rules/:id", handler.GetRule)
		v1.PUT("/rules/:id", handler.UpdateRule)
		v1.DELETE("/rules/:id", handler.DeleteRule)
	}

	return router
}
