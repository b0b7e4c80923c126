// Package server exposes the sizing engine over HTTP.
package server

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"

	"github.com/besskit/bess-calculator/internal/calculation"
)

// NewRouter builds the HTTP API over a shared engine. Set API_ENV=production
// to silence gin's debug output.
func NewRouter(engine *calculation.Engine) *gin.Engine {
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: CodeInternal, Message: fmt.Sprint(recovered)},
		})
	}))
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler := NewSizingHandler(engine)

	api := router.Group("/api/v1")
	{
		api.POST("/sizing", handler.RunSizing)
		api.GET("/catalog", handler.GetCatalog)
	}
	return router
}
