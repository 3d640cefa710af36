package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"carpark-finder/config"
	"carpark-finder/internal/mw"
	"carpark-finder/internal/web"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, h *Handler) (*gin.Engine, error) {
	r := gin.Default()
	r.Use(mw.RequestID())

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", mw.RequestIDHeader},
			ExposeHeaders: []string{mw.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}
		if err := corsCfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid cors configuration: %w", err)
		}
		r.Use(cors.New(corsCfg))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	r.GET("/healthz", h.GetHealth)
	r.GET("/", h.GetIndex)
	r.POST("/", rateLimiter, h.PostIndex)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.PUT("/sessions/:id/postcode", h.PutPostcode)
		api.POST("/sessions/:id/submit", h.SubmitSession)
		api.DELETE("/sessions/:id", h.DeleteSession)
	}

	return r, nil
}
