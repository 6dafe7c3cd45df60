package api

import (
	"net/http"

	apiconfig "smart_performance/pkg/api/config"
	apigen "smart_performance/pkg/api/generation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	GenerationHandler *apigen.Handler
	ConfigHandler     *apiconfig.Handler
	AllowOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	corsCfg := cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		if cfg.GenerationHandler != nil {
			h := cfg.GenerationHandler
			api.GET("/tasks", h.ListTasks)
			api.POST("/generate/:task", h.Generate)
			api.POST("/jobs/:task", h.StartJob)
			api.GET("/jobs/:id", h.GetJob)
			api.GET("/jobs/:id/export", h.ExportJob)
			api.POST("/render", h.Render)
		}
		if cfg.ConfigHandler != nil {
			api.GET("/config", cfg.ConfigHandler.HandleConfig)
			api.POST("/config/switch", cfg.ConfigHandler.HandleSwitch)
		}
	}

	return r
}
