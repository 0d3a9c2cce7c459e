package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/api/wisdom/endpoints"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/http/middleware"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/wisdom"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, facade *wisdom.Facade, broadcaster endpoints.Broadcaster) {
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.HadithModule(facade),
		endpoints.ProverbModule(facade),
		endpoints.ReflectionModule(facade),
		endpoints.DailyModule(facade, broadcaster),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
