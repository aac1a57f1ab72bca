package api

import (
	"everytime/fitness-backend/internal/config"
	"everytime/fitness-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires middleware and the public endpoints onto the engine.
func SetupRoutes(router *gin.Engine, cfg config.Config, planService service.PlanService) {
	router.Use(RequestID())
	router.Use(corsMiddleware(cfg.CORS))

	frontendHandler := NewFrontendHandler(cfg.Frontend.IndexPath)
	planHandler := NewPlanHandler(planService)

	// The frontend lives at the root; everything else is under /api.
	router.GET("/", frontendHandler.Index)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/generate-diet-plan", planHandler.GenerateDietPlan)
		apiGroup.POST("/bmi-calculator", planHandler.CalculateBMI)
		apiGroup.GET("/health", HealthCheck)
	}
}

// corsMiddleware builds the CORS policy. The browser frontend may be served
// from a different origin than the API, so cross-origin requests stay open
// by default and can be narrowed through configuration.
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()

	allowAll := len(cfg.AllowedOrigins) == 0
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}

	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, RequestIDHeader)

	return cors.New(corsCfg)
}
