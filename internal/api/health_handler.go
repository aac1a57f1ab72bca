package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck godoc
// @Summary Service health and capability descriptor
// @Tags Health
// @Produce json
// @Success 200 {object} gin.H "Service status"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Everytime Fitness API is running!",
		"ai_model": "Hugging Face - Microsoft DialoGPT",
		"features": []string{
			"Diet Plan Generation",
			"BMI Calculator",
			"Lifestyle Recommendations",
		},
	})
}
