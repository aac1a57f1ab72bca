package api

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"everytime/fitness-backend/internal/domain"
	"everytime/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for API (Data Transfer Objects) ---

// GenerateDietPlanRequest carries the intake form. Pointer fields let the
// handler tell a missing field from a zero value, so the error response can
// name the exact field.
type GenerateDietPlanRequest struct {
	Name     *string  `json:"name"`
	Age      *int     `json:"age"`
	Height   *float64 `json:"height"`
	Weight   *float64 `json:"weight"`
	Gender   *string  `json:"gender"`
	Smoking  *string  `json:"smoking"`
	Drinking *string  `json:"drinking"`
}

// missingField reports the first absent field in intake order.
func (r *GenerateDietPlanRequest) missingField() (string, bool) {
	checks := []struct {
		field   string
		present bool
	}{
		{"name", r.Name != nil},
		{"age", r.Age != nil},
		{"height", r.Height != nil},
		{"weight", r.Weight != nil},
		{"gender", r.Gender != nil},
		{"smoking", r.Smoking != nil},
		{"drinking", r.Drinking != nil},
	}
	for _, c := range checks {
		if !c.present {
			return c.field, true
		}
	}
	return "", false
}

// invalidField reports the first numeric field that is not positive.
// Presence must already be checked.
func (r *GenerateDietPlanRequest) invalidField() (string, bool) {
	switch {
	case *r.Age <= 0:
		return "age", true
	case *r.Height <= 0:
		return "height", true
	case *r.Weight <= 0:
		return "weight", true
	}
	return "", false
}

func (r *GenerateDietPlanRequest) toProfile() domain.Profile {
	return domain.Profile{
		Name:     *r.Name,
		Age:      *r.Age,
		Gender:   *r.Gender,
		Weight:   *r.Weight,
		Height:   *r.Height,
		Smoking:  *r.Smoking,
		Drinking: *r.Drinking,
	}
}

// AIUserInfo is the condensed profile summary used on the AI path; the full
// summary lives inside the structured plan.
type AIUserInfo struct {
	Name          string  `json:"name"`
	BMI           float64 `json:"bmi"`
	BMICategory   string  `json:"bmi_category"`
	DailyCalories int     `json:"daily_calories"`
}

// AIPlanResponse wraps model-generated text together with the structured
// plan it supplements.
type AIPlanResponse struct {
	UserInfo       AIUserInfo            `json:"user_info"`
	AIInsights     string                `json:"ai_insights"`
	StructuredPlan domain.StructuredPlan `json:"structured_plan"`
}

// MapDietPlanToResponse picks the wire shape for a generated plan: the
// structured plan alone after a fallback, or the AI envelope around it.
func MapDietPlanToResponse(plan *domain.DietPlan) any {
	if plan == nil {
		return nil
	}
	if !plan.AIGenerated {
		return plan.Structured
	}

	info := plan.Structured.UserInfo
	return AIPlanResponse{
		UserInfo: AIUserInfo{
			Name:          info.Name,
			BMI:           info.BMI,
			BMICategory:   info.BMICategory,
			DailyCalories: info.DailyCalories,
		},
		AIInsights:     plan.AIInsights,
		StructuredPlan: plan.Structured,
	}
}

// --- Handler Methods ---

// GenerateDietPlan godoc
// @Summary Generate a personalized weekly diet plan
// @Description Validates the intake profile and returns a seven day plan,
// @Description augmented with model-generated insights when the remote
// @Description generation service answers.
// @Tags Plans
// @Accept json
// @Produce json
// @Param profile body GenerateDietPlanRequest true "Biometric and lifestyle profile"
// @Success 200 {object} gin.H "Generated plan"
// @Failure 400 {object} gin.H "Missing or invalid field"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /generate-diet-plan [post]
func (h *PlanHandler) GenerateDietPlan(c *gin.Context) {
	var req GenerateDietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if field, missing := req.missingField(); missing {
		abortWithError(c, http.StatusBadRequest, "Missing required field: "+field)
		return
	}
	if field, invalid := req.invalidField(); invalid {
		abortWithError(c, http.StatusBadRequest, "Invalid value for field: "+field)
		return
	}

	plan, err := h.planService.GenerateDietPlan(c.Request.Context(), req.toProfile())
	if err != nil {
		if errors.Is(err, service.ErrInvalidProfile) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR: generate diet plan (request %s): %v", requestIDFromContext(c), err)
		abortWithError(c, http.StatusInternalServerError, "Failed to generate diet plan. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    MapDietPlanToResponse(plan),
		"message": "Diet plan generated successfully!",
	})
}

// CalculateBMI godoc
// @Summary Calculate BMI with category and advice
// @Description Accepts weight (kg) and height (cm) as numbers or numeric
// @Description strings and returns the BMI report.
// @Tags Plans
// @Accept json
// @Produce json
// @Success 200 {object} gin.H "BMI report"
// @Failure 400 {object} gin.H "Invalid input data"
// @Router /bmi-calculator [post]
func (h *PlanHandler) CalculateBMI(c *gin.Context) {
	var req map[string]any
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	weight, weightOK := toNumber(req["weight"])
	height, heightOK := toNumber(req["height"])
	if !weightOK || !heightOK || weight <= 0 || height <= 0 {
		abortWithError(c, http.StatusBadRequest, "Invalid input data")
		return
	}

	report := h.planService.EvaluateBMI(weight, height)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bmi":      report.BMI,
		"category": report.Category,
		"advice":   report.Advice,
	})
}

// toNumber coerces JSON numbers and numeric strings. ParseFloat accepts
// "NaN" and "Inf" spellings; non-finite values are rejected.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
