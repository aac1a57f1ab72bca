package domain

import "fmt"

// BMI category names.
const (
	BMIUnderweight  = "Underweight"
	BMINormalWeight = "Normal Weight"
	BMIOverweight   = "Overweight"
	BMIObese        = "Obese"
)

// RecommendationType distinguishes lifestyle recommendation entries.
type RecommendationType string

// Define constants for recommendation types
const (
	RecommendationWarning RecommendationType = "warning"
	RecommendationAdvice  RecommendationType = "advice"
	RecommendationInfo    RecommendationType = "info"
)

// Recommendation is a single lifestyle note attached to a plan.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

// Macros is the daily macronutrient target in grams.
type Macros struct {
	ProteinGrams int
	CarbGrams    int
	FatGrams     int
}

// Summary renders the gram counts in the "159g" display form used by the
// plan document.
func (m Macros) Summary() MacroSummary {
	return MacroSummary{
		Protein: fmt.Sprintf("%dg", m.ProteinGrams),
		Carbs:   fmt.Sprintf("%dg", m.CarbGrams),
		Fats:    fmt.Sprintf("%dg", m.FatGrams),
	}
}

// MacroSummary is the serialized form of Macros.
type MacroSummary struct {
	Protein string `json:"protein"`
	Carbs   string `json:"carbs"`
	Fats    string `json:"fats"`
}

// Metrics holds every value derived from a validated profile.
type Metrics struct {
	BMR           int
	BMI           float64
	BMICategory   string
	BMIAdvice     string
	DailyCalories int
	Macros        Macros
}

// BMIReport is the result of a standalone BMI evaluation.
type BMIReport struct {
	BMI      float64
	Category string
	Advice   string
}

// Meal is one slot of a daily plan.
type Meal struct {
	Meal     string `json:"meal"`
	Calories int    `json:"calories"`
}

// DailyMeals holds the five meal slots of a single day.
type DailyMeals struct {
	Breakfast      Meal `json:"breakfast"`
	MorningSnack   Meal `json:"morning_snack"`
	Lunch          Meal `json:"lunch"`
	AfternoonSnack Meal `json:"afternoon_snack"`
	Dinner         Meal `json:"dinner"`
}

// Weekdays is the canonical key set (and build order) of a weekly plan.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// WeeklyPlan maps weekday names to their meals. Days are generated
// independently; meals may repeat across the week.
type WeeklyPlan map[string]DailyMeals

// UserInfo summarizes the profile and its derived metrics inside the plan
// document.
type UserInfo struct {
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	Weight        float64      `json:"weight"`
	Height        float64      `json:"height"`
	BMI           float64      `json:"bmi"`
	BMICategory   string       `json:"bmi_category"`
	DailyCalories int          `json:"daily_calories"`
	Macros        MacroSummary `json:"macros"`
}

// StructuredPlan is the deterministic diet plan document.
type StructuredPlan struct {
	UserInfo        UserInfo         `json:"user_info"`
	WeeklyPlan      WeeklyPlan       `json:"weekly_plan"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneralTips     []string         `json:"general_tips"`
}

// DietPlan is the outcome of one generation request. Structured is always
// populated. AIInsights carries the (possibly truncated) model text and is
// meaningful only when AIGenerated is set; a failed generation call leaves
// both zero.
type DietPlan struct {
	AIGenerated bool
	AIInsights  string
	Structured  StructuredPlan
}
