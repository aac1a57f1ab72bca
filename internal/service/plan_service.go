package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"everytime/fitness-backend/internal/domain"
	"everytime/fitness-backend/internal/nutrition"
	"everytime/fitness-backend/internal/textgen"
)

// --- Error Definitions ---
var (
	ErrInvalidProfile = errors.New("profile failed validation")
)

// aiInsightsLimit caps how much raw model text a plan carries.
const aiInsightsLimit = 500

// Calorie share of each daily meal slot. The five shares sum to 100%.
const (
	breakfastShare      = 0.25
	morningSnackShare   = 0.10
	lunchShare          = 0.30
	afternoonSnackShare = 0.10
	dinnerShare         = 0.25
)

// Meal option pools. The snack pool serves both snack slots.
var (
	breakfastOptions = []string{
		"Oatmeal with banana and almonds",
		"Greek yogurt with berries and granola",
		"Scrambled eggs with whole grain toast",
		"Protein smoothie with spinach and fruits",
	}
	lunchOptions = []string{
		"Grilled chicken with quinoa and vegetables",
		"Lentil curry with brown rice",
		"Fish with sweet potato and broccoli",
		"Chickpea salad with mixed greens",
	}
	dinnerOptions = []string{
		"Lean beef with roasted vegetables",
		"Salmon with asparagus and wild rice",
		"Turkey meatballs with zucchini noodles",
		"Tofu stir-fry with brown rice",
	}
	snackOptions = []string{
		"Apple with almond butter",
		"Mixed nuts and dried fruits",
		"Greek yogurt with honey",
		"Protein bar or shake",
	}
)

// generalTips are attached to every structured plan.
var generalTips = []string{
	"Drink 8-10 glasses of water daily",
	"Eat every 3-4 hours to maintain metabolism",
	"Include protein in every meal for muscle recovery",
	"Choose complex carbohydrates over simple sugars",
	"Eat your largest meal 2-3 hours before workouts",
	"Have a post-workout meal within 30 minutes",
	"Limit processed foods and added sugars",
}

// PlanService generates diet plans for validated profiles.
type PlanService interface {
	// GenerateDietPlan produces a weekly plan for the profile. It makes at
	// most one text-generation call; when that call fails for any reason
	// the deterministic plan is returned on its own.
	GenerateDietPlan(ctx context.Context, profile domain.Profile) (*domain.DietPlan, error)

	// EvaluateBMI computes the standalone BMI report.
	EvaluateBMI(weight, height float64) domain.BMIReport
}

// --- Service Implementation ---

// planService implements the PlanService interface.
type planService struct {
	generator textgen.Generator
	selector  MealSelector
}

// NewPlanService creates a new instance of planService.
func NewPlanService(generator textgen.Generator, selector MealSelector) PlanService {
	return &planService{
		generator: generator,
		selector:  selector,
	}
}

// GenerateDietPlan builds the deterministic plan and attempts to augment it
// with model-generated text. One attempt, no retry: any generation failure
// falls back to the deterministic plan alone, and the caller is not told a
// fallback happened.
func (s *planService) GenerateDietPlan(ctx context.Context, profile domain.Profile) (*domain.DietPlan, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	metrics := nutrition.ComputeMetrics(profile)
	structured := s.buildStructuredPlan(profile, metrics)

	text, err := s.generator.Generate(ctx, buildPrompt(profile, metrics))
	if err != nil {
		log.Printf("Text generation unavailable, serving structured plan: %v", err)
		return &domain.DietPlan{Structured: structured}, nil
	}

	return &domain.DietPlan{
		AIGenerated: true,
		AIInsights:  truncateInsights(text),
		Structured:  structured,
	}, nil
}

// EvaluateBMI computes BMI, category and advice for the BMI endpoint.
func (s *planService) EvaluateBMI(weight, height float64) domain.BMIReport {
	bmi := nutrition.CalculateBMI(weight, height)
	category, advice := nutrition.ClassifyBMI(bmi)
	return domain.BMIReport{
		BMI:      bmi,
		Category: category,
		Advice:   advice,
	}
}

// validateProfile guards the arithmetic below against non-positive input.
// The API layer performs the same checks with field-specific messages;
// this keeps the service safe when called directly.
func validateProfile(p domain.Profile) error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	return nil
}

// buildStructuredPlan assembles the full deterministic plan document.
func (s *planService) buildStructuredPlan(p domain.Profile, m domain.Metrics) domain.StructuredPlan {
	weekly := make(domain.WeeklyPlan, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		weekly[day] = s.buildDailyMeals(m.DailyCalories)
	}

	return domain.StructuredPlan{
		UserInfo: domain.UserInfo{
			Name:          p.Name,
			Age:           p.Age,
			Gender:        p.Gender,
			Weight:        p.Weight,
			Height:        p.Height,
			BMI:           m.BMI,
			BMICategory:   m.BMICategory,
			DailyCalories: m.DailyCalories,
			Macros:        m.Macros.Summary(),
		},
		WeeklyPlan:      weekly,
		Recommendations: buildRecommendations(p),
		GeneralTips:     generalTips,
	}
}

// buildDailyMeals allocates the daily calories across the five slots and
// picks one option per slot. Picks are independent across slots and days.
func (s *planService) buildDailyMeals(dailyCalories int) domain.DailyMeals {
	cals := float64(dailyCalories)
	return domain.DailyMeals{
		Breakfast: domain.Meal{
			Meal:     s.selector.Pick(breakfastOptions),
			Calories: slotCalories(cals, breakfastShare),
		},
		MorningSnack: domain.Meal{
			Meal:     s.selector.Pick(snackOptions),
			Calories: slotCalories(cals, morningSnackShare),
		},
		Lunch: domain.Meal{
			Meal:     s.selector.Pick(lunchOptions),
			Calories: slotCalories(cals, lunchShare),
		},
		AfternoonSnack: domain.Meal{
			Meal:     s.selector.Pick(snackOptions),
			Calories: slotCalories(cals, afternoonSnackShare),
		},
		Dinner: domain.Meal{
			Meal:     s.selector.Pick(dinnerOptions),
			Calories: slotCalories(cals, dinnerShare),
		},
	}
}

func slotCalories(dailyCalories, share float64) int {
	return int(math.Round(dailyCalories * share))
}

// buildRecommendations appends lifestyle notes in a fixed order: the
// smoking pair, the drinking pair, then a single age message. Ages 25
// through 40 get no age message.
func buildRecommendations(p domain.Profile) []domain.Recommendation {
	// Empty rather than nil so an adviceless profile serializes as [].
	recs := []domain.Recommendation{}

	if p.Smokes() {
		recs = append(recs,
			domain.Recommendation{
				Type:    domain.RecommendationWarning,
				Message: "Smoking reduces oxygen delivery to muscles. Consider quitting for better workout performance and recovery.",
			},
			domain.Recommendation{
				Type:    domain.RecommendationAdvice,
				Message: "Increase Vitamin C intake (citrus fruits, bell peppers) to combat oxidative stress from smoking.",
			},
		)
	}

	if p.Drinks() {
		recs = append(recs,
			domain.Recommendation{
				Type:    domain.RecommendationWarning,
				Message: "Alcohol can interfere with muscle protein synthesis and recovery. Limit intake, especially around workout times.",
			},
			domain.Recommendation{
				Type:    domain.RecommendationAdvice,
				Message: "If you drink, ensure adequate hydration and consider B-complex vitamins to support metabolism.",
			},
		)
	}

	switch {
	case p.Age < 25:
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationInfo,
			Message: "Focus on building healthy eating habits early. Your metabolism is naturally higher at this age.",
		})
	case p.Age > 40:
		recs = append(recs, domain.Recommendation{
			Type:    domain.RecommendationInfo,
			Message: "Prioritize protein intake and calcium for bone health. Consider adding resistance training.",
		})
	}

	return recs
}

// buildPrompt renders the profile and derived metrics into the request sent
// to the text-generation model.
func buildPrompt(p domain.Profile, m domain.Metrics) string {
	var b strings.Builder
	b.WriteString("Create a detailed 7-day diet plan for:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Age: %d years\n", p.Age)
	fmt.Fprintf(&b, "Gender: %s\n", p.Gender)
	fmt.Fprintf(&b, "Weight: %g kg\n", p.Weight)
	fmt.Fprintf(&b, "Height: %g cm\n", p.Height)
	fmt.Fprintf(&b, "BMI: %.1f (%s)\n", m.BMI, m.BMICategory)
	fmt.Fprintf(&b, "Daily Calories: %d\n", m.DailyCalories)
	fmt.Fprintf(&b, "Smoking: %s\n", p.Smoking)
	fmt.Fprintf(&b, "Drinking: %s\n", p.Drinking)
	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. Daily meal schedule with specific foods\n")
	b.WriteString("2. Portion sizes and nutritional focus\n")
	b.WriteString("3. Pre/post workout meals\n")
	b.WriteString("4. Hydration recommendations\n")
	b.WriteString("5. Lifestyle-specific advice based on smoking/drinking habits\n")
	b.WriteString("\nFormat as a structured weekly plan with breakfast, lunch, dinner, and snacks for each day.")
	return b.String()
}

// truncateInsights caps raw model text at aiInsightsLimit characters and
// marks the cut with an ellipsis.
func truncateInsights(text string) string {
	runes := []rune(text)
	if len(runes) <= aiInsightsLimit {
		return text
	}
	return string(runes[:aiInsightsLimit]) + "..."
}
