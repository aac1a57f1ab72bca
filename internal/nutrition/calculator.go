// Package nutrition implements the metric formulas behind diet plan
// generation: basal metabolic rate, body mass index and the calorie and
// macronutrient targets derived from them. Everything here is a pure
// function; invalid numeric input is rejected at the API boundary, not
// in this package.
package nutrition

import (
	"math"
	"strings"

	"everytime/fitness-backend/internal/domain"
)

// activityFactor approximates moderate activity on top of resting burn.
const activityFactor = 1.5

// Calorie share of each macronutrient and its energy density in kcal/gram.
const (
	proteinShare = 0.25
	carbShare    = 0.45
	fatShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// CalculateBMR estimates the basal metabolic rate in kcal/day using the
// revised Harris-Benedict equations. Gender is matched case-insensitively;
// any value other than "male" uses the female coefficients. Rounding is
// half-away-from-zero (math.Round).
func CalculateBMR(weight, height float64, age int, gender string) int {
	var bmr float64
	if strings.EqualFold(gender, "male") {
		bmr = 88.362 + (13.397 * weight) + (4.799 * height) - (5.677 * float64(age))
	} else {
		bmr = 447.593 + (9.247 * weight) + (3.098 * height) - (4.330 * float64(age))
	}
	return int(math.Round(bmr))
}

// CalculateBMI returns weight (kg) over squared height (m), rounded to one
// decimal place.
func CalculateBMI(weight, height float64) float64 {
	heightM := height / 100
	bmi := weight / (heightM * heightM)
	return math.Round(bmi*10) / 10
}

// ClassifyBMI maps a BMI value to its category and fixed advice line.
// Lower bounds are inclusive: 18.5 is Normal Weight, 25.0 is Overweight
// and 30.0 is Obese.
func ClassifyBMI(bmi float64) (category, advice string) {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight, "Focus on healthy weight gain with nutrient-dense foods"
	case bmi < 25:
		return domain.BMINormalWeight, "Maintain current weight with balanced nutrition"
	case bmi < 30:
		return domain.BMIOverweight, "Focus on gradual weight loss through caloric deficit"
	default:
		return domain.BMIObese, "Consult healthcare provider, focus on sustainable weight loss"
	}
}

// DailyCalories converts a BMR into the daily calorie target.
func DailyCalories(bmr int) int {
	return int(math.Round(float64(bmr) * activityFactor))
}

// CalculateMacros splits a calorie target 25/45/30 between protein, carbs
// and fat, converted to grams at 4, 4 and 9 kcal per gram. Each gram count
// is rounded independently, so recombining them lands within a few kcal of
// the target.
func CalculateMacros(dailyCalories int) domain.Macros {
	cals := float64(dailyCalories)
	return domain.Macros{
		ProteinGrams: int(math.Round(cals * proteinShare / kcalPerGramProtein)),
		CarbGrams:    int(math.Round(cals * carbShare / kcalPerGramCarb)),
		FatGrams:     int(math.Round(cals * fatShare / kcalPerGramFat)),
	}
}

// ComputeMetrics derives every metric the plan generator needs from a
// validated profile.
func ComputeMetrics(p domain.Profile) domain.Metrics {
	bmr := CalculateBMR(p.Weight, p.Height, p.Age, p.Gender)
	bmi := CalculateBMI(p.Weight, p.Height)
	category, advice := ClassifyBMI(bmi)
	daily := DailyCalories(bmr)

	return domain.Metrics{
		BMR:           bmr,
		BMI:           bmi,
		BMICategory:   category,
		BMIAdvice:     advice,
		DailyCalories: daily,
		Macros:        CalculateMacros(daily),
	}
}
