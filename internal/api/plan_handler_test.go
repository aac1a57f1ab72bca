package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"everytime/fitness-backend/internal/config"
	"everytime/fitness-backend/internal/domain"
	"everytime/fitness-backend/internal/service"
	"everytime/fitness-backend/internal/textgen"

	"github.com/gin-gonic/gin"
)

// fakeGenerator stands in for the remote model.
type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

// fixedSelector pins meal selection to each pool's first entry.
type fixedSelector struct{}

func (fixedSelector) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

// stubPlanService scripts the service layer for error-path tests.
type stubPlanService struct {
	plan *domain.DietPlan
	err  error
	got  *domain.Profile
}

func (s *stubPlanService) GenerateDietPlan(ctx context.Context, profile domain.Profile) (*domain.DietPlan, error) {
	s.got = &profile
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func (s *stubPlanService) EvaluateBMI(weight, height float64) domain.BMIReport {
	return domain.BMIReport{}
}

// newTestRouter builds the full route setup around the given service.
func newTestRouter(svc service.PlanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, config.Config{}, svc)
	return router
}

// realPlanService builds the production service with only the remote model
// stubbed out.
func realPlanService(gen textgen.Generator) service.PlanService {
	return service.NewPlanService(gen, fixedSelector{})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

const validPlanBody = `{"name":"Alex","age":30,"height":175,"weight":70,"gender":"male","smoking":"no","drinking":"no"}`

func TestGenerateDietPlanMissingField(t *testing.T) {
	fields := []string{"name", "age", "height", "weight", "gender", "smoking", "drinking"}

	full := map[string]any{
		"name": "Alex", "age": 30, "height": 175, "weight": 70,
		"gender": "male", "smoking": "no", "drinking": "no",
	}

	for _, field := range fields {
		t.Run("missing "+field, func(t *testing.T) {
			partial := map[string]any{}
			for k, v := range full {
				if k != field {
					partial[k] = v
				}
			}
			body, _ := json.Marshal(partial)

			router := newTestRouter(&stubPlanService{})
			w := postJSON(router, "/api/generate-diet-plan", string(body))

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			resp := decodeBody(t, w)
			if resp["error"] != "Missing required field: "+field {
				t.Errorf("error = %q, want %q", resp["error"], "Missing required field: "+field)
			}
			if resp["success"] != false {
				t.Errorf("success = %v, want false", resp["success"])
			}
		})
	}
}

func TestGenerateDietPlanMissingFieldOrder(t *testing.T) {
	// With several fields absent the first one in intake order is named.
	router := newTestRouter(&stubPlanService{})
	w := postJSON(router, "/api/generate-diet-plan", `{"gender":"male"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp := decodeBody(t, w); resp["error"] != "Missing required field: name" {
		t.Errorf("error = %q, want the name field first", resp["error"])
	}
}

func TestGenerateDietPlanInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero age", `{"name":"A","age":0,"height":175,"weight":70,"gender":"male","smoking":"no","drinking":"no"}`, "age"},
		{"negative age", `{"name":"A","age":-3,"height":175,"weight":70,"gender":"male","smoking":"no","drinking":"no"}`, "age"},
		{"zero height", `{"name":"A","age":30,"height":0,"weight":70,"gender":"male","smoking":"no","drinking":"no"}`, "height"},
		{"negative weight", `{"name":"A","age":30,"height":175,"weight":-70,"gender":"male","smoking":"no","drinking":"no"}`, "weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubPlanService{})
			w := postJSON(router, "/api/generate-diet-plan", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp := decodeBody(t, w); resp["error"] != "Invalid value for field: "+tt.field {
				t.Errorf("error = %q, want %q", resp["error"], "Invalid value for field: "+tt.field)
			}
		})
	}
}

func TestGenerateDietPlanMalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated JSON", `{"name":`},
		{"age has wrong type", `{"name":"A","age":"thirty","height":175,"weight":70,"gender":"male","smoking":"no","drinking":"no"}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubPlanService{})
			w := postJSON(router, "/api/generate-diet-plan", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp := decodeBody(t, w); resp["error"] != "Invalid request body" {
				t.Errorf("error = %q, want %q", resp["error"], "Invalid request body")
			}
		})
	}
}

func TestGenerateDietPlanFallbackResponse(t *testing.T) {
	// When the model is unreachable the endpoint still answers 200 with the
	// full structured plan and no AI fields.
	gen := &fakeGenerator{err: errors.New("inference API unreachable")}
	router := newTestRouter(realPlanService(gen))

	w := postJSON(router, "/api/generate-diet-plan", validPlanBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	if resp["success"] != true {
		t.Errorf("success = %v, want true", resp["success"])
	}
	if resp["message"] != "Diet plan generated successfully!" {
		t.Errorf("message = %q", resp["message"])
	}

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", resp["data"])
	}
	if _, present := data["ai_insights"]; present {
		t.Error("fallback response carries ai_insights")
	}
	if _, present := data["structured_plan"]; present {
		t.Error("fallback response nests a structured_plan instead of being one")
	}

	assertStructuredPlanJSON(t, data)

	if gen.calls != 1 {
		t.Errorf("generator called %d times, want exactly 1", gen.calls)
	}
}

func TestGenerateDietPlanAIResponse(t *testing.T) {
	gen := &fakeGenerator{text: "Hydrate before every meal."}
	router := newTestRouter(realPlanService(gen))

	w := postJSON(router, "/api/generate-diet-plan", validPlanBody)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	resp := decodeBody(t, w)
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", resp["data"])
	}

	if data["ai_insights"] != gen.text {
		t.Errorf("ai_insights = %q, want the generated text", data["ai_insights"])
	}

	structured, ok := data["structured_plan"].(map[string]any)
	if !ok {
		t.Fatalf("structured_plan is %T, want object", data["structured_plan"])
	}
	assertStructuredPlanJSON(t, structured)

	// The AI envelope carries only the condensed profile summary; the full
	// one lives inside structured_plan.
	info, ok := data["user_info"].(map[string]any)
	if !ok {
		t.Fatalf("user_info is %T, want object", data["user_info"])
	}
	for _, key := range []string{"name", "bmi", "bmi_category", "daily_calories"} {
		if _, present := info[key]; !present {
			t.Errorf("condensed user_info missing %q", key)
		}
	}
	for _, key := range []string{"age", "gender", "weight", "height", "macros"} {
		if _, present := info[key]; present {
			t.Errorf("condensed user_info unexpectedly carries %q", key)
		}
	}
}

// assertStructuredPlanJSON checks the serialized deterministic plan for the
// reference profile (2544 kcal daily target).
func assertStructuredPlanJSON(t *testing.T, plan map[string]any) {
	t.Helper()

	info, ok := plan["user_info"].(map[string]any)
	if !ok {
		t.Fatalf("user_info is %T, want object", plan["user_info"])
	}
	if info["name"] != "Alex" || info["bmi_category"] != "Normal Weight" {
		t.Errorf("user_info = %v", info)
	}
	if info["daily_calories"] != float64(2544) {
		t.Errorf("daily_calories = %v, want 2544", info["daily_calories"])
	}
	macros, ok := info["macros"].(map[string]any)
	if !ok || macros["protein"] != "159g" || macros["carbs"] != "286g" || macros["fats"] != "85g" {
		t.Errorf("macros = %v", info["macros"])
	}

	weekly, ok := plan["weekly_plan"].(map[string]any)
	if !ok {
		t.Fatalf("weekly_plan is %T, want object", plan["weekly_plan"])
	}
	if len(weekly) != 7 {
		t.Errorf("weekly_plan has %d days, want 7", len(weekly))
	}
	for _, day := range domain.Weekdays {
		meals, ok := weekly[day].(map[string]any)
		if !ok {
			t.Fatalf("weekly_plan missing %s", day)
		}
		for _, slot := range []string{"breakfast", "morning_snack", "lunch", "afternoon_snack", "dinner"} {
			if _, present := meals[slot]; !present {
				t.Errorf("%s missing slot %q", day, slot)
			}
		}
	}

	tips, ok := plan["general_tips"].([]any)
	if !ok || len(tips) != 7 {
		t.Errorf("general_tips = %v, want 7 entries", plan["general_tips"])
	}
	if _, ok := plan["recommendations"].([]any); !ok {
		t.Errorf("recommendations = %v, want array", plan["recommendations"])
	}
}

func TestGenerateDietPlanInternalError(t *testing.T) {
	router := newTestRouter(&stubPlanService{err: errors.New("assembly exploded")})

	w := postJSON(router, "/api/generate-diet-plan", validPlanBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	resp := decodeBody(t, w)
	if resp["error"] != "Failed to generate diet plan. Please try again." {
		t.Errorf("error = %q", resp["error"])
	}
	if resp["success"] != false {
		t.Errorf("success = %v, want false", resp["success"])
	}
}

func TestGenerateDietPlanServiceValidationError(t *testing.T) {
	svc := &stubPlanService{err: fmt.Errorf("%w: age must be positive", service.ErrInvalidProfile)}
	router := newTestRouter(svc)

	w := postJSON(router, "/api/generate-diet-plan", validPlanBody)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp := decodeBody(t, w); !strings.Contains(resp["error"].(string), "age") {
		t.Errorf("error = %q, want it to name the field", resp["error"])
	}
}

func TestGenerateDietPlanProfilePassthrough(t *testing.T) {
	svc := &stubPlanService{plan: &domain.DietPlan{}}
	router := newTestRouter(svc)

	w := postJSON(router, "/api/generate-diet-plan",
		`{"name":"Dana","age":28,"height":165.5,"weight":60.2,"gender":"female","smoking":"yes","drinking":"no"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	want := domain.Profile{
		Name: "Dana", Age: 28, Gender: "female",
		Weight: 60.2, Height: 165.5,
		Smoking: "yes", Drinking: "no",
	}
	if svc.got == nil {
		t.Fatal("service never saw the profile")
	}
	if *svc.got != want {
		t.Errorf("profile = %+v, want %+v", *svc.got, want)
	}
}

func TestCalculateBMIEndpoint(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantCode     int
		wantBMI      float64
		wantCategory string
	}{
		{"light person", `{"weight":50,"height":160}`, http.StatusOK, 19.5, "Normal Weight"},
		{"reference male", `{"weight":70,"height":175}`, http.StatusOK, 22.9, "Normal Weight"},
		{"numeric strings accepted", `{"weight":"70","height":"175"}`, http.StatusOK, 22.9, "Normal Weight"},
		{"padded numeric strings accepted", `{"weight":" 50 ","height":"160"}`, http.StatusOK, 19.5, "Normal Weight"},
		{"obese input", `{"weight":110,"height":170}`, http.StatusOK, 38.1, "Obese"},
		{"missing weight", `{"height":160}`, http.StatusBadRequest, 0, ""},
		{"missing height", `{"weight":50}`, http.StatusBadRequest, 0, ""},
		{"non numeric weight", `{"weight":"abc","height":160}`, http.StatusBadRequest, 0, ""},
		{"NaN weight string", `{"weight":"NaN","height":"170"}`, http.StatusBadRequest, 0, ""},
		{"infinite weight string", `{"weight":"Inf","height":"170"}`, http.StatusBadRequest, 0, ""},
		{"NaN height string", `{"weight":"70","height":"nan"}`, http.StatusBadRequest, 0, ""},
		{"zero height", `{"weight":50,"height":0}`, http.StatusBadRequest, 0, ""},
		{"negative weight", `{"weight":-50,"height":160}`, http.StatusBadRequest, 0, ""},
		{"boolean input", `{"weight":true,"height":160}`, http.StatusBadRequest, 0, ""},
		{"malformed body", `{"weight":`, http.StatusBadRequest, 0, ""},
	}

	router := newTestRouter(realPlanService(&fakeGenerator{}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/bmi-calculator", tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d\n%s", w.Code, tt.wantCode, w.Body.String())
			}

			resp := decodeBody(t, w)
			if tt.wantCode != http.StatusOK {
				if resp["error"] != "Invalid input data" {
					t.Errorf("error = %q, want %q", resp["error"], "Invalid input data")
				}
				if resp["success"] != false {
					t.Errorf("success = %v, want false", resp["success"])
				}
				return
			}

			if resp["success"] != true {
				t.Errorf("success = %v, want true", resp["success"])
			}
			if resp["bmi"] != tt.wantBMI {
				t.Errorf("bmi = %v, want %v", resp["bmi"], tt.wantBMI)
			}
			if resp["category"] != tt.wantCategory {
				t.Errorf("category = %q, want %q", resp["category"], tt.wantCategory)
			}
			if advice, _ := resp["advice"].(string); advice == "" {
				t.Error("advice is empty")
			}
		})
	}
}
