package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/athlytiq/athlytiq/internal/gemini"
)

// snippetLen bounds how much raw model output is kept for server-side
// diagnostics when parsing or validation fails.
const snippetLen = 500

// FormatError means the model replied but the text was not the JSON the
// instruction demanded, or the parsed object was structurally broken.
// The raw snippet is for logs only; callers see a generic message.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return "AI returned data in an unexpected format. Please try again. If the issue persists, the AI might be struggling with the complexity of the request."
}

// Snippet returns at most the first 500 characters of the raw response.
func (e *FormatError) Snippet() string {
	if len(e.Raw) > snippetLen {
		return e.Raw[:snippetLen] + "..."
	}
	return e.Raw
}

// Generator is the minimal model interface so this package does not
// depend on the concrete client.
type Generator interface {
	Generate(ctx context.Context, req gemini.GenerateRequest) (*gemini.Result, error)
}

type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// Run executes one nutrition-tool request and returns the parsed,
// validated result object (*MealPlan or *Recipe).
func (s *Service) Run(ctx context.Context, req Request) (any, error) {
	genReq := gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role:  "user",
			Parts: []gemini.Part{{Text: req.userPrompt()}},
		}},
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: req.systemInstruction()}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      0.6,
			MaxOutputTokens:  8192,
			ResponseMimeType: "application/json",
		},
		SafetySettings: gemini.SafetyBlock(gemini.BlockOnlyHigh),
	}

	result, err := s.gen.Generate(ctx, genReq)
	if err != nil {
		return nil, err
	}

	switch r := req.(type) {
	case MealPlanRequest:
		return s.parseMealPlan(result.Text, r)
	case RecipeRequest:
		return s.parseRecipe(result.Text)
	default:
		return nil, fmt.Errorf("unhandled request type %T", req)
	}
}

func (s *Service) parseMealPlan(raw string, req MealPlanRequest) (*MealPlan, error) {
	var plan MealPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, &FormatError{Raw: raw}
	}
	if err := validateMealPlan(&plan); err != nil {
		slog.Error("Meal plan failed validation", "error", err)
		return nil, &FormatError{Raw: raw}
	}
	// A plan shorter than requested is returned as-is; the mismatch is
	// worth a log line but the result is still usable.
	if len(plan.DailyPlan) != req.duration() {
		slog.Warn("Meal plan day count differs from requested duration",
			"requested", req.duration(), "got", len(plan.DailyPlan))
	}
	return &plan, nil
}

func (s *Service) parseRecipe(raw string) (*Recipe, error) {
	var recipe Recipe
	if err := json.Unmarshal([]byte(raw), &recipe); err != nil {
		return nil, &FormatError{Raw: raw}
	}
	if err := validateRecipe(&recipe); err != nil {
		slog.Error("Recipe failed validation", "error", err)
		return nil, &FormatError{Raw: raw}
	}
	return &recipe, nil
}

func validateMealPlan(plan *MealPlan) error {
	if plan.Title == "" {
		return fmt.Errorf("missing title")
	}
	if len(plan.DailyPlan) == 0 {
		return fmt.Errorf("dailyPlan is empty")
	}
	for i, day := range plan.DailyPlan {
		if len(day.Meals) == 0 {
			return fmt.Errorf("day %d has no meals", i+1)
		}
		for j, meal := range day.Meals {
			if meal.Name == "" {
				return fmt.Errorf("day %d meal %d has no name", i+1, j+1)
			}
			if len(meal.Items) == 0 {
				return fmt.Errorf("day %d meal %q has no items", i+1, meal.Name)
			}
		}
	}
	return nil
}

func validateRecipe(recipe *Recipe) error {
	if recipe.Title == "" {
		return fmt.Errorf("missing title")
	}
	if len(recipe.Ingredients) == 0 {
		return fmt.Errorf("ingredients is empty")
	}
	if len(recipe.Instructions) == 0 {
		return fmt.Errorf("instructions is empty")
	}
	return nil
}
