package nutrition

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ModeMealPlanner     = "mealPlanner"
	ModeRecipeGenerator = "recipeGenerator"
)

var (
	ErrMissingMode     = errors.New("Missing mode (mealPlanner or recipeGenerator)")
	ErrUnsupportedMode = errors.New("Invalid mode provided")
)

// Request is the closed set of nutrition-tool requests. The wire payload
// is an untyped mode string; it is resolved into exactly one of these at
// the boundary so everything past it dispatches on the type, not the
// string.
type Request interface {
	systemInstruction() string
	userPrompt() string
}

// WireRequest is the raw nutrition-tool POST body, common fields for both
// modes.
type WireRequest struct {
	Mode               string   `json:"mode"`
	Goal               string   `json:"goal"`
	DietaryPreferences []string `json:"dietaryPreferences"`
	NumMealsPerDay     int      `json:"numMealsPerDay"`
	PlanDurationDays   int      `json:"planDurationDays"`
	DislikedFoods      string   `json:"dislikedFoods"`
	CoachingMode       *bool    `json:"coachingMode"`
	MainIngredients    []string `json:"mainIngredients"`
	CuisineType        string   `json:"cuisineType"`
}

// Resolve turns the wire payload into a typed request, or a validation
// error when the mode is absent or unknown.
func (w WireRequest) Resolve() (Request, error) {
	switch w.Mode {
	case "":
		return nil, ErrMissingMode
	case ModeMealPlanner:
		coaching := true
		if w.CoachingMode != nil {
			coaching = *w.CoachingMode
		}
		return MealPlanRequest{
			Goal:               w.Goal,
			DietaryPreferences: w.DietaryPreferences,
			NumMealsPerDay:     w.NumMealsPerDay,
			PlanDurationDays:   w.PlanDurationDays,
			DislikedFoods:      w.DislikedFoods,
			CoachingMode:       coaching,
		}, nil
	case ModeRecipeGenerator:
		return RecipeRequest{
			Goal:               w.Goal,
			MainIngredients:    w.MainIngredients,
			DietaryPreferences: w.DietaryPreferences,
			CuisineType:        w.CuisineType,
		}, nil
	default:
		return nil, ErrUnsupportedMode
	}
}

type MealPlanRequest struct {
	Goal               string
	DietaryPreferences []string
	NumMealsPerDay     int
	PlanDurationDays   int
	DislikedFoods      string
	CoachingMode       bool
}

func (r MealPlanRequest) systemInstruction() string { return mealPlannerSystemInstruction }

// duration returns the requested plan length with the 1-day default
// applied.
func (r MealPlanRequest) duration() int {
	if r.PlanDurationDays <= 0 {
		return 1
	}
	return r.PlanDurationDays
}

func (r MealPlanRequest) userPrompt() string {
	goal := orDefault(r.Goal, "Not specified")
	prefs := joinOrDefault(r.DietaryPreferences, "None")
	meals := r.NumMealsPerDay
	if meals <= 0 {
		meals = 3
	}
	disliked := orDefault(r.DislikedFoods, "None")

	var sb strings.Builder
	sb.WriteString("User Inputs for Meal Plan:\n")
	sb.WriteString(fmt.Sprintf("- Fitness Goal: %s\n", goal))
	sb.WriteString(fmt.Sprintf("- Dietary Preferences: %s\n", prefs))
	sb.WriteString(fmt.Sprintf("- Number of Meals per Day: %d\n", meals))
	sb.WriteString(fmt.Sprintf("- Plan Duration: %d day(s)\n", r.duration()))
	sb.WriteString(fmt.Sprintf("- Foods to Avoid: %s\n", disliked))
	sb.WriteString(fmt.Sprintf("- Coaching Mode Active: %t\n\n", r.CoachingMode))
	sb.WriteString("Based on these inputs and your system instructions, generate the meal plan JSON.\n")
	sb.WriteString("Ensure the \"planDurationDays\" in your JSON output matches the user's requested duration.\n")
	sb.WriteString(fmt.Sprintf("The \"dailyPlan\" array in your JSON output must contain exactly %d day objects.\n", r.duration()))
	return sb.String()
}

type RecipeRequest struct {
	Goal               string
	MainIngredients    []string
	DietaryPreferences []string
	CuisineType        string
}

func (r RecipeRequest) systemInstruction() string { return recipeGeneratorSystemInstruction }

func (r RecipeRequest) userPrompt() string {
	var sb strings.Builder
	sb.WriteString("User Inputs for Recipe:\n")
	sb.WriteString(fmt.Sprintf("- Recipe Goal/Type: %s\n", orDefault(r.Goal, "Any")))
	sb.WriteString(fmt.Sprintf("- Main Ingredients to use (if any): %s\n", joinOrDefault(r.MainIngredients, "Be creative based on goal")))
	sb.WriteString(fmt.Sprintf("- Dietary Preferences: %s\n", joinOrDefault(r.DietaryPreferences, "None")))
	sb.WriteString(fmt.Sprintf("- Cuisine Type (optional): %s\n\n", orDefault(r.CuisineType, "Any")))
	sb.WriteString("Based on these inputs and your system instructions, generate the recipe JSON.\n")
	return sb.String()
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func joinOrDefault(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
