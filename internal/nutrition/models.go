package nutrition

// MealPlan is the schema the meal-planner instruction demands from the
// model. It is a response-shape contract, not a stored entity.
type MealPlan struct {
	Title                    string    `json:"title"`
	OverallSummary           string    `json:"overallSummary,omitempty"`
	PlanDurationDays         int       `json:"planDurationDays"`
	DailyPlan                []DayPlan `json:"dailyPlan"`
	ConsolidatedShoppingList []string  `json:"consolidatedShoppingList,omitempty"`
	GeneralTips              []string  `json:"generalTips,omitempty"`
}

type DayPlan struct {
	Day          string `json:"day"`
	DailySummary string `json:"dailySummary,omitempty"`
	Meals        []Meal `json:"meals"`
}

type Meal struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
	Notes string   `json:"notes,omitempty"`
}

// Recipe is the schema the recipe-generator instruction demands.
type Recipe struct {
	Title                 string   `json:"title"`
	Description           string   `json:"description,omitempty"`
	PrepTime              string   `json:"prepTime,omitempty"`
	CookTime              string   `json:"cookTime,omitempty"`
	Servings              string   `json:"servings,omitempty"`
	Ingredients           []string `json:"ingredients"`
	Instructions          []string `json:"instructions"`
	NutritionHighlights   []string `json:"nutritionHighlights,omitempty"`
	CuisineTypeSuggestion string   `json:"cuisineTypeSuggestion,omitempty"`
}
