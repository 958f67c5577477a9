package export

import (
	"fmt"

	"github.com/athlytiq/athlytiq/internal/nutrition"
)

type blockKind int

const (
	blockTitle blockKind = iota
	blockSummary
	blockMeta
	blockDayHeader
	blockDaySummary
	blockMealName
	blockMealItem
	blockMealNote
	blockMealEnd
	blockDayBreak
	blockSectionHeader
	blockShoppingTable
	blockTip
)

type block struct {
	kind  blockKind
	text  string
	items []string // blockShoppingTable only
}

// planBlocks flattens the plan into the ordered sequence of document
// blocks. The renderer decides pagination; this decides content and
// order, which is what the tests pin down.
func planBlocks(plan *nutrition.MealPlan) []block {
	blocks := []block{}

	title := plan.Title
	if title == "" {
		title = "Custom Meal Plan"
	}
	blocks = append(blocks, block{kind: blockTitle, text: title})

	if plan.OverallSummary != "" {
		blocks = append(blocks, block{kind: blockSummary, text: plan.OverallSummary})
	}

	mealsPerDay := "N/A"
	if len(plan.DailyPlan) > 0 && len(plan.DailyPlan[0].Meals) > 0 {
		mealsPerDay = fmt.Sprintf("%d", len(plan.DailyPlan[0].Meals))
	}
	blocks = append(blocks, block{
		kind: blockMeta,
		text: fmt.Sprintf("Duration: %d day(s) | Meals/Day: %s", plan.PlanDurationDays, mealsPerDay),
	})

	for di, day := range plan.DailyPlan {
		label := day.Day
		if label == "" {
			label = fmt.Sprintf("Day %d", di+1)
		}
		blocks = append(blocks, block{kind: blockDayHeader, text: label})

		if day.DailySummary != "" {
			blocks = append(blocks, block{kind: blockDaySummary, text: day.DailySummary})
		}

		for _, meal := range day.Meals {
			name := meal.Name
			if name == "" {
				name = "Meal"
			}
			blocks = append(blocks, block{kind: blockMealName, text: name})
			for _, item := range meal.Items {
				blocks = append(blocks, block{kind: blockMealItem, text: item})
			}
			if meal.Notes != "" {
				blocks = append(blocks, block{kind: blockMealNote, text: meal.Notes})
			}
			blocks = append(blocks, block{kind: blockMealEnd})
		}

		if di < len(plan.DailyPlan)-1 {
			blocks = append(blocks, block{kind: blockDayBreak})
		}
	}

	if len(plan.ConsolidatedShoppingList) > 0 {
		blocks = append(blocks,
			block{kind: blockSectionHeader, text: "Consolidated Shopping List"},
			block{kind: blockShoppingTable, items: plan.ConsolidatedShoppingList},
		)
	}

	if len(plan.GeneralTips) > 0 {
		blocks = append(blocks, block{kind: blockSectionHeader, text: "General Nutrition Tips"})
		for _, tip := range plan.GeneralTips {
			blocks = append(blocks, block{kind: blockTip, text: tip})
		}
	}

	return blocks
}
