// Package export renders generated meal plans into downloadable PDFs.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/athlytiq/athlytiq/internal/nutrition"
)

// ErrEmptyPlan is returned before any document is created when the plan
// has no days to render.
var ErrEmptyPlan = errors.New("no meal plan data to export")

const (
	margin     = 14.0
	lineHeight = 4.0
	tableRowH  = 7.0
)

// MealPlanPDF renders the plan into a paginated PDF. Every day, meal,
// item, and tip appears exactly once in source order; long lines wrap
// instead of truncating.
func MealPlanPDF(plan *nutrition.MealPlan) ([]byte, error) {
	if plan == nil || len(plan.DailyPlan) == 0 {
		return nil, ErrEmptyPlan
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	// Core fonts are cp1252; model text can carry arbitrary UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := 22.0

	// ensure starts a new page when the next block would cross the
	// printable height minus the bottom margin.
	ensure := func(needed float64) {
		if y+needed > pageH-margin {
			pdf.AddPage()
			y = margin + 5
		}
	}

	// writeLines wraps text to the given width and writes it at x,
	// advancing the cursor. Blocks that fit stay together; a block
	// taller than a page keeps flowing onto the next one line by line.
	writeLines := func(text string, x, width, lh, trailing float64) {
		lines := pdf.SplitText(tr(text), width)
		ensure(float64(len(lines))*lh + trailing)
		for _, line := range lines {
			ensure(lh)
			pdf.Text(x, y, line)
			y += lh
		}
		y += trailing
	}

	for _, b := range planBlocks(plan) {
		switch b.kind {
		case blockTitle:
			pdf.SetFont("Helvetica", "B", 18)
			title := tr(b.text)
			w := pdf.GetStringWidth(title)
			pdf.Text((pageW-w)/2, y, title)
			y += 10

		case blockSummary:
			pdf.SetFont("Helvetica", "I", 10)
			writeLines(b.text, margin, pageW-margin*2, 5, 5)

		case blockMeta:
			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.Text(margin, y, tr(b.text))
			y += 7
			pdf.SetTextColor(0, 0, 0)

		case blockDayHeader:
			ensure(20)
			pdf.SetFont("Helvetica", "B", 14)
			pdf.SetTextColor(44, 62, 80)
			pdf.Text(margin, y, tr(b.text))
			y += 7
			pdf.SetTextColor(0, 0, 0)

		case blockDaySummary:
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(80, 80, 80)
			writeLines("Summary: "+b.text, margin+2, pageW-(margin+2)*2, lineHeight, 3)
			pdf.SetTextColor(0, 0, 0)

		case blockMealName:
			ensure(15)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Text(margin+2, y, tr(b.text))
			y += 5

		case blockMealItem:
			pdf.SetFont("Helvetica", "", 10)
			writeLines("- "+b.text, margin+4, pageW-(margin+4)*2, lineHeight, 1)

		case blockMealNote:
			pdf.SetFont("Helvetica", "I", 9)
			writeLines("Note: "+b.text, margin+6, pageW-(margin+4)*2, lineHeight, 1)

		case blockMealEnd:
			y += 3

		case blockDayBreak:
			y += 5
			ensure(5)
			pdf.SetDrawColor(200, 200, 200)
			pdf.Line(margin, y-2, pageW-margin, y-2)

		case blockSectionHeader:
			ensure(24)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.SetTextColor(44, 62, 80)
			pdf.Text(margin, y, tr(b.text))
			y += 8
			pdf.SetTextColor(0, 0, 0)

		case blockShoppingTable:
			y = shoppingTable(pdf, tr, b.items, y, pageW, pageH)

		case blockTip:
			pdf.SetFont("Helvetica", "", 10)
			writeLines("• "+b.text, margin, pageW-margin*2, lineHeight, 2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// shoppingTable draws the shopping list as a grid table that paginates
// itself, repeating the header on each new page, and returns the cursor
// position below the table.
func shoppingTable(pdf *gofpdf.Fpdf, tr func(string) string, items []string, y, pageW, pageH float64) float64 {
	tableW := pageW - margin*2

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(52, 73, 94)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(52, 73, 94)
		pdf.Rect(margin, y, tableW, tableRowH, "FD")
		pdf.Text(margin+2, y+tableRowH-2, "Items to Buy")
		y += tableRowH
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetDrawColor(180, 180, 180)
	}

	header()
	for _, item := range items {
		if y+tableRowH > pageH-margin {
			pdf.AddPage()
			y = margin + 5
			header()
		}
		pdf.Rect(margin, y, tableW, tableRowH, "D")
		pdf.Text(margin+2, y+tableRowH-2, tr(item))
		y += tableRowH
	}
	return y + 10
}
