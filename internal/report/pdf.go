// Package report renders a statistics roll-up as a PDF.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ashvell/attain/internal/calendar"
	"github.com/ashvell/attain/internal/models"
)

// Generate writes a PDF report of stats over rng to path.
func Generate(stats models.Statistics, rng models.Range, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Achievement Report: %s - %s",
		rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Active achievements: %d", stats.TotalAchievements))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Completions: %d", stats.CompletedCount))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Points earned: %d", stats.TotalPoints))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Completion rate: %.1f%%", stats.CompletionRate*100))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Current streak: %d  /  Best streak: %d",
		stats.CurrentStreak, stats.BestStreak))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "By Weekday")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for wd := calendar.Sunday; wd <= calendar.Saturday; wd++ {
		if count := stats.ByWeekday[wd]; count > 0 {
			pdf.Cell(0, 8, fmt.Sprintf("  %s: %d", wd, count))
			pdf.Ln(6)
		}
	}
	pdf.Ln(4)

	if len(stats.ByCategory) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "By Category")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		categories := make([]string, 0, len(stats.ByCategory))
		for category := range stats.ByCategory {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			pdf.Cell(0, 8, fmt.Sprintf("  %s: %d", category, stats.ByCategory[category]))
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "History")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	days := make([]time.Time, 0, len(stats.History))
	for day := range stats.History {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, day := range days {
		marker := "-"
		if count := stats.History[day]; count > 0 {
			marker = fmt.Sprintf("%d completed", count)
		}
		pdf.Cell(0, 6, fmt.Sprintf("  %s  %s", day.Format("Mon 2006-01-02"), marker))
		pdf.Ln(5)
	}

	return pdf.OutputFileAndClose(path)
}
