package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"cf-insight/internal/stats"
)

const (
	topTagCount = 10
	footerText  = "This report was automatically generated and is for informational purposes only."
)

// WritePDF renders one page per user into a paginated A4 report and writes it
// to outPath.
func WritePDF(reports []UserReport, window stats.Window, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(13, 13, 13)
	pdf.SetAutoPageBreak(true, 20)

	period := fmt.Sprintf("%s - %s",
		window.Start.Format("02/01/2006"),
		window.End.AddDate(0, 0, -1).Format("02/01/2006"))

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(120, 6, footerText, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 6, "Period: "+period, "", 0, "R", false, 0, "")
	})

	for _, r := range reports {
		writeUserPage(pdf, r, window)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	log.Info().Str("path", outPath).Int("users", len(reports)).Msg("PDF report written")
	return nil
}

func writeUserPage(pdf *fpdf.Fpdf, r UserReport, window stats.Window) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 11, fmt.Sprintf("Name: %s", r.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, fmt.Sprintf("CF: %s", r.Handle), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeSection(pdf, "Stats Overview")
	writeTableHeader(pdf, []float64{46, 46, 46, 46},
		[]string{"Problems Attempted", "Problems Solved", "Average Difficulty", "Contests Participated"})
	writeTableRow(pdf, []float64{46, 46, 46, 46}, []string{
		fmt.Sprintf("%d", r.Stats.Attempted),
		fmt.Sprintf("%d", r.Stats.Solved),
		fmt.Sprintf("%d", r.Stats.AvgDifficulty),
		fmt.Sprintf("%d", r.Stats.ContestCount),
	})
	pdf.Ln(6)

	writeSection(pdf, "Daily Activity")
	if days := SortedDays(r.Stats.DailySolves); len(days) > 0 {
		writeTableHeader(pdf, []float64{45, 50, 50}, []string{"Date", "Day of Week", "Problems Solved"})
		for _, d := range days {
			date, err := time.ParseInLocation("2006-01-02", d.Day, window.Loc)
			if err != nil {
				continue
			}
			writeTableRow(pdf, []float64{45, 50, 50}, []string{
				date.Format("02 Jan 2006"),
				date.Format("Monday"),
				fmt.Sprintf("%d", d.Count),
			})
		}
	} else {
		writeEmptyNote(pdf, "No activity data available for the selected period")
	}
	pdf.Ln(6)

	writeSection(pdf, "Problem Tags")
	if tags := TopTags(r.Stats.TagFrequency, topTagCount); len(tags) > 0 {
		writeTableHeader(pdf, []float64{110, 35}, []string{"Tag", "Count"})
		for _, tc := range tags {
			writeTableRow(pdf, []float64{110, 35}, []string{tc.Tag, fmt.Sprintf("%d", tc.Count)})
		}
	} else {
		writeEmptyNote(pdf, "No tag data available")
	}
	pdf.Ln(6)

	writeSection(pdf, "Contest Participation")
	if len(r.Stats.ContestResults) > 0 {
		widths := []float64{30, 84, 22, 22, 22}
		writeTableHeader(pdf, widths, []string{"Date", "Contest", "Rank", "Rating", "Change"})
		for _, c := range r.Stats.ContestResults {
			change := c.RatingChange()
			changeText := fmt.Sprintf("%d", change)
			if change > 0 {
				changeText = fmt.Sprintf("+%d", change)
			}
			writeTableRow(pdf, widths, []string{
				time.Unix(c.Timestamp, 0).In(window.Loc).Format("Jan 02 15:04"),
				c.Name,
				fmt.Sprintf("%d", c.Rank),
				fmt.Sprintf("%d", c.NewRating),
				changeText,
			})
		}
	} else {
		writeEmptyNote(pdf, "No contest data available")
	}
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func writeTableHeader(pdf *fpdf.Fpdf, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(211, 211, 211)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTableRow(pdf *fpdf.Fpdf, widths []float64, cells []string) {
	pdf.SetFont("Helvetica", "", 9)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeEmptyNote(pdf *fpdf.Fpdf, note string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, note, "", 1, "L", false, 0, "")
}
