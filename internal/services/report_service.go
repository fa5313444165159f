package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mindcarehq/mindcare-backend/pkg/moodkit"
)

// ReportService renders the downloadable mood report.
type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

// BuildMoodReport renders a PDF with one row per entry (oldest first)
// and the window average. days is the retention window the entries cover.
func (s *ReportService) BuildMoodReport(entries []moodkit.Entry, days int) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 72)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 20, fmt.Sprintf("MindCare - Mood Report (Last %d days)", days), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, "Generated: "+time.Now().Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(110, 16, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(80, 16, "Mood (1-5)", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 16, "Activities", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	sum := 0
	for _, e := range entries {
		activities := strings.Join(e.Activities, ", ")
		if len(activities) > 80 {
			activities = activities[:80]
		}
		pdf.CellFormat(110, 16, e.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(80, 16, fmt.Sprintf("%d", e.Mood), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 16, activities, "", 1, "L", false, 0, "")
		sum += e.Mood
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	if len(entries) > 0 {
		avg := float64(sum) / float64(len(entries))
		pdf.CellFormat(0, 16, fmt.Sprintf("Average mood (last %d days): %.2f", len(entries), avg), "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 16, fmt.Sprintf("No mood entries found in past %d days.", days), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
