package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/iota-uz/servicedesk/modules/requests/domain/aggregates/request"
)

var exportHeaders = []string{"ID", "Category", "Priority", "Status", "Created On", "Description"}

const excelSheetName = "Requests"

// ExportService renders collections and summaries as downloadable payloads.
// It performs no I/O; callers own delivery.
type ExportService struct {
	repo  request.Repository
	stats *StatsService
	now   func() time.Time
}

func NewExportService(repo request.Repository, stats *StatsService) *ExportService {
	return &ExportService{repo: repo, stats: stats, now: time.Now}
}

func NewExportServiceWithClock(repo request.Repository, stats *StatsService, now func() time.Time) *ExportService {
	return &ExportService{repo: repo, stats: stats, now: now}
}

func (s *ExportService) RequestsCSV(ctx context.Context) (string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	return RequestsToCSV(items), nil
}

// RequestsToCSV renders one row per request in collection order. Every field
// is double-quoted unconditionally; embedded quotes are doubled.
func RequestsToCSV(items []request.Request) string {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	b.WriteString("\n")

	for _, item := range items {
		row := []string{
			csvQuote(item.ID()),
			csvQuote(item.Category()),
			csvQuote(string(item.Priority())),
			csvQuote(string(item.Status())),
			csvQuote(item.CreatedOn()),
			csvQuote(item.Description()),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func csvQuote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func (s *ExportService) SummaryReport(ctx context.Context) (string, error) {
	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return "", err
	}
	return SummaryToReport(summary, s.now()), nil
}

// SummaryToReport renders the statistics report in the fixed three-section
// layout: summary counts, priority distribution, category distribution.
func SummaryToReport(summary Summary, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("IT Request Manager Statistics\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("Summary\n")
	fmt.Fprintf(&b, "Total Requests,%d\n", summary.TotalRequests)
	fmt.Fprintf(&b, "Open Requests,%d\n", summary.OpenRequests)
	fmt.Fprintf(&b, "In Progress,%d\n", summary.InProgress)
	fmt.Fprintf(&b, "Closed Requests,%d\n\n", summary.ClosedRequests)

	b.WriteString("Priority Distribution\n")
	fmt.Fprintf(&b, "Critical,%d (%d%%)\n", summary.CriticalCount, summary.CriticalPercentage)
	fmt.Fprintf(&b, "High,%d (%d%%)\n", summary.HighCount, summary.HighPercentage)
	fmt.Fprintf(&b, "Medium,%d (%d%%)\n", summary.MediumCount, summary.MediumPercentage)
	fmt.Fprintf(&b, "Low,%d (%d%%)\n\n", summary.LowCount, summary.LowPercentage)

	b.WriteString("Category Distribution\n")
	for _, item := range summary.CategoryData {
		fmt.Fprintf(&b, "%s,%d (%d%%)\n", item.Category, item.Count, item.Percentage)
	}
	return b.String()
}

// RequestsExcel renders the collection as an XLSX workbook with the same
// columns as the CSV export.
func (s *ExportService) RequestsExcel(ctx context.Context) ([]byte, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(excelSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			item.ID(),
			item.Category(),
			string(item.Priority()),
			string(item.Status()),
			item.CreatedOn(),
			item.Description(),
		}
		if err := f.SetSheetRow(excelSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
