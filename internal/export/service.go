// Package export produces an XLSX report of a completed run.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/entity"
	"github.com/aiseeds25/Smartreceiptscannercategorizer/internal/run"
)

// Service turns run outcomes into XLSX bytes.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildRunReport returns an XLSX workbook (as bytes) with one row per
// input file, successes and failures alike, in run order.
func (s *Service) BuildRunReport(outcomes []run.FileOutcome) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Category",
		"Warranty Date",
		"Products",
		"Artifact Path",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, out := range outcomes {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, out.File.Name)
		write(2, string(out.Result.Category))
		write(3, out.Result.WarrantyDate)
		write(4, truncate(joinItems(out.Result.LineItems), 140))
		write(5, out.Result.OutputLocation)
		write(6, out.Err)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28) // source
	_ = f.SetColWidth(sheet, "B", "B", 14) // category
	_ = f.SetColWidth(sheet, "C", "C", 14) // warranty date
	_ = f.SetColWidth(sheet, "D", "D", 48) // products
	_ = f.SetColWidth(sheet, "E", "E", 60) // artifact path
	_ = f.SetColWidth(sheet, "F", "F", 40) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteRunReport builds the workbook and writes it to path, creating
// parent directories as needed.
func (s *Service) WriteRunReport(path string, outcomes []run.FileOutcome) error {
	start := time.Now()

	data, err := s.BuildRunReport(outcomes)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"path", path,
		"rows", len(outcomes),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func joinItems(items []entity.LineItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s: %s", item.Name, item.Price)
	}
	return strings.Join(parts, "; ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
