package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads the helpdesk dataset from a local workbook with a
// Tickets worksheet and an optional Interactions worksheet.
type ExcelSource struct {
	path string
}

// NewExcelSource configures an Excel-file source.
func NewExcelSource(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// Name identifies the source in health and stats output.
func (s *ExcelSource) Name() string {
	return "local_file"
}

// Load reads both worksheets. A missing Interactions sheet yields an empty
// interaction list, not an error.
func (s *ExcelSource) Load(ctx context.Context) (*Dataset, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("dataset file %s: %w", s.path, err)
	}

	workbook, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	tickets, err := readSheet(workbook, "Tickets")
	if err != nil {
		return nil, err
	}

	interactions, err := readSheet(workbook, "Interactions")
	if err != nil {
		interactions = nil
	}

	return &Dataset{Tickets: tickets, Interactions: interactions}, nil
}

func readSheet(workbook *excelize.File, sheet string) ([]RawRow, error) {
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	records := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(RawRow, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
