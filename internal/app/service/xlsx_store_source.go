package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXStoreSource reads the store column from a local spreadsheet export.
// Used when the Sheets API is not configured (offline deployments and
// local development).
type XLSXStoreSource struct {
	Path string
}

// FetchStoreColumn returns column A of the first sheet, header row skipped.
func (x *XLSXStoreSource) FetchStoreColumn(ctx context.Context) ([]string, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	values := make([]string, 0, len(rows))
	for i, row := range rows {
		// First row is the header
		if i == 0 {
			continue
		}
		if len(row) == 0 {
			continue
		}
		values = append(values, row[0])
	}

	return values, nil
}
