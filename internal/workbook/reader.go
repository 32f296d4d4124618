package workbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/dataset"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// IsWorkbook reports whether path names an XLSX file.
func IsWorkbook(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// Read parses the Orders sheet of a workbook written by Write.
//
// RETURNS:
//   - The orders in sheet order.
//   - An error naming the offending row if the header does not match or a
//     cell cannot be parsed.
func Read(path string) ([]types.Order, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(OrdersSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", OrdersSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s sheet is empty", OrdersSheet)
	}

	width := len(types.Columns)
	if len(rows[0]) < width {
		return nil, fmt.Errorf("header has %d columns, want %d", len(rows[0]), width)
	}
	if err := dataset.CheckHeader(rows[0]); err != nil {
		return nil, err
	}

	orders := make([]types.Order, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		// GetRows drops trailing empty cells.
		if len(row) == 0 {
			continue
		}
		if len(row) < width {
			row = append(row, make([]string, width-len(row))...)
		}

		order, err := dataset.ParseRecord(row[:width])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}
