// =============================================================================
// Sales Dataset Generator - Dataset File Module
// =============================================================================
//
// This module reads and writes the flat dataset file: comma-separated UTF-8
// text, one header row with the exact column names, one row per order, no
// index column.
//
// WRITING:
//   The file is created or truncated. A failed write is returned to the
//   caller and may leave a truncated file behind.
//
// READING:
//   Files written by this module can be parsed back into orders so that the
//   report and validate commands work on an existing dataset. The header
//   row must match the expected columns exactly.
//
// =============================================================================

package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// DefaultFileName is the dataset file written when no path is configured.
const DefaultFileName = "ecommerce_sales_data.csv"

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Write creates (or overwrites) path and writes every order to it.
//
// PARAMETERS:
//   - path: The destination file.
//   - orders: The orders, in generation order.
//
// RETURNS:
//   - An error if the file cannot be created, written, or closed.
func Write(path string, orders []types.Order) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}

	if err := WriteTo(file, orders); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close dataset file: %w", err)
	}
	return nil
}

// WriteTo writes the header row and the orders as CSV to w.
func WriteTo(w io.Writer, orders []types.Order) error {
	buffered := bufio.NewWriter(w)
	writer := csv.NewWriter(buffered)

	if err := writer.Write(types.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, o := range orders {
		if err := writer.Write(o.Row()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush dataset: %w", err)
	}
	return nil
}

// =============================================================================
// READER FUNCTIONS
// =============================================================================

// Read parses a dataset file back into orders.
func Read(path string) ([]types.Order, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	return ReadFrom(file)
}

// ReadFrom parses CSV dataset content from r.
//
// RETURNS:
//   - The orders in file order.
//   - An error naming the offending line if the header does not match or
//     a field cannot be parsed.
func ReadFrom(r io.Reader) ([]types.Order, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = len(types.Columns)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := CheckHeader(header); err != nil {
		return nil, err
	}

	var orders []types.Order
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		order, err := ParseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// CheckHeader verifies the header row column by column.
func CheckHeader(header []string) error {
	if len(header) < len(types.Columns) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(types.Columns))
	}
	for i, want := range types.Columns {
		got := strings.TrimSpace(header[i])
		if i == 0 {
			got = strings.TrimPrefix(got, "\ufeff")
		}
		if got != want {
			return fmt.Errorf("unexpected header in column %d: got %q, want %q", i+1, got, want)
		}
	}
	return nil
}

// ParseRecord converts one record into an order.
func ParseRecord(record []string) (types.Order, error) {
	var (
		o   types.Order
		err error
	)

	field := func(i int) string { return strings.TrimSpace(record[i]) }

	o.OrderID = field(0)
	o.Date = field(1)
	if o.Year, err = parseInt(types.Columns[2], field(2)); err != nil {
		return o, err
	}
	o.Month = field(3)
	if o.MonthNum, err = parseInt(types.Columns[4], field(4)); err != nil {
		return o, err
	}
	o.Quarter = field(5)
	o.DayOfWeek = field(6)
	o.Category = field(7)
	o.Product = field(8)
	if o.UnitPrice, err = parseFloat(types.Columns[9], field(9)); err != nil {
		return o, err
	}
	if o.Quantity, err = parseInt(types.Columns[10], field(10)); err != nil {
		return o, err
	}
	if o.TotalSales, err = parseFloat(types.Columns[11], field(11)); err != nil {
		return o, err
	}
	o.CustomerID = field(12)
	o.Region = field(13)
	o.AgeGroup = field(14)
	o.Gender = field(15)
	o.PaymentMethod = field(16)
	o.ShippingMethod = field(17)

	return o, nil
}

func parseInt(column, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return n, nil
}

func parseFloat(column, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", column, value, err)
	}
	return f, nil
}
