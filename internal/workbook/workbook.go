// =============================================================================
// Sales Dataset Generator - XLSX Workbook Export
// =============================================================================
//
// This module writes the dataset as an Excel workbook for spreadsheet users.
//
// WORKBOOK STRUCTURE:
//   | Sheet   | Contents                                                  |
//   |---------|-----------------------------------------------------------|
//   | Orders  | Header row + one row per order, numbers stored as numbers |
//   | Summary | Scalar figures followed by the four aggregate views       |
//
// The Orders sheet is written with a stream writer since a full run holds
// tens of thousands of rows.
//
// =============================================================================

package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/aggregator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// Sheet names.
const (
	OrdersSheet  = "Orders"
	SummarySheet = "Summary"
)

// Options carries the report parameters and run metadata.
type Options struct {
	// RunID is stored in the workbook document properties.
	RunID string

	// Year selects the quarterly view.
	Year int

	// TopProducts is the size of the product ranking.
	TopProducts int
}

// =============================================================================
// WRITER FUNCTIONS
// =============================================================================

// Write builds the workbook for orders and saves it to path, overwriting
// any existing file.
//
// PARAMETERS:
//   - path: The destination .xlsx file.
//   - orders: The orders, in generation order.
//   - opts: Report parameters and run metadata.
//
// RETURNS:
//   - An error if any sheet cannot be built or the file cannot be saved.
func Write(path string, orders []types.Order, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new file starts with "Sheet1"; reuse it for the orders.
	if err := f.SetSheetName(f.GetSheetName(0), OrdersSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeOrders(f, orders); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", OrdersSheet, err)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", SummarySheet, err)
	}
	if err := writeSummary(f, orders, opts); err != nil {
		return fmt.Errorf("failed to write %s sheet: %w", SummarySheet, err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "E-commerce Sales Dataset",
		Subject:    "Synthetic order records",
		Creator:    "salesgen",
		Identifier: opts.RunID,
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeOrders streams the header and every order into the Orders sheet.
func writeOrders(f *excelize.File, orders []types.Order) error {
	sw, err := f.NewStreamWriter(OrdersSheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(types.Columns))
	for i, c := range types.Columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, orderCells(o)); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return sw.Flush()
}

func orderCells(o types.Order) []interface{} {
	return []interface{}{
		o.OrderID,
		o.Date,
		o.Year,
		o.Month,
		o.MonthNum,
		o.Quarter,
		o.DayOfWeek,
		o.Category,
		o.Product,
		o.UnitPrice,
		o.Quantity,
		o.TotalSales,
		o.CustomerID,
		o.Region,
		o.AgeGroup,
		o.Gender,
		o.PaymentMethod,
		o.ShippingMethod,
	}
}

// writeSummary lays out the scalar figures and the aggregate views one
// section under another, separated by a blank row.
func writeSummary(f *excelize.File, orders []types.Order, opts Options) error {
	s := aggregator.Summarize(orders)

	var rows [][]interface{}
	rows = append(rows,
		[]interface{}{"Total Orders", s.TotalOrders},
		[]interface{}{"First Date", s.FirstDate},
		[]interface{}{"Last Date", s.LastDate},
		[]interface{}{"Total Revenue", s.TotalRevenue},
		[]interface{}{"Distinct Customers", s.DistinctCustomers},
		nil,
		[]interface{}{"Sales by Category"},
		[]interface{}{"Category", "Total_Revenue", "Orders"},
	)
	for _, c := range aggregator.ByCategory(orders) {
		rows = append(rows, []interface{}{c.Category, c.Revenue, c.Orders})
	}

	rows = appendTotals(rows, fmt.Sprintf("Sales by Quarter (%d)", opts.Year), "Quarter",
		aggregator.QuarterlyRevenue(orders, opts.Year))
	rows = appendTotals(rows, fmt.Sprintf("Top %d Products by Revenue", opts.TopProducts), "Product",
		aggregator.TopProducts(orders, opts.TopProducts))
	rows = appendTotals(rows, "Sales by Region", "Region", aggregator.ByRegion(orders))

	for i, row := range rows {
		if row == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func appendTotals(rows [][]interface{}, title, label string, totals []aggregator.GroupTotal) [][]interface{} {
	rows = append(rows, nil, []interface{}{title}, []interface{}{label, "Total_Sales"})
	for _, t := range totals {
		rows = append(rows, []interface{}{t.Key, t.Revenue})
	}
	return rows
}
