// =============================================================================
// Sales Dataset Generator - Report Module
// =============================================================================
//
// This module renders the human-readable report printed after generation:
//   - Order count, date range and total revenue
//   - A sample of the first records
//   - The four aggregate views, each as a labeled table
//
// Counts and currency use English digit grouping ("29,874", "$1,234.56").
// Table cells keep plain 2-decimal amounts.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/aggregator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// =============================================================================
// REPORT OPTIONS
// =============================================================================

// Options controls what the report contains.
type Options struct {
	// Created prints the "Dataset created successfully!" banner.
	Created bool

	// SampleRows is the number of leading records shown. Default: 10.
	SampleRows int

	// Year selects the quarterly view. Default: 2024.
	Year int

	// TopProducts is the size of the product ranking. Default: 5.
	TopProducts int

	// OutputFile is named in the closing line when non-empty.
	OutputFile string
}

// DefaultOptions matches the report of a plain generate run.
func DefaultOptions() Options {
	return Options{
		Created:     true,
		SampleRows:  10,
		Year:        2024,
		TopProducts: 5,
	}
}

func (o *Options) applyDefaults() {
	d := DefaultOptions()
	if o.SampleRows < 0 {
		o.SampleRows = 0
	}
	if o.Year == 0 {
		o.Year = d.Year
	}
	if o.TopProducts <= 0 {
		o.TopProducts = d.TopProducts
	}
}

const banner = "============================================================"

var printer = message.NewPrinter(language.English)

// FormatCurrency renders v as dollars with digit grouping, e.g. "$1,234.50".
func FormatCurrency(v float64) string {
	if v < 0 {
		return printer.Sprintf("-$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", v)
}

// FormatCount renders n with digit grouping, e.g. "29,874".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// =============================================================================
// RENDERING
// =============================================================================

// Render writes the full report for orders to w.
//
// RETURNS:
//   - The first write error, if any.
func Render(w io.Writer, orders []types.Order, opts Options) error {
	opts.applyDefaults()
	out := bufio.NewWriter(w)

	summary := aggregator.Summarize(orders)

	if opts.Created {
		fmt.Fprintln(out, "Dataset created successfully!")
	}
	fmt.Fprintf(out, "Total Orders: %s\n", FormatCount(summary.TotalOrders))
	fmt.Fprintf(out, "Date Range: %s to %s\n", summary.FirstDate, summary.LastDate)
	fmt.Fprintf(out, "Total Revenue: %s\n", FormatCurrency(summary.TotalRevenue))
	fmt.Fprintf(out, "Distinct Customers: %s\n", FormatCount(int(summary.DistinctCustomers)))

	if opts.SampleRows > 0 {
		fmt.Fprintln(out, "\nFirst few rows:")
		writeSample(out, orders, opts.SampleRows)
	}

	fmt.Fprintln(out, "\n"+banner)
	fmt.Fprintln(out, "SUMMARY STATISTICS")
	fmt.Fprintln(out, banner)

	fmt.Fprintln(out, "\n Sales by Category:")
	writeCategories(out, aggregator.ByCategory(orders))

	fmt.Fprintf(out, "\n Sales by Quarter (%d):\n", opts.Year)
	writeTotals(out, "Quarter", aggregator.QuarterlyRevenue(orders, opts.Year))

	fmt.Fprintf(out, "\n Top %d Products by Revenue:\n", opts.TopProducts)
	writeTotals(out, "Product", aggregator.TopProducts(orders, opts.TopProducts))

	fmt.Fprintln(out, "\n Sales by Region:")
	writeTotals(out, "Region", aggregator.ByRegion(orders))

	if opts.OutputFile != "" {
		fmt.Fprintf(out, "\n File saved as: %s\n", opts.OutputFile)
	}

	return out.Flush()
}

// writeSample prints the first n orders as an aligned table with a
// leading row index.
func writeSample(w io.Writer, orders []types.Order, n int) {
	if n > len(orders) {
		n = len(orders)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "\t"+strings.Join(types.Columns, "\t")+"\t")
	for i := 0; i < n; i++ {
		fmt.Fprintf(tw, "%d\t%s\t\n", i, strings.Join(orders[i].Row(), "\t"))
	}
	tw.Flush()
}

func writeCategories(w io.Writer, stats []aggregator.CategoryStat) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Category\tTotal_Revenue\tOrders\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", s.Category, types.FormatAmount(s.Revenue), s.Orders)
	}
	tw.Flush()
}

func writeTotals(w io.Writer, label string, totals []aggregator.GroupTotal) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\tTotal_Sales\t\n", label)
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%s\t\n", t.Key, types.FormatAmount(t.Revenue))
	}
	tw.Flush()
}
