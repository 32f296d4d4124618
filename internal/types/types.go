// =============================================================================
// Sales Dataset Generator - Shared Types
// =============================================================================
//
// This package contains the order record shared by every stage of the
// pipeline, kept separate to avoid import cycles. Types defined here are
// used by:
//   - generator
//   - aggregator
//   - dataset
//   - workbook
//   - validation
//
// =============================================================================

package types

import (
	"strconv"
)

// =============================================================================
// ORDER RECORD
// =============================================================================

// Columns is the header row of the dataset, in output order.
var Columns = []string{
	"Order_ID",
	"Date",
	"Year",
	"Month",
	"Month_Num",
	"Quarter",
	"Day_of_Week",
	"Category",
	"Product",
	"Unit_Price",
	"Quantity",
	"Total_Sales",
	"Customer_ID",
	"Region",
	"Age_Group",
	"Gender",
	"Payment_Method",
	"Shipping_Method",
}

// Order is one synthetic e-commerce transaction.
// Orders are immutable once the generator has produced them.
type Order struct {
	// OrderID is "ORD" followed by the sequence number, e.g. "ORD1000".
	OrderID string

	// Date is the calendar day formatted as YYYY-MM-DD.
	Date string

	Year      int
	Month     string
	MonthNum  int
	Quarter   string
	DayOfWeek string

	Category string
	Product  string

	// UnitPrice and TotalSales are already rounded to 2 decimals.
	UnitPrice  float64
	Quantity   int
	TotalSales float64

	// CustomerID is "CUST" followed by a 4-digit number. The same customer
	// appears on many orders.
	CustomerID string

	Region         string
	AgeGroup       string
	Gender         string
	PaymentMethod  string
	ShippingMethod string
}

// Row renders the order as CSV fields in Columns order.
func (o Order) Row() []string {
	return []string{
		o.OrderID,
		o.Date,
		strconv.Itoa(o.Year),
		o.Month,
		strconv.Itoa(o.MonthNum),
		o.Quarter,
		o.DayOfWeek,
		o.Category,
		o.Product,
		FormatAmount(o.UnitPrice),
		strconv.Itoa(o.Quantity),
		FormatAmount(o.TotalSales),
		o.CustomerID,
		o.Region,
		o.AgeGroup,
		o.Gender,
		o.PaymentMethod,
		o.ShippingMethod,
	}
}

// FormatAmount formats a monetary value with exactly 2 decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
