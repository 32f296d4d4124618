// =============================================================================
// Sales Dataset Generator - Validation Module
// =============================================================================
//
// This module checks a set of orders record by record against the rules
// the generator guarantees. It is run after generation (generate
// --validate) and on existing dataset files (validate).
//
// VALIDATION RULES:
//   | Rule            | Check                                                |
//   |-----------------|------------------------------------------------------|
//   | order_id        | "ORD<n>", strictly increasing and unique              |
//   | date            | YYYY-MM-DD inside the generation window               |
//   | date_fields     | Year, Month, Month_Num, Day_of_Week match the date    |
//   | quarter         | Quarter == Q{((Month_Num-1)/3)+1}                     |
//   | category        | Known category, product belongs to it                 |
//   | price_range     | Unit_Price within the category's [min, max]           |
//   | quantity        | Integer in [1, 8]                                     |
//   | total           | Total_Sales == round(Unit_Price * Quantity, 2)       |
//   | customer        | "CUST" + 4 digits, number in [1, 500]                 |
//   | domain          | Region, Age_Group, Gender, Payment, Shipping known    |
//
// =============================================================================

package validation

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/calendar"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// Quantity bounds over both quantity bands.
const (
	minQuantity = 1
	maxQuantity = 8
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single rule violation.
type ValidationError struct {
	// RowNumber is the 1-based position of the order in the set. For a
	// dataset file, data row 1 is line 2.
	RowNumber int

	// OrderID identifies the offending order.
	OrderID string

	// Field is the column that failed validation.
	Field string

	// Value is the offending value as text.
	Value string

	// Rule is the rule that was violated.
	Rule string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Row %d (%s), Field '%s' [%s]: %s (value: '%s')",
		e.RowNumber,
		e.OrderID,
		e.Field,
		e.Rule,
		e.Message,
		e.Value,
	)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// Result contains the outcome of validating an order set.
type Result struct {
	// IsValid is true if no rule was violated.
	IsValid bool

	// Errors contains every violation in row order.
	Errors []*ValidationError

	// OrdersValidated is the number of orders checked.
	OrdersValidated int
}

// =============================================================================
// VALIDATOR
// =============================================================================

// Validator checks orders against a catalog and a date window.
type Validator struct {
	catalog *catalog.Catalog
	window  calendar.Window
	options Options
}

// Options contains options for validation.
type Options struct {
	// MaxErrors stops validation once this many violations are found.
	// Zero means no limit.
	MaxErrors int
}

// NewValidator creates a Validator.
func NewValidator(cat *catalog.Catalog, window calendar.Window, options Options) *Validator {
	return &Validator{catalog: cat, window: window, options: options}
}

// Validate checks orders with default options.
//
// PARAMETERS:
//   - orders: The orders to check, in generation order.
//   - cat: The catalog the orders were drawn from.
//   - window: The generation window.
//
// RETURNS:
//   - The validation result.
func Validate(orders []types.Order, cat *catalog.Catalog, window calendar.Window) *Result {
	return NewValidator(cat, window, Options{}).ValidateAll(orders)
}

// ValidateAll checks every order and the id sequence across orders.
func (v *Validator) ValidateAll(orders []types.Order) *Result {
	result := &Result{
		IsValid:         true,
		Errors:          make([]*ValidationError, 0),
		OrdersValidated: len(orders),
	}

	seen := make(map[string]int, len(orders))
	prev := -1

	for i := range orders {
		row := i + 1
		o := &orders[i]

		errs := v.ValidateOrder(row, o)

		n, ok := orderNumber(o.OrderID)
		switch {
		case !ok:
			errs = append(errs, newError(row, o, "Order_ID", o.OrderID, "order_id", "expected ORD followed by a number"))
		case seen[o.OrderID] > 0:
			errs = append(errs, newError(row, o, "Order_ID", o.OrderID, "order_id",
				fmt.Sprintf("duplicate of row %d", seen[o.OrderID])))
		case prev >= 0 && n <= prev:
			errs = append(errs, newError(row, o, "Order_ID", o.OrderID, "order_id",
				fmt.Sprintf("not greater than previous order number %d", prev)))
		}
		if ok {
			prev = n
			if seen[o.OrderID] == 0 {
				seen[o.OrderID] = row
			}
		}

		for _, err := range errs {
			result.Errors = append(result.Errors, err)
			result.IsValid = false
			if v.options.MaxErrors > 0 && len(result.Errors) >= v.options.MaxErrors {
				return result
			}
		}
	}

	return result
}

// ValidateOrder checks the rules that concern a single order.
func (v *Validator) ValidateOrder(row int, o *types.Order) []*ValidationError {
	var errs []*ValidationError
	add := func(field, value, rule, msg string) {
		errs = append(errs, newError(row, o, field, value, rule, msg))
	}

	// Date and derived fields.
	day, err := calendar.Parse(o.Date)
	if err != nil {
		add("Date", o.Date, "date", "expected YYYY-MM-DD")
	} else {
		if !v.window.Contains(day) {
			add("Date", o.Date, "date", fmt.Sprintf("outside %s to %s", v.window.Start, v.window.End))
		}
		if o.Year != day.Year() {
			add("Year", strconv.Itoa(o.Year), "date_fields", "does not match date")
		}
		if o.MonthNum != day.MonthNum() {
			add("Month_Num", strconv.Itoa(o.MonthNum), "date_fields", "does not match date")
		}
		if o.Month != day.MonthName() {
			add("Month", o.Month, "date_fields", "does not match date")
		}
		if o.DayOfWeek != day.Weekday() {
			add("Day_of_Week", o.DayOfWeek, "date_fields", "does not match date")
		}
	}
	if o.MonthNum < 1 || o.MonthNum > 12 || o.Quarter != calendar.QuarterOf(o.MonthNum) {
		add("Quarter", o.Quarter, "quarter", "not derived from Month_Num")
	}

	// Category, product and price.
	cat, ok := v.catalog.Category(o.Category)
	if !ok {
		add("Category", o.Category, "category", "unknown category")
	} else {
		if !cat.HasProduct(o.Product) {
			add("Product", o.Product, "category", "product not in category "+cat.Name)
		}
		if !cat.Price.Contains(o.UnitPrice) {
			add("Unit_Price", types.FormatAmount(o.UnitPrice), "price_range",
				fmt.Sprintf("outside [%s, %s]", types.FormatAmount(cat.Price.Min), types.FormatAmount(cat.Price.Max)))
		}
	}

	if o.Quantity < minQuantity || o.Quantity > maxQuantity {
		add("Quantity", strconv.Itoa(o.Quantity), "quantity",
			fmt.Sprintf("outside [%d, %d]", minQuantity, maxQuantity))
	}

	if want := generator.Round2(o.UnitPrice * float64(o.Quantity)); o.TotalSales != want {
		add("Total_Sales", types.FormatAmount(o.TotalSales), "total",
			"expected "+types.FormatAmount(want))
	}

	if !v.validCustomer(o.CustomerID) {
		add("Customer_ID", o.CustomerID, "customer",
			fmt.Sprintf("expected CUST0001 to CUST%04d", v.catalog.MaxCustomerID))
	}

	// Fixed domains.
	domains := []struct {
		field, value string
		allowed      []string
	}{
		{"Region", o.Region, v.catalog.Regions},
		{"Age_Group", o.AgeGroup, v.catalog.AgeGroups},
		{"Gender", o.Gender, v.catalog.Genders},
		{"Payment_Method", o.PaymentMethod, v.catalog.PaymentMethods},
		{"Shipping_Method", o.ShippingMethod, v.catalog.ShippingMethods},
	}
	for _, d := range domains {
		if !slices.Contains(d.allowed, d.value) {
			add(d.field, d.value, "domain", "not one of "+strings.Join(d.allowed, ", "))
		}
	}

	return errs
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func newError(row int, o *types.Order, field, value, rule, msg string) *ValidationError {
	return &ValidationError{
		RowNumber: row,
		OrderID:   o.OrderID,
		Field:     field,
		Value:     value,
		Rule:      rule,
		Message:   msg,
	}
}

func orderNumber(id string) (int, bool) {
	digits, found := strings.CutPrefix(id, "ORD")
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (v *Validator) validCustomer(id string) bool {
	digits, found := strings.CutPrefix(id, "CUST")
	if !found || len(digits) != 4 {
		return false
	}
	n, err := strconv.Atoi(digits)
	return err == nil && n >= 1 && n <= v.catalog.MaxCustomerID
}

// =============================================================================
// ERROR REPORTING
// =============================================================================

// FormatErrors formats validation errors for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d error(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}

// WriteErrorLog writes validation errors to filePath, overwriting it.
func WriteErrorLog(errors []*ValidationError, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "Sales Dataset Generator - Validation Log\nGenerated: %s\n\n",
		time.Now().Format("2006-01-02 15:04:05"))
	writer.WriteString(FormatErrors(errors))

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush error log: %w", err)
	}
	return nil
}
