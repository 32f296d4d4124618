// =============================================================================
// Sales Dataset Generator - Generator Module
// =============================================================================
//
// This module synthesizes the order records. It walks the daily calendar,
// draws a seasonally weighted number of orders for each day, and fills in
// every order attribute from the static catalog.
//
// GENERATION PIPELINE (per calendar day):
//   1. Draw the day's order count from its month's demand band
//   2. For each order slot:
//      a. Draw category, product and unit price
//      b. Draw quantity (mostly 1-3, occasionally 4-8)
//      c. Draw customer, demographics, payment and shipping
//      d. Assign the next order id
//
// STATE:
//   The pseudo-random stream and the order id counter are owned by the
//   Generator value. A Generator must be used by one goroutine at a time.
//
// =============================================================================

package generator

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/calendar"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/logging"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// =============================================================================
// GENERATION CONSTANTS
// =============================================================================

// DefaultSeed reproduces the reference dataset shape.
const DefaultSeed uint64 = 42

// FirstOrderNumber is the number behind the first order id, "ORD1000".
const FirstOrderNumber = 1000

// smallOrderProbability is the share of orders with quantity 1-3.
const smallOrderProbability = 0.85

// band is an inclusive integer interval.
type band struct {
	lo, hi int
}

// Seasonal demand bands for the daily order count.
var (
	holidayBand = band{40, 80} // November, December
	summerBand  = band{35, 65} // July, August
	baseBand    = band{20, 45}

	smallQuantity = band{1, 3}
	largeQuantity = band{4, 8}
)

// DemandBand returns the inclusive daily order count interval for a month.
func DemandBand(month int) (lo, hi int) {
	b := demandBand(month)
	return b.lo, b.hi
}

func demandBand(month int) band {
	switch month {
	case 11, 12:
		return holidayBand
	case 7, 8:
		return summerBand
	default:
		return baseBand
	}
}

// =============================================================================
// GENERATOR STRUCTURE
// =============================================================================

// Generator produces orders from a seeded pseudo-random stream.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	nextID  int
}

// New creates a Generator over cat seeded with seed.
// Two generators built with the same catalog and seed produce identical
// order sequences for the same calendar.
func New(cat *catalog.Catalog, seed uint64) *Generator {
	return &Generator{
		catalog: cat,
		rng:     rand.New(rand.NewPCG(seed, seed)),
		nextID:  FirstOrderNumber,
	}
}

// =============================================================================
// GENERATION FUNCTIONS
// =============================================================================

// Generate produces the orders for every day, in calendar order.
//
// PARAMETERS:
//   - days: The calendar to walk.
//
// RETURNS:
//   - All generated orders. Order ids keep increasing across days.
func (g *Generator) Generate(days []calendar.Day) []types.Order {
	log := logging.Logger()

	var orders []types.Order
	for _, day := range days {
		daily := g.GenerateDay(day)
		log.Debugf("Generated %d orders for %s", len(daily), day)
		orders = append(orders, daily...)
	}

	log.Infof("Generated %d orders across %d days", len(orders), len(days))
	return orders
}

// GenerateDay draws the day's order count and builds that many orders.
func (g *Generator) GenerateDay(day calendar.Day) []types.Order {
	n := g.DailyOrderCount(day.MonthNum())
	orders := make([]types.Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, g.NewOrder(day))
	}
	return orders
}

// DailyOrderCount draws the number of orders for a day in month.
// November and December fall in [40,80], July and August in [35,65], and
// every other month in [20,45].
func (g *Generator) DailyOrderCount(month int) int {
	return g.intIn(demandBand(month))
}

// NewOrder builds one order on day and advances the order id counter.
func (g *Generator) NewOrder(day calendar.Day) types.Order {
	cat := g.catalog.Categories[g.rng.IntN(len(g.catalog.Categories))]
	product := pick(g.rng, cat.Products)

	price := Round2(cat.Price.Min + (cat.Price.Max-cat.Price.Min)*g.rng.Float64())
	quantity := g.quantity()
	total := Round2(price * float64(quantity))

	customer := fmt.Sprintf("CUST%04d", 1+g.rng.IntN(g.catalog.MaxCustomerID))

	order := types.Order{
		OrderID:        fmt.Sprintf("ORD%d", g.nextID),
		Date:           day.String(),
		Year:           day.Year(),
		Month:          day.MonthName(),
		MonthNum:       day.MonthNum(),
		Quarter:        day.Quarter(),
		DayOfWeek:      day.Weekday(),
		Category:       cat.Name,
		Product:        product,
		UnitPrice:      price,
		Quantity:       quantity,
		TotalSales:     total,
		CustomerID:     customer,
		Region:         pick(g.rng, g.catalog.Regions),
		AgeGroup:       pick(g.rng, g.catalog.AgeGroups),
		Gender:         pick(g.rng, g.catalog.Genders),
		PaymentMethod:  pick(g.rng, g.catalog.PaymentMethods),
		ShippingMethod: pick(g.rng, g.catalog.ShippingMethods),
	}

	g.nextID++
	return order
}

// NextOrderNumber returns the number the next order id will use.
func (g *Generator) NextOrderNumber() int {
	return g.nextID
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

func (g *Generator) quantity() int {
	if g.rng.Float64() < smallOrderProbability {
		return g.intIn(smallQuantity)
	}
	return g.intIn(largeQuantity)
}

func (g *Generator) intIn(b band) int {
	return b.lo + g.rng.IntN(b.hi-b.lo+1)
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}

// Round2 rounds v to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
