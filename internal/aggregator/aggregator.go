// =============================================================================
// Sales Dataset Generator - Aggregator Module
// =============================================================================
//
// This module computes the aggregate views of the report from the full
// order set. Every view is recomputed on demand and nothing is cached.
//
// AGGREGATION PIPELINE:
//   group (first-seen key order) -> sum / count -> round -> sort -> limit
//
// RULES:
//   - Revenue is the sum of TotalSales per group.
//   - Rounding to 2 decimals happens after summing, never per record.
//   - Ranked views sort strictly descending by revenue. Ties keep the order
//     in which their keys were first encountered.
//
// =============================================================================

package aggregator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

// =============================================================================
// VIEW STRUCTURES
// =============================================================================

// GroupTotal is the revenue of one group key.
type GroupTotal struct {
	Key     string
	Revenue float64
}

// CategoryStat is the revenue and order count of one category.
type CategoryStat struct {
	Category string
	Revenue  float64
	Orders   int
}

// Summary holds the scalar figures at the top of the report.
type Summary struct {
	TotalOrders       int
	FirstDate         string
	LastDate          string
	TotalRevenue      float64
	DistinctCustomers uint64
}

// =============================================================================
// GROUPING
// =============================================================================

// group is the accumulator shared by every view.
type group struct {
	key   string
	sum   float64
	count int
}

// groupBy sums TotalSales per key, keeping first-seen key order.
func groupBy(orders []types.Order, key func(types.Order) string) []group {
	index := make(map[string]int)
	var groups []group

	for _, o := range orders {
		k := key(o)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].sum += o.TotalSales
		groups[i].count++
	}

	return groups
}

func totals(groups []group) []GroupTotal {
	out := make([]GroupTotal, len(groups))
	for i, g := range groups {
		out[i] = GroupTotal{Key: g.key, Revenue: generator.Round2(g.sum)}
	}
	return out
}

func sortByRevenueDesc(views []GroupTotal) {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Revenue > views[j].Revenue
	})
}

// =============================================================================
// AGGREGATE VIEWS
// =============================================================================

// ByCategory returns revenue and order count per category, highest revenue
// first.
func ByCategory(orders []types.Order) []CategoryStat {
	groups := groupBy(orders, func(o types.Order) string { return o.Category })

	stats := make([]CategoryStat, len(groups))
	for i, g := range groups {
		stats[i] = CategoryStat{
			Category: g.key,
			Revenue:  generator.Round2(g.sum),
			Orders:   g.count,
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue > stats[j].Revenue
	})
	return stats
}

// QuarterlyRevenue returns revenue per quarter for orders placed in year,
// ordered Q1 to Q4. Quarters without orders are omitted.
func QuarterlyRevenue(orders []types.Order, year int) []GroupTotal {
	var inYear []types.Order
	for _, o := range orders {
		if o.Year == year {
			inYear = append(inYear, o)
		}
	}

	views := totals(groupBy(inYear, func(o types.Order) string { return o.Quarter }))
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Key < views[j].Key
	})
	return views
}

// TopProducts returns the n products with the highest revenue.
// A non-positive n returns every product.
func TopProducts(orders []types.Order, n int) []GroupTotal {
	views := totals(groupBy(orders, func(o types.Order) string { return o.Product }))
	sortByRevenueDesc(views)

	if n > 0 && len(views) > n {
		views = views[:n]
	}
	return views
}

// ByRegion returns revenue per region, highest first.
func ByRegion(orders []types.Order) []GroupTotal {
	views := totals(groupBy(orders, func(o types.Order) string { return o.Region }))
	sortByRevenueDesc(views)
	return views
}

// =============================================================================
// SCALAR SUMMARY
// =============================================================================

// Summarize computes the order count, date span, total revenue and the
// number of distinct customers.
func Summarize(orders []types.Order) Summary {
	s := Summary{TotalOrders: len(orders)}

	customers := roaring.New()
	var revenue float64

	for _, o := range orders {
		revenue += o.TotalSales

		// YYYY-MM-DD compares correctly as a string.
		if s.FirstDate == "" || o.Date < s.FirstDate {
			s.FirstDate = o.Date
		}
		if o.Date > s.LastDate {
			s.LastDate = o.Date
		}

		if id, ok := customerNumber(o.CustomerID); ok {
			customers.Add(id)
		}
	}

	s.TotalRevenue = generator.Round2(revenue)
	s.DistinctCustomers = customers.GetCardinality()
	return s
}

// customerNumber extracts 42 from "CUST0042".
func customerNumber(id string) (uint32, bool) {
	digits, found := strings.CutPrefix(id, "CUST")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
