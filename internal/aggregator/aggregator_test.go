package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/calendar"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

func order(category, product, region, date string, year int, quarter string, total float64) types.Order {
	return types.Order{
		Category:   category,
		Product:    product,
		Region:     region,
		Date:       date,
		Year:       year,
		Quarter:    quarter,
		TotalSales: total,
		CustomerID: "CUST0001",
	}
}

func TestByCategoryThreeRecords(t *testing.T) {
	orders := []types.Order{
		order("Books", "Cookbook", "North", "2024-01-01", 2024, "Q1", 10),
		order("Electronics", "Laptop", "South", "2024-01-02", 2024, "Q1", 500),
		order("Books", "Biography", "North", "2024-01-03", 2024, "Q1", 20),
	}

	stats := ByCategory(orders)
	require.Len(t, stats, 2)
	assert.Equal(t, CategoryStat{Category: "Electronics", Revenue: 500, Orders: 1}, stats[0])
	assert.Equal(t, CategoryStat{Category: "Books", Revenue: 30, Orders: 2}, stats[1])
}

func TestCategoryRevenuePartitionsTotal(t *testing.T) {
	days, err := calendar.DefaultWindow().Days()
	require.NoError(t, err)
	orders := generator.New(catalog.Default(), generator.DefaultSeed).Generate(days)

	var byCategory float64
	count := 0
	for _, s := range ByCategory(orders) {
		byCategory += s.Revenue
		count += s.Orders
	}

	summary := Summarize(orders)
	assert.Equal(t, len(orders), count)
	// Each group is rounded once, so allow a cent per group.
	assert.InDelta(t, summary.TotalRevenue, byCategory, 0.05)
}

func TestTiesKeepFirstSeenOrder(t *testing.T) {
	orders := []types.Order{
		order("Sports", "Yoga Mat", "East", "2024-01-01", 2024, "Q1", 50),
		order("Clothing", "Jeans", "West", "2024-01-01", 2024, "Q1", 50),
		order("Books", "Cookbook", "North", "2024-01-01", 2024, "Q1", 80),
	}

	regions := ByRegion(orders)
	require.Len(t, regions, 3)
	assert.Equal(t, []string{"North", "East", "West"}, keys(regions))
}

func TestRoundingAfterSum(t *testing.T) {
	orders := []types.Order{
		order("Books", "Cookbook", "North", "2024-01-01", 2024, "Q1", 0.004),
		order("Books", "Cookbook", "North", "2024-01-01", 2024, "Q1", 0.004),
	}

	// Per-record rounding would give 0.00.
	assert.Equal(t, 0.01, ByCategory(orders)[0].Revenue)
}

func TestQuarterlyRevenueFiltersYear(t *testing.T) {
	orders := []types.Order{
		order("Books", "Cookbook", "North", "2023-11-01", 2023, "Q4", 999),
		order("Books", "Cookbook", "North", "2024-10-01", 2024, "Q4", 40),
		order("Books", "Cookbook", "North", "2024-02-01", 2024, "Q1", 10),
		order("Books", "Cookbook", "North", "2024-05-01", 2024, "Q2", 25.5),
		order("Books", "Cookbook", "North", "2024-11-01", 2024, "Q4", 2),
	}

	q := QuarterlyRevenue(orders, 2024)
	assert.Equal(t, []GroupTotal{
		{Key: "Q1", Revenue: 10},
		{Key: "Q2", Revenue: 25.5},
		{Key: "Q4", Revenue: 42},
	}, q)

	assert.Empty(t, QuarterlyRevenue(orders, 2022))
}

func TestTopProductsLimit(t *testing.T) {
	orders := []types.Order{
		order("Books", "A", "North", "2024-01-01", 2024, "Q1", 1),
		order("Books", "B", "North", "2024-01-01", 2024, "Q1", 6),
		order("Books", "C", "North", "2024-01-01", 2024, "Q1", 3),
		order("Books", "B", "North", "2024-01-01", 2024, "Q1", 1),
		order("Books", "D", "North", "2024-01-01", 2024, "Q1", 4),
		order("Books", "E", "North", "2024-01-01", 2024, "Q1", 5),
		order("Books", "F", "North", "2024-01-01", 2024, "Q1", 2),
	}

	top := TopProducts(orders, 5)
	assert.Equal(t, []string{"B", "E", "D", "C", "F"}, keys(top))
	assert.Equal(t, 7.0, top[0].Revenue)

	assert.Len(t, TopProducts(orders, 0), 6)
}

func TestSummarize(t *testing.T) {
	orders := []types.Order{
		order("Books", "A", "North", "2024-03-01", 2024, "Q1", 10.006),
		order("Books", "A", "North", "2023-02-01", 2023, "Q1", 20),
		order("Books", "A", "North", "2024-12-31", 2024, "Q4", 30),
	}
	orders[1].CustomerID = "CUST0002"

	s := Summarize(orders)
	assert.Equal(t, 3, s.TotalOrders)
	assert.Equal(t, "2023-02-01", s.FirstDate)
	assert.Equal(t, "2024-12-31", s.LastDate)
	assert.Equal(t, 60.01, s.TotalRevenue)
	assert.Equal(t, uint64(2), s.DistinctCustomers)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalOrders)
	assert.Empty(t, s.FirstDate)
	assert.Zero(t, s.DistinctCustomers)
}

func TestCustomerNumber(t *testing.T) {
	n, ok := customerNumber("CUST0420")
	assert.True(t, ok)
	assert.Equal(t, uint32(420), n)

	_, ok = customerNumber("C-1")
	assert.False(t, ok)
}

func keys(views []GroupTotal) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.Key
	}
	return out
}
