package workbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

func testOrders() []types.Order {
	return []types.Order{
		{
			OrderID: "ORD1000", Date: "2024-02-01", Year: 2024, Month: "February", MonthNum: 2,
			Quarter: "Q1", DayOfWeek: "Thursday", Category: "Books", Product: "Cookbook",
			UnitPrice: 15, Quantity: 2, TotalSales: 30, CustomerID: "CUST0001",
			Region: "North", AgeGroup: "18-25", Gender: "Male", PaymentMethod: "PayPal",
			ShippingMethod: "Standard",
		},
		{
			OrderID: "ORD1001", Date: "2024-02-01", Year: 2024, Month: "February", MonthNum: 2,
			Quarter: "Q1", DayOfWeek: "Thursday", Category: "Electronics", Product: "Laptop",
			UnitPrice: 500, Quantity: 1, TotalSales: 500, CustomerID: "CUST0002",
			Region: "South", AgeGroup: "26-35", Gender: "Female", PaymentMethod: "Credit Card",
			ShippingMethod: "Express",
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	require.NoError(t, Write(path, testOrders(), Options{RunID: "run-1", Year: 2024, TopProducts: 5}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{OrdersSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(OrdersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, types.Columns, rows[0])
	assert.Equal(t, "ORD1000", rows[1][0])
	assert.Equal(t, "Laptop", rows[2][8])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	assert.Equal(t, []string{"Total Orders", "2"}, summary[0])
	assert.Equal(t, []string{"Sales by Category"}, summary[6])
	assert.Equal(t, "Electronics", summary[8][0])
	assert.Equal(t, "Books", summary[9][0])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "run-1", props.Identifier)
}

func TestWriteWorkbookBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "sales.xlsx"), testOrders(), Options{Year: 2024})
	assert.Error(t, err)
}

func TestReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.xlsx")
	orders := testOrders()
	orders[0].UnitPrice, orders[0].TotalSales = 15.25, 30.5
	require.NoError(t, Write(path, orders, Options{RunID: "run-1"}))

	back, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, orders, back)
}

func TestReadRejectsForeignWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), OrdersSheet))
	require.NoError(t, f.SetSheetRow(OrdersSheet, "A1", &[]interface{}{"Something", "Else"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := Read(path)
	assert.Error(t, err)
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, IsWorkbook("out/Sales.XLSX"))
	assert.False(t, IsWorkbook("sales.csv"))
	assert.False(t, IsWorkbook("xlsx"))
}
