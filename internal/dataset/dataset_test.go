package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/calendar"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/catalog"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/generator"
	"github.com/Nivpatel23/ecommerce-sales-dashboard/internal/types"
)

const header = "Order_ID,Date,Year,Month,Month_Num,Quarter,Day_of_Week,Category,Product,Unit_Price,Quantity,Total_Sales,Customer_ID,Region,Age_Group,Gender,Payment_Method,Shipping_Method"

func sampleOrders(t *testing.T) []types.Order {
	t.Helper()
	start, err := calendar.Parse("2023-11-28")
	require.NoError(t, err)
	end, err := calendar.Parse("2023-12-02")
	require.NoError(t, err)
	days, err := calendar.Range(start, end)
	require.NoError(t, err)
	return generator.New(catalog.Default(), generator.DefaultSeed).Generate(days)
}

func TestWriteToLayout(t *testing.T) {
	orders := []types.Order{{
		OrderID: "ORD1000", Date: "2023-01-01", Year: 2023, Month: "January",
		MonthNum: 1, Quarter: "Q1", DayOfWeek: "Sunday", Category: "Home & Garden",
		Product: "Lamp", UnitPrice: 20, Quantity: 3, TotalSales: 60,
		CustomerID: "CUST0007", Region: "West", AgeGroup: "56+", Gender: "Other",
		PaymentMethod: "Gift Card", ShippingMethod: "Next Day",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, orders))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, header, lines[0])
	assert.Equal(t, "ORD1000,2023-01-01,2023,January,1,Q1,Sunday,Home & Garden,Lamp,20.00,3,60.00,CUST0007,West,56+,Other,Gift Card,Next Day", lines[1])
}

func TestWriteOverwritesAndReadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than nothing"), 0o644))

	orders := sampleOrders(t)
	require.NoError(t, Write(path, orders))

	back, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, orders, back)
}

func TestWriteEmptyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, nil))
	assert.Equal(t, header+"\n", buf.String())

	orders, err := ReadFrom(&buf)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestWriteFailsOnMissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.Error(t, err)
}

func TestReadRejectsWrongHeader(t *testing.T) {
	bad := strings.Replace(header, "Total_Sales", "Total", 1) + "\n"
	_, err := ReadFrom(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 12")
}

func TestReadRejectsBadNumber(t *testing.T) {
	content := header + "\n" +
		"ORD1000,2023-01-01,2023,January,1,Q1,Sunday,Books,Cookbook,abc,1,10.00,CUST0001,North,18-25,Male,PayPal,Standard\n"
	_, err := ReadFrom(strings.NewReader(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "Unit_Price")
}

func TestReadEmptyFile(t *testing.T) {
	_, err := ReadFrom(strings.NewReader(""))
	assert.Error(t, err)
}

func TestCheckHeaderShortRow(t *testing.T) {
	err := CheckHeader([]string{"Order_ID", "Date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 columns, want 18")

	assert.NoError(t, CheckHeader(strings.Split("\ufeff"+header, ",")))
}
