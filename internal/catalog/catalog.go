// =============================================================================
// Sales Dataset Generator - Category Catalog
// =============================================================================
//
// The catalog is the static lookup table the generator draws from: five
// product categories, each with five products and a unit price range, plus
// the fixed customer and fulfilment domains.
//
// The tables are built once and never modified. Slice order matters: the
// generator draws by index, so reordering an entry changes the output for
// a given seed.
//
// =============================================================================

package catalog

// =============================================================================
// CATEGORY STRUCTURE
// =============================================================================

// PriceRange is an inclusive unit price interval.
type PriceRange struct {
	Min float64
	Max float64
}

// Contains reports whether p lies within the range, ends included.
func (r PriceRange) Contains(p float64) bool {
	return p >= r.Min && p <= r.Max
}

// Category is one product category and its price policy.
type Category struct {
	Name     string
	Products []string
	Price    PriceRange
}

// HasProduct reports whether product belongs to the category.
func (c Category) HasProduct(product string) bool {
	for _, p := range c.Products {
		if p == product {
			return true
		}
	}
	return false
}

// =============================================================================
// CATALOG STRUCTURE
// =============================================================================

// Catalog holds the categories and every fixed attribute domain.
type Catalog struct {
	Categories      []Category
	Regions         []string
	AgeGroups       []string
	Genders         []string
	PaymentMethods  []string
	ShippingMethods []string

	// MaxCustomerID bounds the customer pool (CUST0001..CUST0500).
	MaxCustomerID int

	index map[string]int
}

var defaultCatalog = newCatalog(
	[]Category{
		{
			Name:     "Electronics",
			Products: []string{"Wireless Headphones", "Smart Watch", "Laptop", "Tablet", "Bluetooth Speaker"},
			Price:    PriceRange{Min: 50, Max: 1200},
		},
		{
			Name:     "Clothing",
			Products: []string{"T-Shirt", "Jeans", "Jacket", "Sneakers", "Dress"},
			Price:    PriceRange{Min: 15, Max: 150},
		},
		{
			Name:     "Home & Garden",
			Products: []string{"Coffee Maker", "Vacuum Cleaner", "Bed Sheets", "Garden Tools", "Lamp"},
			Price:    PriceRange{Min: 20, Max: 300},
		},
		{
			Name:     "Sports",
			Products: []string{"Yoga Mat", "Dumbbells", "Running Shoes", "Fitness Tracker", "Bicycle"},
			Price:    PriceRange{Min: 25, Max: 500},
		},
		{
			Name:     "Books",
			Products: []string{"Fiction Novel", "Cookbook", "Self-Help Book", "Biography", "Science Book"},
			Price:    PriceRange{Min: 10, Max: 40},
		},
	},
)

func newCatalog(categories []Category) *Catalog {
	c := &Catalog{
		Categories:      categories,
		Regions:         []string{"North", "South", "East", "West", "Central"},
		AgeGroups:       []string{"18-25", "26-35", "36-45", "46-55", "56+"},
		Genders:         []string{"Male", "Female", "Other"},
		PaymentMethods:  []string{"Credit Card", "PayPal", "Debit Card", "Gift Card"},
		ShippingMethods: []string{"Standard", "Express", "Next Day"},
		MaxCustomerID:   500,
		index:           make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		c.index[cat.Name] = i
	}
	return c
}

// Default returns the shared read-only catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Category looks up a category by name.
func (c *Catalog) Category(name string) (Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return c.Categories[i], true
}

// Names returns the category names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}
