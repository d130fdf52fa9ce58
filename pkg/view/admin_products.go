package view

// AdminProductRow summarizes a product for the list table; variants and
// images are only expanded on the detail page.
type AdminProductRow struct {
	ID         int
	Name       string
	Category   string
	IsActive   bool
	Variants   int
	PriceRange string // "$9.50 - $24.00" or a single price
}

type AdminVariantImage struct {
	ID     int
	URL    string
	IsMain bool
}

type AdminVariant struct {
	ID     int
	Name   string
	Price  string
	Stock  int
	Images []AdminVariantImage
}

type AdminProductDetail struct {
	ID          int
	Name        string
	Description string
	CategoryID  int
	IsActive    bool
	Variants    []AdminVariant
}
