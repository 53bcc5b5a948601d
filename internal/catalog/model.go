package catalog

// Category labels carried by products. "All" is not a real category; it is
// the selector value that disables category filtering.
const (
	CategoryAll         = "All"
	CategoryMen         = "Men"
	CategoryWomen       = "Women"
	CategoryUnisex      = "Unisex"
	CategoryAccessories = "Accessories"
)

// Categories lists the selectable categories in display order.
func Categories() []string {
	return []string{CategoryAll, CategoryMen, CategoryWomen, CategoryUnisex, CategoryAccessories}
}

// Product is a catalog record. Products are loaded once at startup and never
// mutated afterwards; prices are in the smallest currency unit.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Price       int64    `json:"price"`
	Sizes       []string `json:"sizes"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// HasSize reports whether label is one of the product's size options.
func (p *Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}

// Criteria is the active constraint set for a catalog view. MaxPrice <= 0
// means no price ceiling.
type Criteria struct {
	Category string
	MaxPrice int64
	Search   string
}
