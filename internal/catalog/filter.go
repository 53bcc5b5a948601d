package catalog

import "strings"

// Filter returns the products matching criteria, preserving input order.
// Category "All" (or empty) disables the category check; an empty search term
// matches everything; the name match is a case-insensitive substring test.
// The input slice is never modified.
func Filter(products []Product, c Criteria) []Product {
	search := strings.ToLower(c.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
			continue
		}
		if c.MaxPrice > 0 && p.Price > c.MaxPrice {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ResolveCategory maps a clicked category label to the category actually
// filtered on. "New Arrivals" and "Sale" are marketing entries with no
// arrival-date or discount data behind them, so both resolve to "All" and
// show the full collection; every other label passes through verbatim.
func ResolveCategory(label string) string {
	switch label {
	case "New Arrivals", "Sale":
		return CategoryAll
	default:
		return label
	}
}
