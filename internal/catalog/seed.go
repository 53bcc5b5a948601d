package catalog

import "context"

// seedProducts is the built-in collection used when no database is
// configured. Prices are in rupiah.
var seedProducts = []Product{
	{
		ID:          1,
		Name:        "Royal Oxford Shirt",
		Brand:       "RSA Atelier",
		Category:    CategoryMen,
		Price:       1250000,
		Sizes:       []string{"S", "M", "L", "XL"},
		Rating:      4.8,
		Reviews:     124,
		Description: "Premium cotton oxford shirt with mother of pearl buttons. Perfect for formal and semi-formal occasions.",
		Tags:        []string{"Bestseller", "Premium"},
	},
	{
		ID:          2,
		Name:        "Silk Evening Dress",
		Brand:       "RSA Couture",
		Category:    CategoryWomen,
		Price:       3500000,
		Sizes:       []string{"XS", "S", "M", "L"},
		Rating:      4.9,
		Reviews:     89,
		Description: "Elegant silk evening dress with hand-embroidered details. Flowing silhouette for the modern woman.",
		Tags:        []string{"New Arrival", "Limited"},
	},
	{
		ID:          3,
		Name:        "Tailored Wool Blazer",
		Brand:       "RSA Atelier",
		Category:    CategoryMen,
		Price:       2800000,
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Rating:      4.7,
		Reviews:     56,
		Description: "Italian wool blazer with structured shoulders. The epitome of masculine elegance.",
		Tags:        []string{"Premium"},
	},
	{
		ID:          4,
		Name:        "Cashmere Turtleneck",
		Brand:       "RSA Basics",
		Category:    CategoryUnisex,
		Price:       1800000,
		Sizes:       []string{"S", "M", "L", "XL"},
		Rating:      4.9,
		Reviews:     203,
		Description: "Mongolian cashmere turtleneck. Unparalleled softness and warmth for the discerning individual.",
		Tags:        []string{"Bestseller"},
	},
	{
		ID:          5,
		Name:        "Leather Crossbody Bag",
		Brand:       "RSA Accessories",
		Category:    CategoryWomen,
		Price:       2100000,
		Sizes:       []string{"One Size"},
		Rating:      4.6,
		Reviews:     78,
		Description: "Full-grain Italian leather bag with gold-tone hardware. Compact yet spacious.",
		Tags:        []string{"Accessory"},
	},
	{
		ID:          6,
		Name:        "Linen Summer Suit",
		Brand:       "RSA Atelier",
		Category:    CategoryMen,
		Price:       4200000,
		Sizes:       []string{"M", "L", "XL"},
		Rating:      4.8,
		Reviews:     45,
		Description: "Breathable Irish linen suit. Perfect for tropical climates and summer weddings.",
		Tags:        []string{"Seasonal"},
	},
	{
		ID:          7,
		Name:        "Silk Twill Scarf",
		Brand:       "RSA Accessories",
		Category:    CategoryAccessories,
		Price:       950000,
		Sizes:       []string{"One Size"},
		Rating:      4.5,
		Reviews:     61,
		Description: "Hand-rolled silk twill scarf with a signature archive print.",
		Tags:        []string{"New Arrival", "Accessory"},
	},
	{
		ID:          8,
		Name:        "Leather Belt",
		Brand:       "RSA Accessories",
		Category:    CategoryAccessories,
		Price:       780000,
		Sizes:       []string{"85", "90", "95", "100"},
		Rating:      4.7,
		Reviews:     132,
		Description: "Vegetable-tanned leather belt with a brushed brass buckle.",
		Tags:        []string{"Bestseller", "Accessory"},
	},
}

// SeedRepository serves the built-in product collection.
type SeedRepository struct{}

func NewSeedRepository() *SeedRepository {
	return &SeedRepository{}
}

func (r *SeedRepository) LoadAll(_ context.Context) ([]Product, error) {
	out := make([]Product, len(seedProducts))
	copy(out, seedProducts)
	return out, nil
}
