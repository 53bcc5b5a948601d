package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

// Repository is a read-only product source. The catalog is loaded once at
// startup; implementations are never asked to write.
type Repository interface {
	LoadAll(ctx context.Context) ([]Product, error)
}

type pgRepository struct {
	db *sql.DB
}

func NewPgRepository(db *sql.DB) Repository {
	return &pgRepository{db: db}
}

func (r *pgRepository) LoadAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, brand, category, price, sizes, rating, reviews, description, tags
		FROM products
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Brand,
			&p.Category,
			&p.Price,
			pq.Array(&p.Sizes),
			&p.Rating,
			&p.Reviews,
			&p.Description,
			pq.Array(&p.Tags),
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
