package pg

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// GetProductsByIDs resolves catalog entries for the given ids. Unknown ids
// are simply absent from the result; the caller compares counts.
func (s *Storage) GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	// Drop malformed ids instead of letting the UUID cast fail; an absent
	// result is how unknown products are reported.
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}

	query := `SELECT id, name, unit_price
              FROM products
              WHERE id = ANY($1)`

	rows, err := s.conn(ctx).Query(ctx, query, valid)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err = rows.Scan(&p.ID, &p.Name, &p.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}
