package order

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

const maxOrderItems = 10

// Create validates the requested items against the catalog and the
// warehouse, snapshots the current unit price per line and delegates to
// the store's atomic create. Validation failures happen before any write;
// once the store is involved, any failure comes back as a single opaque
// creation error.
func (s *Service) Create(ctx context.Context, cmd *model.CreateOrderCommand) (*model.Order, error) {
	// The boundary layer validates item count and shape; re-checked here
	// so the workflow holds on its own.
	if len(cmd.Items) == 0 || len(cmd.Items) > maxOrderItems {
		return nil, model.ErrInvalidItems
	}

	ids := distinctProductIDs(cmd.Items)

	products, err := s.storage.GetProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("catalog lookup failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: catalog lookup", model.ErrOrderCreationFailed)
	}
	if len(products) != len(ids) {
		return nil, model.ErrInvalidItems
	}

	available, err := s.checker.Check(ctx, cmd.Items)
	if err != nil {
		s.logger.Error("availability check failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: availability check", model.ErrOrderCreationFailed)
	}
	if !available {
		return nil, model.ErrItemsUnavailable
	}

	priceByID := make(map[string]int64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.UnitPrice
	}

	// Snapshot the current catalog price per line. Zero is a legitimate
	// price point, also used when the lookup has no entry for the id.
	priced := make([]model.PricedItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		priced = append(priced, model.PricedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: priceByID[item.ProductID],
		})
	}

	order, err := s.storage.CreateOrder(ctx, cmd.CustomerID, priced)
	if err != nil {
		s.logger.Error("atomic create failed",
			slog.String("customer_id", cmd.CustomerID),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: atomic create", model.ErrOrderCreationFailed)
	}

	s.logger.Info("order created",
		slog.String("id", order.ID),
		slog.String("customer_id", order.CustomerID),
		slog.Int("items", len(priced)))
	return order, nil
}

func distinctProductIDs(items []model.ItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
