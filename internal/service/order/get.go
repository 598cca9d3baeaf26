package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// Get returns the order and its lines when it exists and belongs to the
// requesting customer. A foreign customer's order reads as not found;
// existence is never revealed across customers.
func (s *Service) Get(ctx context.Context, orderID, customerID string) (*model.Order, []model.OrderItem, error) {
	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, nil, model.ErrOrderNotFound
		}
		s.logger.Error("order lookup failed",
			slog.String("order_id", orderID),
			slog.Any("error", err))
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	if order.CustomerID != customerID {
		return nil, nil, model.ErrOrderNotFound
	}

	items, err := s.storage.GetOrderItems(ctx, orderID)
	if err != nil {
		s.logger.Error("order items load failed",
			slog.String("order_id", orderID),
			slog.Any("error", err))
		return nil, nil, model.ErrItemsLoadFailed
	}

	return order, items, nil
}
