package order

import (
	"context"
	"log/slog"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// UpdateStatus overwrites the order's shipment status. Any transition
// between the known statuses is allowed, backwards included; this is an
// internal administrative operation and does not enforce ordering.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.StatusUpdate, error) {
	result, err := s.storage.UpdateOrder(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		slog.String("id", result.ID),
		slog.String("status", string(result.Status)))
	return result, nil
}
