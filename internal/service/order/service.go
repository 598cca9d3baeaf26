package order

import (
	"context"
	"log/slog"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// Storage is the capability set both store variants implement. CreateOrder
// is the atomicity boundary: order row, line rows and the order-created
// event persist together or not at all.
type Storage interface {
	CreateOrder(ctx context.Context, customerID string, items []model.PricedItem) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
	UpdateOrder(ctx context.Context, id string, status model.OrderStatus) (*model.StatusUpdate, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]model.Product, error)
}

type AvailabilityChecker interface {
	Check(ctx context.Context, items []model.ItemRequest) (bool, error)
}

type Service struct {
	logger  *slog.Logger
	storage Storage
	checker AvailabilityChecker
}

func NewOrderService(l *slog.Logger, storage Storage, checker AvailabilityChecker) *Service {
	return &Service{
		logger:  l,
		storage: storage,
		checker: checker,
	}
}
