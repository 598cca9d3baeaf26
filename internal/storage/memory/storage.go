// Package memory implements the order store on process-local maps. It is
// selected by the storage.driver config and backs the unit tests; it keeps
// the same atomic create contract as the Postgres store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
}

type Storage struct {
	publisher EventPublisher
	topic     string

	mu       sync.RWMutex
	orders   map[string]model.Order
	items    map[string][]model.OrderItem
	products map[string]model.Product
}

func NewStorage(pub EventPublisher, topic string) *Storage {
	return &Storage{
		publisher: pub,
		topic:     topic,
		orders:    make(map[string]model.Order),
		items:     make(map[string][]model.OrderItem),
		products:  make(map[string]model.Product),
	}
}

// SeedProducts loads catalog reference data, overwriting existing entries.
func (s *Storage) SeedProducts(products ...model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.products[p.ID] = p
	}
}

// CreateOrder mirrors the durable store's contract: the order and its
// lines become visible only after the order-created event was published.
func (s *Storage) CreateOrder(ctx context.Context, customerID string, items []model.PricedItem) (*model.Order, error) {
	order := model.Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     model.StatusPendingShipment,
		CreatedAt:  time.Now().UTC(),
	}

	lines := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	event := model.OrderCreatedEvent{OrderID: order.ID}
	if err := s.publisher.Publish(ctx, s.topic, order.ID, event); err != nil {
		return nil, fmt.Errorf("publish order created: %w", err)
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.items[order.ID] = lines
	s.mu.Unlock()

	return &order, nil
}

func (s *Storage) GetOrder(_ context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return &order, nil
}

func (s *Storage) GetOrderItems(_ context.Context, orderID string) ([]model.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.OrderItem, len(s.items[orderID]))
	copy(items, s.items[orderID])
	return items, nil
}

func (s *Storage) UpdateOrder(_ context.Context, id string, status model.OrderStatus) (*model.StatusUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	order.Status = status
	s.orders[id] = order

	return &model.StatusUpdate{ID: id, Status: status}, nil
}

func (s *Storage) GetProductsByIDs(_ context.Context, ids []string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var products []model.Product
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}
