package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// CreateOrder persists a new order with its lines and publishes the
// order-created event as one unit. The publish happens before commit;
// a failed publish discards the inserted rows, so no order is ever
// visible without its event having been delivered.
func (s *Storage) CreateOrder(ctx context.Context, customerID string, items []model.PricedItem) (*model.Order, error) {
	order := &model.Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     model.StatusPendingShipment,
		CreatedAt:  time.Now().UTC(),
	}

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.insertOrder(ctx, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		for _, item := range items {
			if err := s.insertOrderItem(ctx, order.ID, item); err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		event := model.OrderCreatedEvent{OrderID: order.ID}
		if err := s.publisher.Publish(ctx, s.topic, order.ID, event); err != nil {
			return fmt.Errorf("publish order created: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("order creation rolled back",
			slog.String("order_id", order.ID),
			slog.Any("error", err))
		return nil, err
	}

	return order, nil
}

func (s *Storage) insertOrder(ctx context.Context, o *model.Order) error {
	query := `INSERT INTO orders (id, customer_id, status, created_at)
              VALUES ($1, $2, $3, $4)`

	_, err := s.conn(ctx).Exec(ctx, query, o.ID, o.CustomerID, o.Status, o.CreatedAt)
	return err
}

func (s *Storage) insertOrderItem(ctx context.Context, orderID string, item model.PricedItem) error {
	query := `INSERT INTO order_items (id, order_id, product_id, quantity, unit_price)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.conn(ctx).Exec(ctx, query,
		uuid.New().String(), orderID, item.ProductID, item.Quantity, item.UnitPrice)
	return err
}

func (s *Storage) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	// The id column is UUID-typed; a malformed identifier reads as absent,
	// not as a cast error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrOrderNotFound
	}

	query := `SELECT id, customer_id, status, created_at
              FROM orders
              WHERE id = $1`

	var o model.Order
	err := s.conn(ctx).QueryRow(ctx, query, id).
		Scan(&o.ID, &o.CustomerID, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (s *Storage) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	query := `SELECT id, order_id, product_id, quantity, unit_price
              FROM order_items
              WHERE order_id = $1`

	rows, err := s.conn(ctx).Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		if err = rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

// UpdateOrder overwrites the order status. Transitions are not validated
// in sequence; this backs an internal administrative operation.
func (s *Storage) UpdateOrder(ctx context.Context, id string, status model.OrderStatus) (*model.StatusUpdate, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, model.ErrOrderNotFound
	}

	query := `UPDATE orders
              SET status = $2
              WHERE id = $1`

	tag, err := s.conn(ctx).Exec(ctx, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrOrderNotFound
	}

	return &model.StatusUpdate{ID: id, Status: status}, nil
}
