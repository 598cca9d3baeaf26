package order

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/storage/memory"
)

type countingPublisher struct {
	err   error
	calls int
}

func (p *countingPublisher) Publish(context.Context, string, string, any) error {
	if p.err != nil {
		return p.err
	}
	p.calls++
	return nil
}

type stubChecker struct {
	available bool
	err       error
}

func (c *stubChecker) Check(context.Context, []model.ItemRequest) (bool, error) {
	return c.available, c.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(pub *countingPublisher, checker *stubChecker) (*Service, *memory.Storage) {
	storage := memory.NewStorage(pub, "order-created")
	storage.SeedProducts(
		model.Product{ID: "P1", Name: "Spark 1530", UnitPrice: 1000},
		model.Product{ID: "P2", Name: "2200 Appliance", UnitPrice: 2000},
		model.Product{ID: "P3", Name: "Zero Cost Sample", UnitPrice: 0},
	)
	return NewOrderService(testLogger(), storage, checker), storage
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	pub := &countingPublisher{}
	svc, _ := newTestService(pub, &stubChecker{available: true})

	order, err := svc.Create(ctx, &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingShipment, order.Status)
	assert.Equal(t, 1, pub.calls)

	got, items, err := svc.Get(ctx, order.ID, "cust-1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCreate_UnknownProduct(t *testing.T) {
	pub := &countingPublisher{}
	svc, _ := newTestService(pub, &stubChecker{available: true})

	_, err := svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []model.ItemRequest{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "no-such-product", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, model.ErrInvalidItems)
	// Validation failed before any write; no event may have gone out.
	assert.Zero(t, pub.calls)
}

func TestCreate_DuplicateProductIDsResolve(t *testing.T) {
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	// Two lines for the same product count as one distinct id during
	// catalog resolution.
	order, err := svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items: []model.ItemRequest{
			{ProductID: "P1", Quantity: 1},
			{ProductID: "P1", Quantity: 4},
		},
	})
	require.NoError(t, err)

	_, items, err := svc.Get(context.Background(), order.ID, "cust-1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCreate_ZeroPriceLine(t *testing.T) {
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	order, err := svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P3", Quantity: 1}},
	})
	require.NoError(t, err)

	_, items, err := svc.Get(context.Background(), order.ID, "cust-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(0), items[0].UnitPrice)
}

func TestCreate_ItemsUnavailable(t *testing.T) {
	pub := &countingPublisher{}
	svc, _ := newTestService(pub, &stubChecker{available: false})

	_, err := svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, model.ErrItemsUnavailable)
	assert.Zero(t, pub.calls)
}

func TestCreate_AvailabilityCheckError(t *testing.T) {
	pub := &countingPublisher{}
	svc, _ := newTestService(pub, &stubChecker{err: errors.New("warehouse unreachable")})

	_, err := svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, model.ErrOrderCreationFailed)
	assert.Zero(t, pub.calls)
}

func TestCreate_ItemCountBounds(t *testing.T) {
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	_, err := svc.Create(context.Background(), &model.CreateOrderCommand{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, model.ErrInvalidItems)

	oversized := make([]model.ItemRequest, 11)
	for i := range oversized {
		oversized[i] = model.ItemRequest{ProductID: "P1", Quantity: 1}
	}
	_, err = svc.Create(context.Background(), &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      oversized,
	})
	assert.ErrorIs(t, err, model.ErrInvalidItems)
}

func TestCreate_PublishFailureIsAtomic(t *testing.T) {
	ctx := context.Background()
	pub := &countingPublisher{err: errors.New("broker down")}
	svc, storage := newTestService(pub, &stubChecker{available: true})

	_, err := svc.Create(ctx, &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, model.ErrOrderCreationFailed)

	// A failed create leaves no trace: the store still resolves products
	// but holds no orders.
	products, err := storage.GetProductsByIDs(ctx, []string{"P1"})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestGet_ForeignCustomerReadsAsNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	order, err := svc.Create(ctx, &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 1}},
	})
	require.NoError(t, err)

	got, items, err := svc.Get(ctx, order.ID, "cust-2")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Nil(t, got)
	assert.Nil(t, items)
}

func TestGet_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	_, _, err := svc.Get(context.Background(), "missing", "cust-1")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	order, err := svc.Create(ctx, &model.CreateOrderCommand{
		CustomerID: "cust-1",
		Items:      []model.ItemRequest{{ProductID: "P1", Quantity: 1}},
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, order.ID, model.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, result.Status)

	// Backwards transitions are allowed.
	result, err = svc.UpdateStatus(ctx, order.ID, model.StatusPendingShipment)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPendingShipment, result.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _ := newTestService(&countingPublisher{}, &stubChecker{available: true})

	_, err := svc.UpdateStatus(context.Background(), "missing", model.StatusShipped)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}
