package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/AviranAbady/sales-api/internal/domain/model"
)

// The customer identity arrives in this header; authentication happened
// upstream of this service.
const customerHeader = "userId"

type OrderService interface {
	Create(ctx context.Context, cmd *model.CreateOrderCommand) (*model.Order, error)
	Get(ctx context.Context, orderID, customerID string) (*model.Order, []model.OrderItem, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.StatusUpdate, error)
}

type Handler struct {
	logger  *slog.Logger
	service OrderService
	tracer  trace.Tracer
}

func New(l *slog.Logger, service OrderService) *Handler {
	return &Handler{
		logger:  l,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/orders", h.create)
	r.Get("/api/orders/{id}", h.get)
	r.Patch("/api/orders/{id}", h.update)

	return r
}
