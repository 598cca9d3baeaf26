package handlers

import (
	"net/http"

	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/decode"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/response"
)

type createRequest struct {
	Items []model.ItemRequest `json:"items"`
}

type createResponse struct {
	OrderID string            `json:"orderId"`
	Status  model.OrderStatus `json:"status"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	customerID := r.Header.Get(customerHeader)
	if customerID == "" {
		response.Unauthorized(w, "missing userId header")
		return
	}

	var req createRequest
	if err := decode.JSON(r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validCreateRequest(req) {
		response.BadRequest(w, "invalid request body")
		return
	}

	order, err := h.service.Create(ctx, &model.CreateOrderCommand{
		CustomerID: customerID,
		Items:      req.Items,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Created(w, createResponse{
		OrderID: order.ID,
		Status:  order.Status,
	})
}

func validCreateRequest(req createRequest) bool {
	if len(req.Items) < 1 || len(req.Items) > 10 {
		return false
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return false
		}
	}
	return true
}
