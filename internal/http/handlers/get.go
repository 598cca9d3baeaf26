package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/response"
)

type getResponse struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	customerID := r.Header.Get(customerHeader)
	if customerID == "" {
		response.Unauthorized(w, "missing userId header")
		return
	}

	orderID := chi.URLParam(r, "id")

	order, items, err := h.service.Get(ctx, orderID, customerID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, getResponse{Order: *order, Items: items})
}
