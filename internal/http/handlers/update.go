package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/decode"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/response"
)

type updateRequest struct {
	Status model.OrderStatus `json:"status"`
}

// update is the internal status endpoint; it does not check ownership and
// accepts any transition between the known statuses.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateOrderStatus")
	defer span.End()

	var req updateRequest
	if err := decode.JSON(r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !model.ValidStatus(req.Status) {
		response.BadRequest(w, "invalid request body")
		return
	}

	orderID := chi.URLParam(r, "id")

	result, err := h.service.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.OK(w, result)
}
