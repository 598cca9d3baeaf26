package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AviranAbady/sales-api/internal/domain/model"
	"github.com/AviranAbady/sales-api/internal/http/lib/api/response"
)

// writeError maps the service error taxonomy to HTTP statuses. Internal
// causes stay in the logs; callers get the stable error kinds only.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidItems):
		response.BadRequest(w, model.ErrInvalidItems.Error())
	case errors.Is(err, model.ErrItemsUnavailable):
		response.BadRequest(w, model.ErrItemsUnavailable.Error())
	case errors.Is(err, model.ErrOrderNotFound):
		response.NotFound(w, model.ErrOrderNotFound.Error())
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		response.InternalError(w)
	}
}
