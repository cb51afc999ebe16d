package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/relaykit/relay/internal/api/middleware"
	"github.com/relaykit/relay/internal/dispatch"
	"github.com/relaykit/relay/internal/domain"
)

// MessageHandler handles message dispatch endpoints.
type MessageHandler struct {
	d      *dispatch.Dispatcher
	logger *zap.Logger
}

func NewMessageHandler(d *dispatch.Dispatcher, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{d: d, logger: logger}
}

// Dispatch handles POST /api/v1/messages
//
// @Summary     Dispatch a message
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       body  body      domain.DispatchRequest  true  "Dispatch payload"
// @Success     201   {object}  domain.Delivery
// @Failure     422   {object}  map[string]string
// @Failure     502   {object}  map[string]string
// @Router      /api/v1/messages [post]
func (h *MessageHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req domain.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	delivery, err := h.d.Dispatch(r.Context(), req)
	if err != nil {
		h.logger.Warn("dispatch failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, delivery)
}

// Catalog handles GET /api/v1/catalog
//
// @Summary  List valid categories and registered delivery media
// @Tags     messages
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api/v1/catalog [get]
func (h *MessageHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	categories, media := h.d.Catalog()
	respondJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"media":      media,
	})
}
