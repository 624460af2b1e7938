// File: internal/infra/web/handlers.go
package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"mnogo-rolly-bot/internal/domain"
	"mnogo-rolly-bot/internal/domain/model"
	"mnogo-rolly-bot/internal/infra/logging"
	"mnogo-rolly-bot/internal/infra/metrics"
	sentryutil "mnogo-rolly-bot/internal/infra/sentry"
)

// webhookResponse is the fixed acknowledgement shape for every webhook route.
type webhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	msgNoPayload = "Данные заказа не получены"
	msgAccepted  = "Уведомление отправлено"
	msgInternal  = "Внутренняя ошибка сервера"
)

func writeJSON(w http.ResponseWriter, route string, code int, status, message string) {
	metrics.IncWebhookRequest(route, code)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(webhookResponse{Status: status, Message: message})
}

// handleNewOrder accepts the storefront's new-order event and relays it to
// the admin group. The backend never retries, so a dispatch failure is logged
// and acknowledged rather than bounced back.
func (s *Server) handleNewOrder(w http.ResponseWriter, r *http.Request) {
	const route = "new_order"
	l := logging.With(r.Context(), s.log)

	var payload model.NewOrder
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		l.Warn().Err(err).Msg("malformed new-order payload")
		writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
		return
	}
	if payload.Empty() {
		writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
		return
	}

	if err := s.relay.HandleNewOrder(r.Context(), payload); err != nil {
		if errors.Is(err, domain.ErrEmptyPayload) {
			writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
			return
		}
		l.Error().Err(err).Int64("order_id", payload.ID).Msg("new-order dispatch failed")
		sentryutil.CaptureError(err, map[string]string{"route": route})
	}
	writeJSON(w, route, http.StatusOK, "success", msgAccepted)
}

// handleStatusChange accepts a status transition event. Same acknowledgement
// semantics as new-order.
func (s *Server) handleStatusChange(w http.ResponseWriter, r *http.Request) {
	const route = "status_change"
	l := logging.With(r.Context(), s.log)

	var ev model.StatusChange
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		l.Warn().Err(err).Msg("malformed status-change payload")
		writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
		return
	}
	if ev.Empty() {
		writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
		return
	}

	if err := s.relay.HandleStatusChange(r.Context(), ev); err != nil {
		if errors.Is(err, domain.ErrEmptyPayload) {
			writeJSON(w, route, http.StatusBadRequest, "error", msgNoPayload)
			return
		}
		l.Error().Err(err).Int64("order_id", ev.OrderID).Msg("status-change dispatch failed")
		sentryutil.CaptureError(err, map[string]string{"route": route})
	}
	writeJSON(w, route, http.StatusOK, "success", msgAccepted)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(webhookResponse{Status: "ok", Message: "alive"})
}
