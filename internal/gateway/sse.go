// Package gateway is the merchant-facing HTTP surface: a Server-Sent Events
// stream of live workflow progress, a polling fallback for clients that
// cannot hold a stream open, and a health probe.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/queue"
)

const defaultHeartbeat = 15 * time.Second

// handleEvents serves GET /events?shop=<shop_domain>. Each connection gets
// its own subscription to the merchant's channel; closing the request body
// tears the subscription down. Events are ephemeral: a client that suspects
// a gap re-reads the workflow status endpoint instead of asking for replay.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	merchant, ok := s.resolveMerchant(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub, err := s.backend.Subscribe(r.Context(), events.Channel(merchant))
	if err != nil {
		s.logger.Error("subscribe failed", "merchant_id", merchant, "error", err)
		http.Error(w, "event stream unavailable", http.StatusServiceUnavailable)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	s.logger.Info("event stream opened", "merchant_id", merchant, "remote", r.RemoteAddr)
	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("event stream closed", "merchant_id", merchant)
			return
		case <-heartbeat.C:
			writeSSE(w, string(events.TypeHeartbeat), []byte(`{}`))
			flusher.Flush()
		case msg, open := <-sub.Messages():
			if !open {
				s.logger.Warn("event subscription ended", "merchant_id", merchant)
				return
			}
			var ev events.Event
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				s.logger.Warn("dropping malformed event", "merchant_id", merchant, "error", err)
				continue
			}
			writeSSE(w, string(ev.Type), msg.Payload)
			flusher.Flush()
		}
	}
}

// writeSSE frames one named event. Payloads are single-line JSON so the
// data field never needs splitting.
func writeSSE(w http.ResponseWriter, event string, data []byte) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
}

// resolveMerchant maps the shop query parameter to the merchant id, writing
// the HTTP error itself when resolution fails.
func (s *Server) resolveMerchant(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	shop := r.URL.Query().Get("shop")
	if shop == "" {
		http.Error(w, "missing shop parameter", http.StatusBadRequest)
		return uuid.Nil, false
	}
	merchant, err := s.merchants.GetByShopDomain(r.Context(), shop)
	if err != nil {
		http.Error(w, "unknown shop", http.StatusNotFound)
		return uuid.Nil, false
	}
	return merchant.ID, true
}

// Broker is the slice of the queue backend the gateway needs.
type Broker interface {
	Subscribe(ctx context.Context, channel string) (queue.Subscription, error)
}
