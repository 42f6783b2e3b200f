package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Broker is the slice of the queue backend the publisher needs.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// Publisher fans progress events out to the owning merchant's channel.
// Publication is best-effort: the durable workflow row has already been
// written by the time an event is emitted, so a lost event costs latency,
// not correctness.
type Publisher struct {
	broker Broker
	logger *slog.Logger
}

func NewPublisher(broker Broker, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{broker: broker, logger: logger}
}

// Publish stamps and emits the event. Errors are logged, never propagated.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to marshal progress event", "type", ev.Type, "workflow_id", ev.WorkflowID, "error", err)
		return
	}
	if err := p.broker.Publish(ctx, Channel(ev.MerchantID), body); err != nil {
		p.logger.Warn("failed to publish progress event",
			"type", ev.Type, "workflow_id", ev.WorkflowID, "merchant_id", ev.MerchantID, "error", err)
	}
}
