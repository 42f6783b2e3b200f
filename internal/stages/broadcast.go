package stages

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/orderflow/internal/events"
)

// EventPublisher is the slice of the progress publisher the broadcast stage
// needs.
type EventPublisher interface {
	Publish(ctx context.Context, ev events.Event)
}

// ChannelBroadcaster pushes the status broadcast stage's notification onto
// the merchant's event channel.
type ChannelBroadcaster struct {
	publisher EventPublisher
}

func NewChannelBroadcaster(publisher EventPublisher) *ChannelBroadcaster {
	return &ChannelBroadcaster{publisher: publisher}
}

func (b *ChannelBroadcaster) Broadcast(ctx context.Context, merchantID uuid.UUID, p BroadcastPayload) error {
	b.publisher.Publish(ctx, events.Event{
		Type:       events.TypeProgress,
		MerchantID: merchantID,
		DocumentID: p.DocumentID,
		Message:    p.Message,
	})
	return nil
}
