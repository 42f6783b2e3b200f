package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingBroker struct {
	channel string
	payload []byte
	err     error
}

func (b *recordingBroker) Publish(_ context.Context, channel string, payload []byte) error {
	b.channel = channel
	b.payload = payload
	return b.err
}

func TestPublisherStampsAndRoutes(t *testing.T) {
	broker := &recordingBroker{}
	pub := NewPublisher(broker, nil)
	merchant := uuid.New()

	pub.Publish(context.Background(), Event{
		Type:       TypeProgress,
		WorkflowID: uuid.New(),
		MerchantID: merchant,
		Percent:    66,
	})

	if broker.channel != Channel(merchant) {
		t.Errorf("channel = %q, want %q", broker.channel, Channel(merchant))
	}
	var got Event
	if err := json.Unmarshal(broker.payload, &got); err != nil {
		t.Fatalf("unmarshal published event: %v", err)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
	if got.Percent != 66 {
		t.Errorf("percent = %d, want 66", got.Percent)
	}
}

func TestPublisherKeepsCallerTimestamp(t *testing.T) {
	broker := &recordingBroker{}
	pub := NewPublisher(broker, nil)
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	pub.Publish(context.Background(), Event{
		Type:       TypeCompletion,
		MerchantID: uuid.New(),
		Timestamp:  at,
	})

	var got Event
	if err := json.Unmarshal(broker.payload, &got); err != nil {
		t.Fatalf("unmarshal published event: %v", err)
	}
	if !got.Timestamp.Equal(at) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, at)
	}
}

func TestPublisherSwallowsBrokerErrors(t *testing.T) {
	broker := &recordingBroker{err: errors.New("backend down")}
	pub := NewPublisher(broker, nil)

	// must not panic or propagate
	pub.Publish(context.Background(), Event{Type: TypeError, MerchantID: uuid.New()})
}
