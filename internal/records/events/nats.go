package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/aussiebroadwan/records/pkg/idx"
	"github.com/aussiebroadwan/records/pkg/slogx"
)

// Message headers set on every published event.
const (
	HeaderEventID   = nats.MsgIdHdr
	HeaderRequestID = "Records-Request-Id"
)

// NATSPublisher publishes JSON-encoded events to NATS subjects.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string, opts ...nats.Option) (*NATSPublisher, error) {
	defaults := []nats.Option{
		nats.Name("records-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{conn: nc}, nil
}

// Publish sends event on topic. Each message carries a ULID in the
// Nats-Msg-Id header, plus the originating request id when one is known.
func (p *NATSPublisher) Publish(ctx context.Context, topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	msg := nats.NewMsg(topic)
	msg.Data = data
	msg.Header.Set(HeaderEventID, idx.New().String())
	if reqID := slogx.RequestIDFromContext(ctx); reqID != "" {
		msg.Header.Set(HeaderRequestID, reqID)
	}

	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publishing %s: %w", topic, err)
	}
	return nil
}

// Close flushes buffered messages and closes the connection.
func (p *NATSPublisher) Close() error {
	err := p.conn.Flush()
	p.conn.Close()
	return err
}
