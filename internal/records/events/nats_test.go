package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/records/pkg/idx"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
	"github.com/aussiebroadwan/records/pkg/slogx"
)

// startTestNATS starts an embedded NATS server and returns its client URL.
func startTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

func TestNATSPublisherDeliversJSON(t *testing.T) {
	url := startTestNATS(t)

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	defer sub.Close()

	msgs := make(chan *nats.Msg, 1)
	s, err := sub.ChanSubscribe("records.>", msgs)
	require.NoError(t, err)
	defer func() { _ = s.Unsubscribe() }()
	require.NoError(t, sub.Flush())

	pub, err := NewNATSPublisher(url)
	require.NoError(t, err)

	ctx := slogx.WithRequestID(context.Background(), "req-123")
	event := RecordCreated{Record: recordsdk.Record{ID: 1, Name: "Widget"}}
	require.NoError(t, pub.Publish(ctx, TopicRecordCreated, event))
	require.NoError(t, pub.Close())

	select {
	case msg := <-msgs:
		require.Equal(t, TopicRecordCreated, msg.Subject)
		require.Equal(t, "req-123", msg.Header.Get(HeaderRequestID))

		_, err := idx.Parse(msg.Header.Get(HeaderEventID))
		require.NoError(t, err, "event id should be a ULID")

		var got RecordCreated
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		require.Equal(t, int64(1), got.Record.ID)
		require.Equal(t, "Widget", got.Record.Name)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestNewNATSPublisherUnreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1", nats.NoReconnect(), nats.Timeout(200*time.Millisecond))
	require.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = &NoopPublisher{}
	require.NoError(t, p.Publish(context.Background(), TopicRecordDeleted, RecordDeleted{RecordID: 1}))
	require.NoError(t, p.Close())
}
