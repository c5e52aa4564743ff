package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/records/internal/records/domain"
	"github.com/aussiebroadwan/records/internal/records/events"
	"github.com/aussiebroadwan/records/internal/records/store"
	"github.com/aussiebroadwan/records/internal/records/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	topic string
	event any
}

// recordingPublisher captures published events in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{topic: topic, event: event})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.topic
	}
	return out
}

// countingStore wraps a store and counts calls into the records repository,
// so tests can prove validation happens before any database access.
type countingStore struct {
	store.Store
	calls int
}

func (c *countingStore) Records() store.Records {
	c.calls++
	return c.Store.Records()
}

func newTestService(t *testing.T) (*RecordService, *countingStore, *recordingPublisher) {
	t.Helper()

	db, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.ApplyMigrations())

	st := &countingStore{Store: db}
	pub := &recordingPublisher{}
	return &RecordService{Store: st, Events: pub, Timeout: 5 * time.Second}, st, pub
}

func TestCreateTrimsAndPublishes(t *testing.T) {
	svc, _, pub := newTestService(t)

	rec, err := svc.Create(context.Background(), "  Widget  ")
	require.NoError(t, err)
	require.Equal(t, "Widget", rec.Name)
	require.NotZero(t, rec.ID)
	require.False(t, rec.CreatedAt.IsZero())

	require.Equal(t, []string{events.TopicRecordCreated}, pub.topics())
}

func TestBlankNamesNeverReachTheStore(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		svc, st, pub := newTestService(t)

		_, err := svc.Create(ctx, name)
		require.ErrorIs(t, err, ErrInvalidName)

		_, err = svc.Update(ctx, 1, name)
		require.ErrorIs(t, err, ErrInvalidName)

		require.Zero(t, st.calls, "store touched for name %q", name)
		require.Empty(t, pub.topics())
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	svc, _, pub := newTestService(t)

	_, err := svc.Update(context.Background(), 404, "ghost")
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, pub.topics())
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)

	created, err := svc.Create(ctx, "X")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, "Y")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.Record{updated}, records)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	records, err = svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	// The second delete removed nothing, so only one deleted event
	require.Equal(t, []string{
		events.TopicRecordCreated,
		events.TopicRecordUpdated,
		events.TopicRecordDeleted,
	}, pub.topics())
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	svc, _, pub := newTestService(t)
	pub.err = errors.New("nats: connection closed")

	_, err := svc.Create(context.Background(), "Widget")
	require.NoError(t, err)
}

func TestNilPublisher(t *testing.T) {
	svc, _, _ := newTestService(t)
	svc.Events = nil

	_, err := svc.Create(context.Background(), "Widget")
	require.NoError(t, err)
}

func TestHealthCountsRecords(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	count, err := svc.Health(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = svc.Create(ctx, "Widget")
	require.NoError(t, err)

	count, err = svc.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, svc.Ping(ctx))
}

func TestStoreErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newTestService(t)

	// Closing the database makes every call fail with the driver's error
	require.NoError(t, st.Store.Close())

	_, err := svc.List(ctx)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidName)

	_, err = svc.Health(ctx)
	require.Error(t, err)
}

func TestNormaliseName(t *testing.T) {
	t.Parallel()

	name, err := normaliseName("  Gadget ")
	require.NoError(t, err)
	require.Equal(t, "Gadget", name)

	_, err = normaliseName(" ")
	require.ErrorIs(t, err, ErrInvalidName)
}
