package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aussiebroadwan/records/internal/records/domain"
	"github.com/aussiebroadwan/records/internal/records/events"
	"github.com/aussiebroadwan/records/internal/records/store"
	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type recordInput struct {
	Name string `validate:"required"`
}

// RecordService brokers CRUD calls on the records collection. It adds nothing
// on top of the store beyond the name check, an optional per-call timeout and
// change events.
type RecordService struct {
	Store  store.Store
	Events events.Publisher
	Logger *slog.Logger

	// Timeout bounds each store call. Zero leaves calls unbounded.
	Timeout time.Duration
}

// List returns every record ordered by id ascending.
func (s *RecordService) List(ctx context.Context) ([]domain.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.Store.Records().ListRecords(ctx)
}

// Create validates the name and inserts a new record.
func (s *RecordService) Create(ctx context.Context, name string) (domain.Record, error) {
	name, err := normaliseName(name)
	if err != nil {
		return domain.Record{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.Store.Records().CreateRecord(ctx, name)
	if err != nil {
		return domain.Record{}, err
	}

	s.publish(ctx, events.TopicRecordCreated, events.RecordCreated{Record: ToWire(rec)})
	return rec, nil
}

// Update validates the name and renames the record with the given id.
func (s *RecordService) Update(ctx context.Context, id int64, name string) (domain.Record, error) {
	name, err := normaliseName(name)
	if err != nil {
		return domain.Record{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.Store.Records().UpdateRecordName(ctx, id, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Record{}, ErrNotFound
	}
	if err != nil {
		return domain.Record{}, err
	}

	s.publish(ctx, events.TopicRecordUpdated, events.RecordUpdated{Record: ToWire(rec)})
	return rec, nil
}

// Delete removes the record with the given id. Deleting a missing id succeeds.
func (s *RecordService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	removed, err := s.Store.Records().DeleteRecord(ctx, id)
	if err != nil {
		return err
	}

	if removed {
		s.publish(ctx, events.TopicRecordDeleted, events.RecordDeleted{RecordID: id})
	}
	return nil
}

// Health runs a query against the records table and returns the row count.
func (s *RecordService) Health(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.Store.Records().CountRecords(ctx)
}

// Ping checks the database connection only.
func (s *RecordService) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.Store.Ping(ctx)
}

func (s *RecordService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.Timeout)
}

func (s *RecordService) publish(ctx context.Context, topic string, event any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, topic, event); err != nil {
		s.logger().Warn("failed to publish record event", "topic", topic, "error", err)
	}
}

func (s *RecordService) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// normaliseName trims surrounding whitespace and rejects what is left if empty.
func normaliseName(name string) (string, error) {
	in := recordInput{Name: strings.TrimSpace(name)}
	if err := validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	return in.Name, nil
}

// ToWire converts a domain record to its JSON representation.
func ToWire(rec domain.Record) recordsdk.Record {
	return recordsdk.Record{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt,
	}
}
