package events

import (
	"context"

	"github.com/aussiebroadwan/records/pkg/recordsdk"
)

// Event topic constants
const (
	TopicRecordCreated = "records.record.created"
	TopicRecordUpdated = "records.record.updated"
	TopicRecordDeleted = "records.record.deleted"
)

// Event types

type RecordCreated struct {
	Record recordsdk.Record `json:"record"`
}

type RecordUpdated struct {
	Record recordsdk.Record `json:"record"`
}

type RecordDeleted struct {
	RecordID int64 `json:"record_id"`
}

// Publisher emits change notifications after a mutation has been committed.
// Publishing is best effort: the database stays the source of truth and
// callers log publish failures instead of failing the request.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
