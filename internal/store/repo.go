package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a key or snapshot does not exist.
	ErrNotFound = errors.New("not found")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	List   string    // list name ("" = any)
}

// LocalStorage is a string key/value store, the on-disk stand-in for a
// browser's localStorage.
type LocalStorage interface {
	// GetItem returns the value stored under key, or ErrNotFound.
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error
}

// Sequencer reports the last sequence number handed out to an event.
type Sequencer interface {
	Sequence(ctx context.Context) (int64, error)
}

// Snapshot is a point-in-time backup of the serialised progress store.
type Snapshot struct {
	ID        string
	Sequence  int64
	Timestamp time.Time
	Reason    string
	Data      []byte
}

// SnapshotRepo manages progress backups.
type SnapshotRepo interface {
	// Save stores a new snapshot. An empty ID is filled with a new UUID.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Get returns a snapshot by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// List returns snapshots newest first, without their data.
	List(ctx context.Context, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Progress event actions.
const (
	ActionSolve    = "solve"
	ActionUnsolve  = "unsolve"
	ActionReview   = "review"
	ActionUnreview = "unreview"
	ActionImport   = "import"
	ActionClear    = "clear"
	ActionRestore  = "restore"
)

// ProgressEventData captures a single change to the progress store.
type ProgressEventData struct {
	Action      string
	List        string
	ProblemID   string
	ReviewIndex int    // -1 when not a review action
	Date        string // calendar date the change was recorded for (YYYY-MM-DD)
	Detail      string
}

// ProgressEventRecord is a stored progress event.
type ProgressEventRecord struct {
	ProgressEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to activity events.
type EventRepo interface {
	// AppendProgressEvent records a change to the progress store.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// QueryProgressEvents returns events newest first.
	QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error)
}
