package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// snapshotRepo implements SnapshotRepo on the snapshots table.
type snapshotRepo struct {
	db *sqlx.DB
}

type snapshotRow struct {
	ID        string `db:"id"`
	Sequence  int64  `db:"sequence"`
	Reason    string `db:"reason"`
	CreatedAt int64  `db:"created_at"`
	Data      string `db:"data"`
}

func (r snapshotRow) toSnapshot() *Snapshot {
	return &Snapshot{
		ID:        r.ID,
		Sequence:  r.Sequence,
		Timestamp: time.Unix(0, r.CreatedAt).UTC(),
		Reason:    r.Reason,
		Data:      []byte(r.Data),
	}
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO snapshots (id, sequence, reason, created_at, data)
		 VALUES (:id, :sequence, :reason, :created_at, :data)`,
		snapshotRow{
			ID:        snap.ID,
			Sequence:  snap.Sequence,
			Reason:    snap.Reason,
			CreatedAt: snap.Timestamp.UnixNano(),
			Data:      string(snap.Data),
		},
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	var row snapshotRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, sequence, reason, created_at, data FROM snapshots
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return row.toSnapshot(), nil
}

func (r *snapshotRepo) Get(ctx context.Context, id string) (*Snapshot, error) {
	var row snapshotRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, sequence, reason, created_at, data FROM snapshots WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get snapshot %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return row.toSnapshot(), nil
}

func (r *snapshotRepo) List(ctx context.Context, limit int) ([]Snapshot, error) {
	query := `SELECT id, sequence, reason, created_at, '' AS data FROM snapshots
		ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	var rows []snapshotRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	out := make([]Snapshot, len(rows))
	for i, row := range rows {
		out[i] = *row.toSnapshot()
		out[i].Data = nil
	}
	return out, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return fmt.Errorf("prune snapshots: keep must be positive, got %d", keep)
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
