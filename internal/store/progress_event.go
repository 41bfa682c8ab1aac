package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

type eventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type progressEventRow struct {
	Sequence    int64  `db:"sequence"`
	CreatedAt   int64  `db:"created_at"`
	Action      string `db:"action"`
	List        string `db:"list_name"`
	ProblemID   string `db:"problem_id"`
	ReviewIndex int    `db:"review_index"`
	Date        string `db:"event_date"`
	Detail      string `db:"detail"`
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx,
		`INSERT INTO progress_events
			(sequence, created_at, action, list_name, problem_id, review_index, event_date, detail)
		 VALUES
			(:sequence, :created_at, :action, :list_name, :problem_id, :review_index, :event_date, :detail)`,
		progressEventRow{
			Sequence:    seqNum,
			CreatedAt:   time.Now().UnixNano(),
			Action:      data.Action,
			List:        data.List,
			ProblemID:   data.ProblemID,
			ReviewIndex: data.ReviewIndex,
			Date:        data.Date,
			Detail:      data.Detail,
		},
	)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryProgressEvents(ctx context.Context, opts QueryOpts) ([]ProgressEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.Before > 0 {
		where = append(where, "sequence < ?")
		args = append(args, opts.Before)
	}
	if !opts.From.IsZero() {
		where = append(where, "created_at >= ?")
		args = append(args, opts.From.UnixNano())
	}
	if !opts.To.IsZero() {
		where = append(where, "created_at <= ?")
		args = append(args, opts.To.UnixNano())
	}
	if opts.List != "" {
		where = append(where, "list_name = ?")
		args = append(args, opts.List)
	}

	query := `SELECT sequence, created_at, action, list_name, problem_id, review_index, event_date, detail
		FROM progress_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	var rows []progressEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query progress events: %w", err)
	}

	records := make([]ProgressEventRecord, len(rows))
	for i, e := range rows {
		records[i] = ProgressEventRecord{
			ProgressEventData: ProgressEventData{
				Action:      e.Action,
				List:        e.List,
				ProblemID:   e.ProblemID,
				ReviewIndex: e.ReviewIndex,
				Date:        e.Date,
				Detail:      e.Detail,
			},
			Sequence:  e.Sequence,
			Timestamp: time.Unix(0, e.CreatedAt).UTC(),
		}
	}
	return records, nil
}
