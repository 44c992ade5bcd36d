package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// MetricsSnapshot is one point-in-time capture of the learning metrics,
// kept for auditing how the aggregate moved over time.
type MetricsSnapshot struct {
	ID         int64                  `json:"id"`
	Metrics    domain.LearningMetrics `json:"metrics"`
	CapturedAt time.Time              `json:"captured_at"`
}

// SnapshotStore persists learning metric snapshots on database/sql, so it
// works against a plain lib/pq connection independent of the pgx pool.
type SnapshotStore struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewSnapshotStore creates a snapshot store on an existing connection.
func NewSnapshotStore(db *sql.DB, logger *logrus.Logger) *SnapshotStore {
	return &SnapshotStore{
		db:  db,
		log: logger,
	}
}

// OpenSnapshotDB opens a lib/pq connection for the snapshot store.
func OpenSnapshotDB(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the snapshot table if it does not exist.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS learning_metric_snapshots (
			id BIGSERIAL PRIMARY KEY,
			metrics JSONB NOT NULL,
			captured_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}
	return nil
}

// Save captures the given metrics as a new snapshot row.
func (s *SnapshotStore) Save(ctx context.Context, metrics domain.LearningMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("encoding metrics snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO learning_metric_snapshots (metrics) VALUES ($1)`,
		data,
	)
	if err != nil {
		return fmt.Errorf("saving metrics snapshot: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"total_feedback": metrics.TotalFeedback,
		"average_rating": metrics.AverageRating,
	}).Debug("Learning metrics snapshot saved")
	return nil
}

// Latest returns the most recent snapshot.
func (s *SnapshotStore) Latest(ctx context.Context) (*MetricsSnapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, metrics, captured_at
		FROM learning_metric_snapshots
		ORDER BY captured_at DESC, id DESC
		LIMIT 1`)

	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no metrics snapshots: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading latest metrics snapshot: %w", err)
	}
	return snapshot, nil
}

// History returns up to limit snapshots, newest first.
func (s *SnapshotStore) History(ctx context.Context, limit int) ([]*MetricsSnapshot, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, metrics, captured_at
		FROM learning_metric_snapshots
		ORDER BY captured_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing metrics snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*MetricsSnapshot, 0, limit)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning metrics snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating metrics snapshots: %w", err)
	}
	return snapshots, nil
}

// Close closes the underlying connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (*MetricsSnapshot, error) {
	var snapshot MetricsSnapshot
	var data []byte

	if err := row.Scan(&snapshot.ID, &data, &snapshot.CapturedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &snapshot.Metrics); err != nil {
		return nil, fmt.Errorf("decoding metrics snapshot: %w", err)
	}
	return &snapshot, nil
}
