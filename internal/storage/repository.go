package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"breadthpulse/internal/domain/models"
)

// SnapshotsRepository defines the contract for reading price snapshots.
// The table is populated externally; this layer only queries it.
type SnapshotsRepository interface {
	// SnapshotsSince returns all snapshots observed at or after the given
	// time, sorted ascending by observation time. Only the fields the
	// breadth pipeline needs are projected.
	SnapshotsSince(ctx context.Context, since time.Time) ([]models.Snapshot, error)

	// LatestQuotes returns the latest stored observation for each security
	// in the given allow-list, in store-native order.
	LatestQuotes(ctx context.Context, securityIDs []int64) ([]models.UniverseQuote, error)
}

type snapshotsRepository struct {
	db *sql.DB
}

func NewSnapshotsRepository(db *sql.DB) SnapshotsRepository {
	return &snapshotsRepository{db: db}
}

// SnapshotsSince performs the windowed range query feeding the breadth
// pipeline. Prices are cast to text so numeric interpretation stays in the
// calculator, which owns the unparseable-value policy.
func (r *snapshotsRepository) SnapshotsSince(ctx context.Context, since time.Time) ([]models.Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT last_traded_price::text, close_price::text, observed_at
		FROM snapshots
		WHERE observed_at >= $1
		ORDER BY observed_at ASC
	`, since)
	if err != nil {
		return nil, fmt.Errorf("query snapshots since %s: %w", since.Format(time.RFC3339), err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []models.Snapshot
	for rows.Next() {
		var s models.Snapshot
		// NULL prices stay empty strings and fall out of the tally downstream.
		var last, ref sql.NullString
		if err := rows.Scan(&last, &ref, &s.ObservedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		s.LastTradedPrice = last.String
		s.ClosePrice = ref.String
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return snaps, nil
}

// LatestQuotes resolves the universe query: one row per requested security,
// carrying its most recent observation.
func (r *snapshotsRepository) LatestQuotes(ctx context.Context, securityIDs []int64) ([]models.UniverseQuote, error) {
	if len(securityIDs) == 0 {
		return []models.UniverseQuote{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT ON (security_id)
			security_id, last_traded_price::text, volume, close_price::text
		FROM snapshots
		WHERE security_id = ANY($1)
		ORDER BY security_id, observed_at DESC
	`, pq.Int64Array(securityIDs))
	if err != nil {
		return nil, fmt.Errorf("query latest quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	quotes := []models.UniverseQuote{}
	for rows.Next() {
		var q models.UniverseQuote
		var last, ref sql.NullString
		var volume sql.NullInt64
		if err := rows.Scan(&q.SecurityID, &last, &volume, &ref); err != nil {
			return nil, fmt.Errorf("scan quote row: %w", err)
		}
		q.LastTradedPrice = last.String
		q.ClosePrice = ref.String
		q.Volume = volume.Int64
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote rows: %w", err)
	}
	return quotes, nil
}
