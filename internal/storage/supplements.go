package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/claude/liftkit/internal/supplements"
)

// InsertSupplement stores a supplement row. The schedule is stored as a
// JSON array.
func (db *DB) InsertSupplement(ctx context.Context, s supplements.Supplement) error {
	times, err := json.Marshal(s.ScheduleTimes)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	_, err = db.sql.ExecContext(ctx,
		`INSERT INTO supplements (id, name, pills_per_dose, schedule_times, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.PillsPerDose, string(times), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting supplement: %w", err)
	}
	return nil
}

// ListSupplements returns all supplements in creation order.
func (db *DB) ListSupplements(ctx context.Context) ([]supplements.Supplement, error) {
	rows, err := db.sql.QueryContext(ctx,
		`SELECT id, name, pills_per_dose, schedule_times, created_at
		 FROM supplements ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("querying supplements: %w", err)
	}
	defer rows.Close()

	out := []supplements.Supplement{}
	for rows.Next() {
		s, err := scanSupplement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSupplement fetches one supplement by ID. The second return value is
// false when it does not exist.
func (db *DB) GetSupplement(ctx context.Context, id string) (supplements.Supplement, bool, error) {
	row := db.sql.QueryRowContext(ctx,
		`SELECT id, name, pills_per_dose, schedule_times, created_at
		 FROM supplements WHERE id = ?`, id)
	s, err := scanSupplement(row)
	if err == sql.ErrNoRows {
		return supplements.Supplement{}, false, nil
	}
	if err != nil {
		return supplements.Supplement{}, false, err
	}
	return s, true, nil
}

// DeleteSupplement removes a supplement. Returns false when no row matched.
func (db *DB) DeleteSupplement(ctx context.Context, id string) (bool, error) {
	res, err := db.sql.ExecContext(ctx, `DELETE FROM supplements WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting supplement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSupplement(row scanner) (supplements.Supplement, error) {
	var s supplements.Supplement
	var times string
	if err := row.Scan(&s.ID, &s.Name, &s.PillsPerDose, &times, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return s, err
		}
		return s, fmt.Errorf("scanning supplement: %w", err)
	}
	if err := json.Unmarshal([]byte(times), &s.ScheduleTimes); err != nil {
		return s, fmt.Errorf("decoding schedule: %w", err)
	}
	return s, nil
}
