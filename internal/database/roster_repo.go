package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/shift-roster-bot/internal/domain/contract"
	"github.com/diegoclair/shift-roster-bot/internal/domain/entity"
	"github.com/google/uuid"
)

type rosterRepo struct {
	db dbConn
}

func newRosterRepo(db dbConn) contract.RosterRepo {
	return &rosterRepo{db: db}
}

// Create stores the roster and its rows. Run it inside WithTransaction so a
// failed row insert leaves nothing behind.
func (r *rosterRepo) Create(ctx context.Context, roster *entity.Roster) error {
	if roster.ID == "" {
		roster.ID = uuid.NewString()
	}
	if roster.CreatedAt.IsZero() {
		roster.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO rosters (id, month, year, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, roster.ID, roster.Month, roster.Year, roster.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create roster: %w", err)
	}

	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO roster_rows (roster_id, position, employee_name, base_shift, email, shifts)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare roster row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range roster.Rows {
		shiftsJSON, err := json.Marshal(row.Shifts)
		if err != nil {
			return fmt.Errorf("failed to marshal shifts: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			roster.ID,
			row.Position,
			row.EmployeeName,
			row.BaseShift,
			row.Email,
			string(shiftsJSON),
		); err != nil {
			return fmt.Errorf("failed to create roster row for %s: %w", row.EmployeeName, err)
		}
	}

	return nil
}

// GetLatest returns the most recently generated roster of the month, or nil
// if none was generated.
func (r *rosterRepo) GetLatest(ctx context.Context, month, year int) (*entity.Roster, error) {
	roster := &entity.Roster{}
	query := `
		SELECT id, month, year, created_at
		FROM rosters
		WHERE month = ? AND year = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`

	err := r.db.QueryRowContext(ctx, query, month, year).Scan(
		&roster.ID,
		&roster.Month,
		&roster.Year,
		&roster.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT position, employee_name, base_shift, email, shifts
		FROM roster_rows
		WHERE roster_id = ?
		ORDER BY position ASC
	`, roster.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row entity.RosterRow
		var shiftsJSON string
		if err := rows.Scan(&row.Position, &row.EmployeeName, &row.BaseShift, &row.Email, &shiftsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		if err := json.Unmarshal([]byte(shiftsJSON), &row.Shifts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shifts: %w", err)
		}
		roster.Rows = append(roster.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate roster rows: %w", err)
	}

	return roster, nil
}
