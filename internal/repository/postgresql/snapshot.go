package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type snapshotRepository struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) ledger.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Migrate creates the snapshot tables when they do not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ledger_snapshots (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			standard_daily_hours DOUBLE PRECISION NOT NULL,
			late_threshold_minutes INT NOT NULL,
			overtime_hourly_rate DOUBLE PRECISION NOT NULL,
			office_locations TEXT[] NOT NULL,
			holidays JSONB NOT NULL,
			dropped_records INT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS ledger_snapshot_rows (
			snapshot_id UUID NOT NULL REFERENCES ledger_snapshots(id) ON DELETE CASCADE,
			employee TEXT NOT NULL,
			date DATE NOT NULL,
			check_in TIMESTAMPTZ,
			check_out TIMESTAMPTZ,
			location TEXT,
			note TEXT,
			late_category TEXT NOT NULL,
			is_late BOOLEAN NOT NULL,
			status TEXT NOT NULL,
			duration_hours DOUBLE PRECISION NOT NULL,
			performance TEXT NOT NULL,
			overtime_hours DOUBLE PRECISION NOT NULL,
			overtime_cost DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (snapshot_id, employee, date)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate snapshot tables: %w", err)
	}
	return nil
}

// Save implements ledger.SnapshotRepository.
func (r *snapshotRepository) Save(ctx context.Context, snapshot ledger.Snapshot) error {
	holidays, err := json.Marshal(snapshot.Rules.Holidays)
	if err != nil {
		return fmt.Errorf("failed to encode holidays: %w", err)
	}

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO ledger_snapshots (
			id, created_at, standard_daily_hours, late_threshold_minutes,
			overtime_hourly_rate, office_locations, holidays, dropped_records
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		snapshot.ID,
		snapshot.CreatedAt,
		snapshot.Rules.StandardDailyHours,
		snapshot.Rules.LateThresholdMinutes,
		snapshot.Rules.OvertimeHourlyRate,
		snapshot.Rules.OfficeLocations,
		holidays,
		snapshot.DroppedRecords,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	batch := &pgx.Batch{}
	for _, row := range snapshot.Rows {
		var checkIn, checkOut *time.Time
		var location, note *string
		if row.Punch != nil {
			checkIn = &row.Punch.CheckIn
			checkOut = &row.Punch.CheckOut
			location = &row.Punch.Location
			note = &row.Punch.Note
		}

		batch.Queue(`
			INSERT INTO ledger_snapshot_rows (
				snapshot_id, employee, date, check_in, check_out, location, note,
				late_category, is_late, status, duration_hours, performance,
				overtime_hours, overtime_cost
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`,
			snapshot.ID, row.Name, row.Date, checkIn, checkOut, location, note,
			row.LateCategory, row.IsLate, row.Status, row.DurationHours,
			row.PerformanceFlag, row.OvertimeHours, row.OvertimeCost,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert snapshot rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Get implements ledger.SnapshotRepository. Derived date facets are
// recomputed from the stored date; they are functions of it.
func (r *snapshotRepository) Get(ctx context.Context, id string) (ledger.Snapshot, error) {
	var snapshot ledger.Snapshot
	var holidays []byte

	err := r.db.QueryRow(ctx, `
		SELECT id, created_at, standard_daily_hours, late_threshold_minutes,
			   overtime_hourly_rate, office_locations, holidays, dropped_records
		FROM ledger_snapshots
		WHERE id = $1
	`, id).Scan(
		&snapshot.ID,
		&snapshot.CreatedAt,
		&snapshot.Rules.StandardDailyHours,
		&snapshot.Rules.LateThresholdMinutes,
		&snapshot.Rules.OvertimeHourlyRate,
		&snapshot.Rules.OfficeLocations,
		&holidays,
		&snapshot.DroppedRecords,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Snapshot{}, ledger.ErrSnapshotNotFound
		}
		return ledger.Snapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	if err := json.Unmarshal(holidays, &snapshot.Rules.Holidays); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("failed to decode holidays: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT employee, date, check_in, check_out, location, note,
			   late_category, is_late, status, duration_hours, performance,
			   overtime_hours, overtime_cost
		FROM ledger_snapshot_rows
		WHERE snapshot_id = $1
		ORDER BY employee, date
	`, id)
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("failed to get snapshot rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row ledger.Row
		var checkIn, checkOut *time.Time
		var location, note *string

		err := rows.Scan(
			&row.Name, &row.Date, &checkIn, &checkOut, &location, &note,
			&row.LateCategory, &row.IsLate, &row.Status, &row.DurationHours,
			&row.PerformanceFlag, &row.OvertimeHours, &row.OvertimeCost,
		)
		if err != nil {
			return ledger.Snapshot{}, fmt.Errorf("failed to scan snapshot row: %w", err)
		}

		if checkIn != nil {
			row.Punch = &punch.Record{
				Name:         row.Name,
				Date:         row.Date,
				CheckIn:      *checkIn,
				CheckOut:     *checkOut,
				Location:     *location,
				Note:         *note,
				LateCategory: row.LateCategory,
				IsLate:       row.IsLate,
			}
		}

		row.Year = row.Date.Year()
		row.MonthName = row.Date.Month().String()
		row.MonthNumber = int(row.Date.Month())
		row.WeekdayName = row.Date.Weekday().String()
		_, row.ISOWeek = row.Date.ISOWeek()

		snapshot.Rows = append(snapshot.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("failed to read snapshot rows: %w", err)
	}

	return snapshot, nil
}
