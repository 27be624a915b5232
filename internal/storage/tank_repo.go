package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type TankRepo struct {
	db *sqlx.DB
}

func NewTankRepo(db *sqlx.DB) *TankRepo {
	return &TankRepo{db: db}
}

type tankRow struct {
	Width       int             `db:"width"`
	Height      int             `db:"height"`
	Waste       float64         `db:"waste"`
	LastCheckin sql.NullFloat64 `db:"last_checkin"`
}

// Get returns the stored tank without its fish, or nil if none was saved.
func (r *TankRepo) Get(ctx context.Context) (*TankRecord, error) {
	var row tankRow
	err := r.db.GetContext(ctx, &row, `SELECT width, height, waste, last_checkin FROM tank WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("tank get: %w", err)
	}
	rec := &TankRecord{Width: row.Width, Height: row.Height, Waste: row.Waste}
	if row.LastCheckin.Valid {
		v := row.LastCheckin.Float64
		rec.LastCheckin = &v
	}
	return rec, nil
}

func (r *TankRepo) Put(ctx context.Context, tx *sqlx.Tx, rec *TankRecord) error {
	var last sql.NullFloat64
	if rec.LastCheckin != nil {
		last = sql.NullFloat64{Float64: *rec.LastCheckin, Valid: true}
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO tank (id, width, height, waste, last_checkin)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			width = excluded.width,
			height = excluded.height,
			waste = excluded.waste,
			last_checkin = excluded.last_checkin
	`, rec.Width, rec.Height, rec.Waste, last)
	if err != nil {
		return fmt.Errorf("tank put: %w", err)
	}
	return nil
}
