package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type FishRepo struct {
	db *sqlx.DB
}

func NewFishRepo(db *sqlx.DB) *FishRepo {
	return &FishRepo{db: db}
}

// ListAll returns every fish in tank order.
func (r *FishRepo) ListAll(ctx context.Context) ([]FishRecord, error) {
	out := []FishRecord{}
	err := r.db.SelectContext(ctx, &out, `
		SELECT name, species, personality, birth, last_fed, stress, last_checkin, time_fed
		FROM fish
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("fish list: %w", err)
	}
	return out, nil
}

// ReplaceAll deletes every stored fish and inserts fish in order.
func (r *FishRepo) ReplaceAll(ctx context.Context, tx *sqlx.Tx, fish []FishRecord) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM fish`); err != nil {
		return fmt.Errorf("fish clear: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO fish (position, name, species, personality, birth, last_fed, stress, last_checkin, time_fed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("fish prepare: %w", err)
	}
	defer stmt.Close()

	for i, f := range fish {
		if _, err := stmt.ExecContext(ctx, i, f.Name, f.Species, f.Personality, f.Birth, f.LastFed, f.Stress, f.LastCheckin, f.TimeFed); err != nil {
			return fmt.Errorf("fish insert %q: %w", f.Name, err)
		}
	}
	return nil
}
