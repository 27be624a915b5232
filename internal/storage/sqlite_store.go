package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLiteStore keeps the snapshot in a SQLite file. Every save replaces the
// whole tank inside one transaction.
type SQLiteStore struct {
	db   *sqlx.DB
	tank *TankRepo
	fish *FishRepo
}

func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{
		db:   db,
		tank: NewTankRepo(db),
		fish: NewFishRepo(db),
	}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*TankRecord, error) {
	rec, err := s.tank.Get(ctx)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoSnapshot
	}
	fish, err := s.fish.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rec.Fish = fish
	return rec, nil
}

func (s *SQLiteStore) Save(ctx context.Context, rec *TankRecord) error {
	return WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.tank.Put(ctx, tx, rec); err != nil {
			return err
		}
		return s.fish.ReplaceAll(ctx, tx, rec.Fish)
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
