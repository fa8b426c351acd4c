package postgres

import (
	"context"
	"fmt"
	"log"

	"care-shift-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager implements storage.TxManager on a pgx connection pool.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

var _ storage.TxManager = (*TxManager)(nil)

// NewRepositories binds all repositories to the shared pool.
func NewRepositories(pool *pgxpool.Pool) *storage.Repositories {
	return &storage.Repositories{
		Jobs:         NewJobRepo(pool),
		WorkDates:    NewWorkDateRepo(pool),
		Applications: NewApplicationRepo(pool),
	}
}

// WithinTx runs fn with repositories bound to a single transaction,
// committing when fn returns nil and rolling back otherwise.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, r *storage.Repositories) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		log.Printf("TxManager: Error beginning transaction: %v", err)
		return fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	repos := &storage.Repositories{
		Jobs:         NewJobRepo(tx),
		WorkDates:    NewWorkDateRepo(tx),
		Applications: NewApplicationRepo(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("TxManager: Error committing transaction: %v", err)
		return fmt.Errorf("internal error committing changes: %w", err)
	}
	return nil
}
