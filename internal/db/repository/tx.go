package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("not found")

type beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// snapshotOptions gives every statement in the transaction the same view of the data.
var snapshotOptions = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// TxRunner executes a unit of work inside a single database transaction.
type TxRunner struct {
	db beginner
}

// NewTxRunner wraps a pgxpool.Pool (or any pgx connection able to Begin).
func NewTxRunner(db beginner) *TxRunner {
	return &TxRunner{db: db}
}

// InTx commits when fn returns nil and rolls back otherwise.
func (r *TxRunner) InTx(ctx context.Context, fn func(q sqlcgen.Querier) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// InSnapshot runs read-only queries against one consistent snapshot.
func (r *TxRunner) InSnapshot(ctx context.Context, fn func(q sqlcgen.Querier) error) error {
	return r.run(ctx, snapshotOptions, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(q sqlcgen.Querier) error) error {
	tx, err := r.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(sqlcgen.New(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
