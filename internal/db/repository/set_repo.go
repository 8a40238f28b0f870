package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

type setStore interface {
	GetQaSet(ctx context.Context, id int64) (sqlcgen.QaSet, error)
	ListQuestionsBySet(ctx context.Context, setID int64) ([]sqlcgen.Question, error)
}

type txRunner interface {
	InTx(ctx context.Context, fn func(q sqlcgen.Querier) error) error
	InSnapshot(ctx context.Context, fn func(q sqlcgen.Querier) error) error
}

// NewQuestion is a question row to insert alongside its parent set.
type NewQuestion struct {
	Type string
	Text string
}

// CreateSetParams describes a set and the questions created with it.
type CreateSetParams struct {
	JobTitle  string
	Name      pgtype.Text
	Questions []NewQuestion
}

// SetRepository owns qa_sets rows and the lifecycle of their questions.
type SetRepository struct {
	store setStore
	tx    txRunner
}

func NewSetRepository(store setStore, tx txRunner) *SetRepository {
	return &SetRepository{store: store, tx: tx}
}

// Create inserts the set and every question in one transaction.
func (r *SetRepository) Create(ctx context.Context, params CreateSetParams) (sqlcgen.QaSet, []sqlcgen.Question, error) {
	var (
		set       sqlcgen.QaSet
		questions []sqlcgen.Question
	)
	err := r.tx.InTx(ctx, func(q sqlcgen.Querier) error {
		var err error
		set, err = q.CreateQaSet(ctx, sqlcgen.CreateQaSetParams{
			JobTitle: params.JobTitle,
			Name:     params.Name,
		})
		if err != nil {
			return fmt.Errorf("insert set: %w", err)
		}

		questions = make([]sqlcgen.Question, 0, len(params.Questions))
		for i, nq := range params.Questions {
			row, err := q.CreateQuestion(ctx, sqlcgen.CreateQuestionParams{
				SetID: set.ID,
				Type:  nq.Type,
				Text:  nq.Text,
			})
			if err != nil {
				return fmt.Errorf("insert question %d: %w", i, err)
			}
			questions = append(questions, row)
		}
		return nil
	})
	if err != nil {
		return sqlcgen.QaSet{}, nil, err
	}
	return set, questions, nil
}

// Get returns a set together with its questions in creation order.
func (r *SetRepository) Get(ctx context.Context, id int64) (sqlcgen.QaSet, []sqlcgen.Question, error) {
	set, err := r.store.GetQaSet(ctx, id)
	if err != nil {
		return sqlcgen.QaSet{}, nil, notFound(err)
	}
	questions, err := r.store.ListQuestionsBySet(ctx, id)
	if err != nil {
		return sqlcgen.QaSet{}, nil, fmt.Errorf("list set questions: %w", err)
	}
	return set, questions, nil
}

// Page counts the sets and reads one page of them with their question
// counts, newest first, from the same snapshot.
func (r *SetRepository) Page(ctx context.Context, limit, offset int64) (int64, []sqlcgen.ListQaSetsRow, error) {
	var (
		total int64
		rows  []sqlcgen.ListQaSetsRow
	)
	err := r.tx.InSnapshot(ctx, func(q sqlcgen.Querier) error {
		var err error
		if total, err = q.CountQaSets(ctx); err != nil {
			return fmt.Errorf("count sets: %w", err)
		}
		if offset >= total {
			return nil
		}
		if rows, err = q.ListQaSets(ctx, sqlcgen.ListQaSetsParams{Limit: limit, Offset: offset}); err != nil {
			return fmt.Errorf("list sets: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

// Delete removes the set's questions and then the set, atomically.
func (r *SetRepository) Delete(ctx context.Context, id int64) error {
	return r.tx.InTx(ctx, func(q sqlcgen.Querier) error {
		if _, err := q.DeleteQuestionsBySet(ctx, id); err != nil {
			return fmt.Errorf("delete set questions: %w", err)
		}
		n, err := q.DeleteQaSet(ctx, id)
		if err != nil {
			return fmt.Errorf("delete set: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
