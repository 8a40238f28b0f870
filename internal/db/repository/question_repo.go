package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

type questionStore interface {
	GetQuestion(ctx context.Context, id int64) (sqlcgen.Question, error)
	UpdateQuestion(ctx context.Context, arg sqlcgen.UpdateQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

type snapshotRunner interface {
	InSnapshot(ctx context.Context, fn func(q sqlcgen.Querier) error) error
}

// QuestionRepository wraps sqlc queries for individual questions.
type QuestionRepository struct {
	store questionStore
	tx    snapshotRunner
}

func NewQuestionRepository(store questionStore, tx snapshotRunner) *QuestionRepository {
	return &QuestionRepository{store: store, tx: tx}
}

// Page counts the matching questions and reads one page of them, newest
// first, from the same snapshot. No rows are read when offset is past the end.
func (r *QuestionRepository) Page(ctx context.Context, setID *int64, limit, offset int64) (int64, []sqlcgen.Question, error) {
	var (
		total int64
		rows  []sqlcgen.Question
	)
	err := r.tx.InSnapshot(ctx, func(q sqlcgen.Querier) error {
		var err error
		if total, err = q.CountQuestions(ctx, int8Param(setID)); err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		if offset >= total {
			return nil
		}
		rows, err = q.ListQuestions(ctx, sqlcgen.ListQuestionsParams{
			SetID:  int8Param(setID),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return total, rows, nil
}

// Get fetches a single question.
func (r *QuestionRepository) Get(ctx context.Context, id int64) (sqlcgen.Question, error) {
	row, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return sqlcgen.Question{}, notFound(err)
	}
	return row, nil
}

// Update applies the non-null fields of params and returns the stored row.
func (r *QuestionRepository) Update(ctx context.Context, params sqlcgen.UpdateQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.UpdateQuestion(ctx, params)
	if err != nil {
		return sqlcgen.Question{}, notFound(err)
	}
	return row, nil
}

// Delete removes a question by id.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func int8Param(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}
