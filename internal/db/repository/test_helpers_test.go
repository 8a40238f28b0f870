package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

func ts(sec int64) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Unix(sec, 0).UTC(), Valid: true}
}

// mockQuerier stands in for sqlc Queries bound to a transaction.
type mockQuerier struct {
	mock.Mock
}

var _ sqlcgen.Querier = (*mockQuerier)(nil)

func (m *mockQuerier) CountQaSets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) CountQuestions(ctx context.Context, setID pgtype.Int8) (int64, error) {
	args := m.Called(ctx, setID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) CreateQaSet(ctx context.Context, arg sqlcgen.CreateQaSetParams) (sqlcgen.QaSet, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.QaSet), args.Error(1)
}

func (m *mockQuerier) CreateQuestion(ctx context.Context, arg sqlcgen.CreateQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) DeleteQaSet(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) DeleteQuestionsBySet(ctx context.Context, setID int64) (int64, error) {
	args := m.Called(ctx, setID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQuerier) GetQaSet(ctx context.Context, id int64) (sqlcgen.QaSet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.QaSet), args.Error(1)
}

func (m *mockQuerier) GetQuestion(ctx context.Context, id int64) (sqlcgen.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) GetStats(ctx context.Context) (sqlcgen.GetStatsRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlcgen.GetStatsRow), args.Error(1)
}

func (m *mockQuerier) ListQaSets(ctx context.Context, arg sqlcgen.ListQaSetsParams) ([]sqlcgen.ListQaSetsRow, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]sqlcgen.ListQaSetsRow), args.Error(1)
}

func (m *mockQuerier) ListQuestions(ctx context.Context, arg sqlcgen.ListQuestionsParams) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) ListQuestionsBySet(ctx context.Context, setID int64) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, setID)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuerier) Ping(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

func (m *mockQuerier) UpdateQuestion(ctx context.Context, arg sqlcgen.UpdateQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

// inlineTx runs the unit of work against the mock and remembers the outcome.
type inlineTx struct {
	q         sqlcgen.Querier
	attempts  int
	snapshots int
	lastErr   error
}

func (t *inlineTx) InSnapshot(_ context.Context, fn func(q sqlcgen.Querier) error) error {
	t.snapshots++
	t.lastErr = fn(t.q)
	return t.lastErr
}

func (t *inlineTx) InTx(_ context.Context, fn func(q sqlcgen.Querier) error) error {
	t.attempts++
	t.lastErr = fn(t.q)
	return t.lastErr
}
