package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

func TestSetRepository_CreateInsertsSetThenQuestions(t *testing.T) {
	q := new(mockQuerier)
	tx := &inlineTx{q: q}
	repo := NewSetRepository(q, tx)

	set := sqlcgen.QaSet{ID: 5, JobTitle: "Backend Dev", CreatedAt: ts(100)}
	q.On("CreateQaSet", mock.Anything, sqlcgen.CreateQaSetParams{JobTitle: "Backend Dev"}).Return(set, nil)
	q.On("CreateQuestion", mock.Anything, sqlcgen.CreateQuestionParams{SetID: 5, Type: "technical", Text: "Explain async IO."}).
		Return(sqlcgen.Question{ID: 1, SetID: 5, Type: "technical", Text: "Explain async IO."}, nil)
	q.On("CreateQuestion", mock.Anything, sqlcgen.CreateQuestionParams{SetID: 5, Type: "behavioral", Text: "Tell me about a conflict."}).
		Return(sqlcgen.Question{ID: 2, SetID: 5, Type: "behavioral", Text: "Tell me about a conflict."}, nil)

	gotSet, questions, err := repo.Create(context.Background(), CreateSetParams{
		JobTitle: "Backend Dev",
		Questions: []NewQuestion{
			{Type: "technical", Text: "Explain async IO."},
			{Type: "behavioral", Text: "Tell me about a conflict."},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, set, gotSet)
	require.Len(t, questions, 2)
	assert.Equal(t, int64(1), questions[0].ID)
	assert.Equal(t, int64(2), questions[1].ID)
	assert.Equal(t, 1, tx.attempts)
	q.AssertExpectations(t)
}

func TestSetRepository_CreateFailsWholeUnit(t *testing.T) {
	q := new(mockQuerier)
	tx := &inlineTx{q: q}
	repo := NewSetRepository(q, tx)

	boom := errors.New("check constraint violated")
	q.On("CreateQaSet", mock.Anything, mock.Anything).Return(sqlcgen.QaSet{ID: 6}, nil)
	q.On("CreateQuestion", mock.Anything, mock.Anything).Return(sqlcgen.Question{}, boom)

	_, questions, err := repo.Create(context.Background(), CreateSetParams{
		JobTitle:  "SRE",
		Questions: []NewQuestion{{Type: "technical", Text: "What is an SLO?"}},
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, questions)
	assert.ErrorIs(t, tx.lastErr, boom, "error must reach the tx runner so it rolls back")
}

func TestSetRepository_GetMissing(t *testing.T) {
	q := new(mockQuerier)
	repo := NewSetRepository(q, &inlineTx{q: q})

	q.On("GetQaSet", mock.Anything, int64(77)).Return(sqlcgen.QaSet{}, pgx.ErrNoRows)

	_, _, err := repo.Get(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
	q.AssertNotCalled(t, "ListQuestionsBySet", mock.Anything, mock.Anything)
}

func TestSetRepository_GetReturnsQuestions(t *testing.T) {
	q := new(mockQuerier)
	repo := NewSetRepository(q, &inlineTx{q: q})

	set := sqlcgen.QaSet{ID: 3, JobTitle: "QA Engineer", Name: pgtype.Text{String: "Round 1", Valid: true}}
	questions := []sqlcgen.Question{{ID: 10, SetID: 3}, {ID: 11, SetID: 3}}
	q.On("GetQaSet", mock.Anything, int64(3)).Return(set, nil)
	q.On("ListQuestionsBySet", mock.Anything, int64(3)).Return(questions, nil)

	gotSet, gotQuestions, err := repo.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, set, gotSet)
	assert.Equal(t, questions, gotQuestions)
}

func TestSetRepository_DeleteRemovesQuestionsFirst(t *testing.T) {
	q := new(mockQuerier)
	repo := NewSetRepository(q, &inlineTx{q: q})

	deleteQuestions := q.On("DeleteQuestionsBySet", mock.Anything, int64(4)).Return(int64(2), nil)
	q.On("DeleteQaSet", mock.Anything, int64(4)).Return(int64(1), nil).NotBefore(deleteQuestions)

	assert.NoError(t, repo.Delete(context.Background(), 4))
	q.AssertExpectations(t)
}

func TestSetRepository_DeleteMissing(t *testing.T) {
	q := new(mockQuerier)
	repo := NewSetRepository(q, &inlineTx{q: q})

	q.On("DeleteQuestionsBySet", mock.Anything, int64(8)).Return(int64(0), nil)
	q.On("DeleteQaSet", mock.Anything, int64(8)).Return(int64(0), nil)

	assert.ErrorIs(t, repo.Delete(context.Background(), 8), ErrNotFound)
}

func TestSetRepository_Page(t *testing.T) {
	q := new(mockQuerier)
	tx := &inlineTx{q: q}
	repo := NewSetRepository(q, tx)

	rows := []sqlcgen.ListQaSetsRow{{ID: 2, JobTitle: "PM", QuestionCount: 4}}
	q.On("CountQaSets", mock.Anything).Return(int64(1), nil)
	q.On("ListQaSets", mock.Anything, sqlcgen.ListQaSetsParams{Limit: 10, Offset: 0}).Return(rows, nil)

	total, got, err := repo.Page(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, rows, got)
	assert.Equal(t, 1, tx.snapshots)
	assert.Zero(t, tx.attempts)
}
