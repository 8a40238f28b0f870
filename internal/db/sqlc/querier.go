package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CountQaSets(ctx context.Context) (int64, error)
	CountQuestions(ctx context.Context, setID pgtype.Int8) (int64, error)
	CreateQaSet(ctx context.Context, arg CreateQaSetParams) (QaSet, error)
	CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error)
	DeleteQaSet(ctx context.Context, id int64) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
	DeleteQuestionsBySet(ctx context.Context, setID int64) (int64, error)
	GetQaSet(ctx context.Context, id int64) (QaSet, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
	GetStats(ctx context.Context) (GetStatsRow, error)
	ListQaSets(ctx context.Context, arg ListQaSetsParams) ([]ListQaSetsRow, error)
	ListQuestions(ctx context.Context, arg ListQuestionsParams) ([]Question, error)
	ListQuestionsBySet(ctx context.Context, setID int64) ([]Question, error)
	Ping(ctx context.Context) (int32, error)
	UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error)
}

var _ Querier = (*Queries)(nil)
