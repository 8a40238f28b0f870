// source: questions.sql

package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countQuestions = `-- name: CountQuestions :one
SELECT COUNT(*) FROM questions
WHERE ($1::bigint IS NULL OR set_id = $1::bigint)
`

func (q *Queries) CountQuestions(ctx context.Context, setID pgtype.Int8) (int64, error) {
	row := q.db.QueryRow(ctx, countQuestions, setID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createQuestion = `-- name: CreateQuestion :one
INSERT INTO questions (set_id, type, text)
VALUES ($1, $2::question_type, $3)
RETURNING id, set_id, type::text, text, user_answer, difficulty, flagged, created_at
`

type CreateQuestionParams struct {
	SetID int64  `json:"set_id"`
	Type  string `json:"type"`
	Text  string `json:"text"`
}

func (q *Queries) CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, createQuestion, arg.SetID, arg.Type, arg.Text)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SetID,
		&i.Type,
		&i.Text,
		&i.UserAnswer,
		&i.Difficulty,
		&i.Flagged,
		&i.CreatedAt,
	)
	return i, err
}

const deleteQuestion = `-- name: DeleteQuestion :execrows
DELETE FROM questions WHERE id = $1
`

func (q *Queries) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteQuestionsBySet = `-- name: DeleteQuestionsBySet :execrows
DELETE FROM questions WHERE set_id = $1
`

func (q *Queries) DeleteQuestionsBySet(ctx context.Context, setID int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQuestionsBySet, setID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getQuestion = `-- name: GetQuestion :one
SELECT id, set_id, type::text, text, user_answer, difficulty, flagged, created_at
FROM questions WHERE id = $1
`

func (q *Queries) GetQuestion(ctx context.Context, id int64) (Question, error) {
	row := q.db.QueryRow(ctx, getQuestion, id)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SetID,
		&i.Type,
		&i.Text,
		&i.UserAnswer,
		&i.Difficulty,
		&i.Flagged,
		&i.CreatedAt,
	)
	return i, err
}

const listQuestions = `-- name: ListQuestions :many
SELECT id, set_id, type::text, text, user_answer, difficulty, flagged, created_at
FROM questions
WHERE ($1::bigint IS NULL OR set_id = $1::bigint)
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

type ListQuestionsParams struct {
	SetID  pgtype.Int8 `json:"set_id"`
	Limit  int64       `json:"limit"`
	Offset int64       `json:"offset"`
}

func (q *Queries) ListQuestions(ctx context.Context, arg ListQuestionsParams) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions, arg.SetID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Question{}
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.SetID,
			&i.Type,
			&i.Text,
			&i.UserAnswer,
			&i.Difficulty,
			&i.Flagged,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listQuestionsBySet = `-- name: ListQuestionsBySet :many
SELECT id, set_id, type::text, text, user_answer, difficulty, flagged, created_at
FROM questions
WHERE set_id = $1
ORDER BY created_at ASC, id ASC
`

func (q *Queries) ListQuestionsBySet(ctx context.Context, setID int64) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsBySet, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Question{}
	for rows.Next() {
		var i Question
		if err := rows.Scan(
			&i.ID,
			&i.SetID,
			&i.Type,
			&i.Text,
			&i.UserAnswer,
			&i.Difficulty,
			&i.Flagged,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateQuestion = `-- name: UpdateQuestion :one
UPDATE questions
SET user_answer = COALESCE($2, user_answer),
    difficulty  = COALESCE($3, difficulty),
    flagged     = COALESCE($4, flagged)
WHERE id = $1
RETURNING id, set_id, type::text, text, user_answer, difficulty, flagged, created_at
`

type UpdateQuestionParams struct {
	ID         int64         `json:"id"`
	UserAnswer pgtype.Text   `json:"user_answer"`
	Difficulty pgtype.Float8 `json:"difficulty"`
	Flagged    pgtype.Bool   `json:"flagged"`
}

func (q *Queries) UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error) {
	row := q.db.QueryRow(ctx, updateQuestion,
		arg.ID,
		arg.UserAnswer,
		arg.Difficulty,
		arg.Flagged,
	)
	var i Question
	err := row.Scan(
		&i.ID,
		&i.SetID,
		&i.Type,
		&i.Text,
		&i.UserAnswer,
		&i.Difficulty,
		&i.Flagged,
		&i.CreatedAt,
	)
	return i, err
}
