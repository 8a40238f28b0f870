// source: qa_sets.sql

package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countQaSets = `-- name: CountQaSets :one
SELECT COUNT(*) FROM qa_sets
`

func (q *Queries) CountQaSets(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countQaSets)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createQaSet = `-- name: CreateQaSet :one
INSERT INTO qa_sets (job_title, name)
VALUES ($1, $2)
RETURNING id, job_title, name, created_at
`

type CreateQaSetParams struct {
	JobTitle string      `json:"job_title"`
	Name     pgtype.Text `json:"name"`
}

func (q *Queries) CreateQaSet(ctx context.Context, arg CreateQaSetParams) (QaSet, error) {
	row := q.db.QueryRow(ctx, createQaSet, arg.JobTitle, arg.Name)
	var i QaSet
	err := row.Scan(
		&i.ID,
		&i.JobTitle,
		&i.Name,
		&i.CreatedAt,
	)
	return i, err
}

const deleteQaSet = `-- name: DeleteQaSet :execrows
DELETE FROM qa_sets WHERE id = $1
`

func (q *Queries) DeleteQaSet(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteQaSet, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getQaSet = `-- name: GetQaSet :one
SELECT id, job_title, name, created_at FROM qa_sets WHERE id = $1
`

func (q *Queries) GetQaSet(ctx context.Context, id int64) (QaSet, error) {
	row := q.db.QueryRow(ctx, getQaSet, id)
	var i QaSet
	err := row.Scan(
		&i.ID,
		&i.JobTitle,
		&i.Name,
		&i.CreatedAt,
	)
	return i, err
}

const listQaSets = `-- name: ListQaSets :many
SELECT s.id, s.job_title, s.name, s.created_at, COUNT(q.id) AS question_count
FROM qa_sets s
LEFT JOIN questions q ON q.set_id = s.id
GROUP BY s.id
ORDER BY s.created_at DESC, s.id DESC
LIMIT $1 OFFSET $2
`

type ListQaSetsParams struct {
	Limit  int64 `json:"limit"`
	Offset int64 `json:"offset"`
}

type ListQaSetsRow struct {
	ID            int64              `json:"id"`
	JobTitle      string             `json:"job_title"`
	Name          pgtype.Text        `json:"name"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	QuestionCount int64              `json:"question_count"`
}

func (q *Queries) ListQaSets(ctx context.Context, arg ListQaSetsParams) ([]ListQaSetsRow, error) {
	rows, err := q.db.Query(ctx, listQaSets, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListQaSetsRow{}
	for rows.Next() {
		var i ListQaSetsRow
		if err := rows.Scan(
			&i.ID,
			&i.JobTitle,
			&i.Name,
			&i.CreatedAt,
			&i.QuestionCount,
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

const ping = `-- name: Ping :one
SELECT 1::int4
`

func (q *Queries) Ping(ctx context.Context) (int32, error) {
	row := q.db.QueryRow(ctx, ping)
	var column_1 int32
	err := row.Scan(&column_1)
	return column_1, err
}
