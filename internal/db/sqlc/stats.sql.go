// source: stats.sql

package sqlcgen

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getStats = `-- name: GetStats :one
SELECT
    (SELECT COUNT(*) FROM qa_sets)::bigint                     AS total_sets,
    COUNT(q.id)::bigint                                        AS total_questions,
    COUNT(q.id) FILTER (WHERE q.flagged)::bigint               AS flagged_questions,
    AVG(q.difficulty)::float8                                  AS avg_difficulty
FROM questions q
`

type GetStatsRow struct {
	TotalSets        int64         `json:"total_sets"`
	TotalQuestions   int64         `json:"total_questions"`
	FlaggedQuestions int64         `json:"flagged_questions"`
	AvgDifficulty    pgtype.Float8 `json:"avg_difficulty"`
}

func (q *Queries) GetStats(ctx context.Context) (GetStatsRow, error) {
	row := q.db.QueryRow(ctx, getStats)
	var i GetStatsRow
	err := row.Scan(
		&i.TotalSets,
		&i.TotalQuestions,
		&i.FlaggedQuestions,
		&i.AvgDifficulty,
	)
	return i, err
}
