package sqlcgen

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type QaSet struct {
	ID        int64              `json:"id"`
	JobTitle  string             `json:"job_title"`
	Name      pgtype.Text        `json:"name"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

type Question struct {
	ID         int64              `json:"id"`
	SetID      int64              `json:"set_id"`
	Type       string             `json:"type"`
	Text       string             `json:"text"`
	UserAnswer pgtype.Text        `json:"user_answer"`
	Difficulty pgtype.Float8      `json:"difficulty"`
	Flagged    bool               `json:"flagged"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}
