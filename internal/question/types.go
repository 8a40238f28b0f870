package question

import (
	"time"
)

// Question types accepted by storage and produced by the generator.
const (
	TypeTechnical  = "technical"
	TypeBehavioral = "behavioral"
)

// Input limits.
const (
	MaxJobTitleLength = 50
	MaxSetNameLength  = 200
	MinDifficulty     = 1.0
	MaxDifficulty     = 5.0
	DefaultPage       = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// Draft is an unsaved question: generator output and set-creation input.
type Draft struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Question is a stored interview prompt.
type Question struct {
	ID         int64     `json:"id"`
	SetID      int64     `json:"set_id"`
	Type       string    `json:"type"`
	Text       string    `json:"text"`
	UserAnswer *string   `json:"user_answer"`
	Difficulty *float64  `json:"difficulty"`
	Flagged    bool      `json:"flagged"`
	CreatedAt  time.Time `json:"created_at"`
}

// Set is a question set with its questions in creation order.
type Set struct {
	ID        int64      `json:"id"`
	JobTitle  string     `json:"job_title"`
	Name      *string    `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `json:"questions"`
}

// SetSummary is a row of the set listing.
type SetSummary struct {
	ID            int64     `json:"id"`
	JobTitle      string    `json:"job_title"`
	Name          *string   `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int64     `json:"question_count"`
}

// CreateSetInput is the payload for creating a set with its questions.
type CreateSetInput struct {
	JobTitle  string
	Name      *string
	Questions []Draft
}

// Patch carries the optional fields of a partial question update.
type Patch struct {
	UserAnswer *string
	Difficulty *float64
	Flagged    *bool
}

// ListParams selects one page of questions.
type ListParams struct {
	SetID *int64
	Page  int
	Size  int
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int64 `json:"pages"`
}
