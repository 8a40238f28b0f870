package question

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/repository"
	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

// Generator produces candidate questions for a job title. Implementations
// never fail: they fall back to FallbackDrafts instead.
type Generator interface {
	Generate(ctx context.Context, jobTitle string) []Draft
}

// ChangeNotifier is told after every committed mutation (stats cache invalidation).
type ChangeNotifier interface {
	Invalidate(ctx context.Context)
}

type setStore interface {
	Create(ctx context.Context, params repository.CreateSetParams) (sqlcgen.QaSet, []sqlcgen.Question, error)
	Get(ctx context.Context, id int64) (sqlcgen.QaSet, []sqlcgen.Question, error)
	Page(ctx context.Context, limit, offset int64) (int64, []sqlcgen.ListQaSetsRow, error)
	Delete(ctx context.Context, id int64) error
}

type questionStore interface {
	Page(ctx context.Context, setID *int64, limit, offset int64) (int64, []sqlcgen.Question, error)
	Update(ctx context.Context, params sqlcgen.UpdateQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int64) error
}

// Service implements set creation, listing, partial updates, deletes and generation.
type Service struct {
	sets      setStore
	questions questionStore
	generator Generator
	notifier  ChangeNotifier
	logger    zerolog.Logger
}

type ServiceOptions struct {
	Generator Generator
	Notifier  ChangeNotifier
	Logger    zerolog.Logger
}

func NewService(sets setStore, questions questionStore, opts ServiceOptions) *Service {
	return &Service{
		sets:      sets,
		questions: questions,
		generator: opts.Generator,
		notifier:  opts.Notifier,
		logger:    opts.Logger.With().Str("component", "question_service").Logger(),
	}
}

// Generate validates the title and returns candidate questions. Generation
// problems never surface; only an invalid title is an error.
func (s *Service) Generate(ctx context.Context, jobTitle string) ([]Draft, error) {
	title, err := NormalizeJobTitle(jobTitle)
	if err != nil {
		return nil, err
	}
	if s.generator == nil {
		return FallbackDrafts(title), nil
	}
	drafts := s.generator.Generate(ctx, title)
	if len(drafts) == 0 {
		return FallbackDrafts(title), nil
	}
	return drafts, nil
}

// CreateSet persists a set and its questions atomically.
func (s *Service) CreateSet(ctx context.Context, in CreateSetInput) (Set, error) {
	title, err := NormalizeJobTitle(in.JobTitle)
	if err != nil {
		return Set{}, err
	}
	name, err := normalizeName(in.Name)
	if err != nil {
		return Set{}, err
	}
	drafts, err := normalizeDrafts(in.Questions)
	if err != nil {
		return Set{}, err
	}

	params := repository.CreateSetParams{
		JobTitle:  title,
		Questions: make([]repository.NewQuestion, 0, len(drafts)),
	}
	if name != nil {
		params.Name = pgtype.Text{String: *name, Valid: true}
	}
	for _, d := range drafts {
		params.Questions = append(params.Questions, repository.NewQuestion{Type: d.Type, Text: d.Text})
	}

	row, rows, err := s.sets.Create(ctx, params)
	if err != nil {
		return Set{}, fmt.Errorf("create set: %w", err)
	}
	s.changed(ctx)

	s.logger.Info().Int64("set_id", row.ID).Int("questions", len(rows)).Msg("question set created")
	return toSet(row, rows), nil
}

// GetSet returns a set with its questions.
func (s *Service) GetSet(ctx context.Context, id int64) (Set, error) {
	row, rows, err := s.sets.Get(ctx, id)
	if err != nil {
		return Set{}, fmt.Errorf("get set %d: %w", id, err)
	}
	return toSet(row, rows), nil
}

// ListSets pages through sets, newest first.
func (s *Service) ListSets(ctx context.Context, page, size int) (Page[SetSummary], error) {
	if err := ValidatePage(page, size); err != nil {
		return Page[SetSummary]{}, err
	}
	total, rows, err := s.sets.Page(ctx, int64(size), pageOffset(page, size))
	if err != nil {
		return Page[SetSummary]{}, err
	}

	out := Page[SetSummary]{
		Items: make([]SetSummary, 0, len(rows)),
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pageCount(total, size),
	}
	for _, r := range rows {
		out.Items = append(out.Items, SetSummary{
			ID:            r.ID,
			JobTitle:      r.JobTitle,
			Name:          textPtr(r.Name),
			CreatedAt:     r.CreatedAt.Time,
			QuestionCount: r.QuestionCount,
		})
	}
	return out, nil
}

// DeleteSet removes a set and all of its questions.
func (s *Service) DeleteSet(ctx context.Context, id int64) error {
	if err := s.sets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete set %d: %w", id, err)
	}
	s.changed(ctx)
	s.logger.Info().Int64("set_id", id).Msg("question set deleted")
	return nil
}

// List returns questions newest first, optionally restricted to one set.
// A page past the last one yields no items rather than an error.
func (s *Service) List(ctx context.Context, p ListParams) (Page[Question], error) {
	if err := ValidatePage(p.Page, p.Size); err != nil {
		return Page[Question]{}, err
	}
	total, rows, err := s.questions.Page(ctx, p.SetID, int64(p.Size), pageOffset(p.Page, p.Size))
	if err != nil {
		return Page[Question]{}, err
	}

	out := Page[Question]{
		Items: make([]Question, 0, len(rows)),
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: pageCount(total, p.Size),
	}
	for _, r := range rows {
		out.Items = append(out.Items, toQuestion(r))
	}
	return out, nil
}

// UpdateQuestion applies only the fields present in patch.
func (s *Service) UpdateQuestion(ctx context.Context, id int64, patch Patch) (Question, error) {
	params := sqlcgen.UpdateQuestionParams{ID: id}
	if patch.Difficulty != nil {
		if err := ValidateDifficulty(*patch.Difficulty); err != nil {
			return Question{}, err
		}
		params.Difficulty = pgtype.Float8{Float64: *patch.Difficulty, Valid: true}
	}
	if patch.UserAnswer != nil {
		params.UserAnswer = pgtype.Text{String: *patch.UserAnswer, Valid: true}
	}
	if patch.Flagged != nil {
		params.Flagged = pgtype.Bool{Bool: *patch.Flagged, Valid: true}
	}

	row, err := s.questions.Update(ctx, params)
	if err != nil {
		return Question{}, fmt.Errorf("update question %d: %w", id, err)
	}
	s.changed(ctx)
	return toQuestion(row), nil
}

// DeleteQuestion removes a single question.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	if err := s.questions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.changed(ctx)
	return nil
}

func (s *Service) changed(ctx context.Context) {
	if s.notifier != nil {
		s.notifier.Invalidate(ctx)
	}
}

func toSet(row sqlcgen.QaSet, rows []sqlcgen.Question) Set {
	set := Set{
		ID:        row.ID,
		JobTitle:  row.JobTitle,
		Name:      textPtr(row.Name),
		CreatedAt: row.CreatedAt.Time,
		Questions: make([]Question, 0, len(rows)),
	}
	for _, r := range rows {
		set.Questions = append(set.Questions, toQuestion(r))
	}
	return set
}

func toQuestion(row sqlcgen.Question) Question {
	q := Question{
		ID:         row.ID,
		SetID:      row.SetID,
		Type:       row.Type,
		Text:       row.Text,
		UserAnswer: textPtr(row.UserAnswer),
		Flagged:    row.Flagged,
		CreatedAt:  row.CreatedAt.Time,
	}
	if row.Difficulty.Valid {
		d := row.Difficulty.Float64
		q.Difficulty = &d
	}
	return q
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
