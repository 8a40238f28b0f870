package stats

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

// Stats are aggregate counters over all sets and questions.
type Stats struct {
	TotalSets        int64    `json:"total_sets"`
	TotalQuestions   int64    `json:"total_questions"`
	FlaggedQuestions int64    `json:"flagged_questions"`
	AvgDifficulty    *float64 `json:"avg_difficulty"`
}

// StatsCache is an optional read-through cache for Stats.
type StatsCache interface {
	Get(ctx context.Context) (*Stats, error)
	Set(ctx context.Context, s Stats) error
	Delete(ctx context.Context) error
}

type statsStore interface {
	Get(ctx context.Context) (sqlcgen.GetStatsRow, error)
}

// Service computes Stats, consulting the cache when one is configured.
// Cache failures are logged and never fail a request.
type Service struct {
	store  statsStore
	cache  StatsCache
	logger zerolog.Logger
}

func NewService(store statsStore, cache StatsCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *Service) Get(ctx context.Context) (Stats, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return *cached, nil
		}
	}

	row, err := s.store.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	out := fromRow(row)

	if s.cache != nil {
		if err := s.cache.Set(ctx, out); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return out, nil
}

// Invalidate drops the cached value after a write.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stats cache invalidation failed")
	}
}

func fromRow(row sqlcgen.GetStatsRow) Stats {
	out := Stats{
		TotalSets:        row.TotalSets,
		TotalQuestions:   row.TotalQuestions,
		FlaggedQuestions: row.FlaggedQuestions,
	}
	if row.AvgDifficulty.Valid {
		avg := round2(row.AvgDifficulty.Float64)
		out.AvgDifficulty = &avg
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
