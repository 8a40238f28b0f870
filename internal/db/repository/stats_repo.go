package repository

import (
	"context"
	"fmt"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

type statsStore interface {
	GetStats(ctx context.Context) (sqlcgen.GetStatsRow, error)
}

// StatsRepository reads aggregate counters over qa_sets and questions.
type StatsRepository struct {
	store statsStore
}

func NewStatsRepository(store statsStore) *StatsRepository {
	return &StatsRepository{store: store}
}

func (r *StatsRepository) Get(ctx context.Context) (sqlcgen.GetStatsRow, error) {
	row, err := r.store.GetStats(ctx)
	if err != nil {
		return sqlcgen.GetStatsRow{}, fmt.Errorf("aggregate stats: %w", err)
	}
	return row, nil
}
