package repository

import (
	"context"
	"fmt"
)

type pingStore interface {
	Ping(ctx context.Context) (int32, error)
}

// HealthRepository runs SELECT 1 against the store.
type HealthRepository struct {
	store pingStore
}

func NewHealthRepository(store pingStore) *HealthRepository {
	return &HealthRepository{store: store}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	v, err := r.store.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping store: %w", err)
	}
	if v != 1 {
		return fmt.Errorf("ping store: unexpected result %d", v)
	}
	return nil
}
