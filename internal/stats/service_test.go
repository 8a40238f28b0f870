package stats

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	sqlcgen "github.com/hossam20182020-ops/LLM-Based-Interview-Prep-Platform-prod/internal/db/sqlc"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context) (sqlcgen.GetStatsRow, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlcgen.GetStatsRow), args.Error(1)
}

type memoryCache struct {
	value   *Stats
	sets    int
	deletes int
	err     error
}

func (c *memoryCache) Get(context.Context) (*Stats, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.value, nil
}

func (c *memoryCache) Set(_ context.Context, s Stats) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	c.value = &s
	return nil
}

func (c *memoryCache) Delete(context.Context) error {
	c.deletes++
	c.value = nil
	return c.err
}

func row(avg *float64) sqlcgen.GetStatsRow {
	r := sqlcgen.GetStatsRow{TotalSets: 2, TotalQuestions: 5, FlaggedQuestions: 1}
	if avg != nil {
		r.AvgDifficulty = pgtype.Float8{Float64: *avg, Valid: true}
	}
	return r
}

func TestGetRoundsAverage(t *testing.T) {
	avg := 3.3333333
	store := &mockStore{}
	store.On("Get", mock.Anything).Return(row(&avg), nil)

	s, err := NewService(store, nil, zerolog.New(io.Discard)).Get(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, s.TotalSets)
	assert.EqualValues(t, 5, s.TotalQuestions)
	assert.EqualValues(t, 1, s.FlaggedQuestions)
	require.NotNil(t, s.AvgDifficulty)
	assert.Equal(t, 3.33, *s.AvgDifficulty)
}

func TestGetWithoutDifficultiesIsNull(t *testing.T) {
	store := &mockStore{}
	store.On("Get", mock.Anything).Return(row(nil), nil)

	s, err := NewService(store, nil, zerolog.New(io.Discard)).Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s.AvgDifficulty)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"avg_difficulty":null`)
}

func TestGetReadsThroughCache(t *testing.T) {
	avg := 4.0
	store := &mockStore{}
	store.On("Get", mock.Anything).Return(row(&avg), nil).Once()
	cache := &memoryCache{}
	svc := NewService(store, cache, zerolog.New(io.Discard))

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	second, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
	store.AssertNumberOfCalls(t, "Get", 1)

	svc.Invalidate(context.Background())
	assert.Equal(t, 1, cache.deletes)
	assert.Nil(t, cache.value)
}

func TestCacheErrorsDoNotFailRequests(t *testing.T) {
	store := &mockStore{}
	store.On("Get", mock.Anything).Return(row(nil), nil)
	cache := &memoryCache{err: errors.New("redis down")}
	svc := NewService(store, cache, zerolog.New(io.Discard))

	_, err := svc.Get(context.Background())
	assert.NoError(t, err)
	svc.Invalidate(context.Background())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.67, round2(2.6666))
	assert.Equal(t, 1.0, round2(1))
	assert.Equal(t, 4.5, round2(4.499999))
}

func TestHTTPGet(t *testing.T) {
	store := &mockStore{}
	store.On("Get", mock.Anything).Return(row(nil), nil).Once()
	store.On("Get", mock.Anything).Return(sqlcgen.GetStatsRow{}, errors.New("db down")).Once()
	h := NewHTTPHandler(NewService(store, nil, zerolog.New(io.Discard)), zerolog.New(io.Discard))

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_sets":2,"total_questions":5,"flagged_questions":1,"avg_difficulty":null}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
