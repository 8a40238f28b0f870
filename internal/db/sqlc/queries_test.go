package sqlcgen

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	sql  string
	args []interface{}
}

type fakeRow struct {
	scan func(dest ...interface{}) error
}

func (r fakeRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

type fakeDB struct {
	calls []recordedCall
	tag   pgconn.CommandTag
	row   pgx.Row
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	return f.tag, nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	return nil, errors.New("not supported by fake")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	f.calls = append(f.calls, recordedCall{sql: sql, args: args})
	return f.row
}

func TestDeleteQuestionReportsRowsAffected(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("DELETE 1")}
	q := New(db)

	n, err := q.DeleteQuestion(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.Len(t, db.calls, 1)
	assert.Equal(t, []interface{}{int64(42)}, db.calls[0].args)
}

func TestCountQuestionsPassesNullableFilter(t *testing.T) {
	db := &fakeDB{row: fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*int64)) = 7
		return nil
	}}}
	q := New(db)

	filter := pgtype.Int8{Int64: 3, Valid: true}
	n, err := q.CountQuestions(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, []interface{}{filter}, db.calls[0].args)
	assert.Contains(t, db.calls[0].sql, "$1::bigint IS NULL")
}

func TestListQuestionsPropagatesQueryError(t *testing.T) {
	q := New(&fakeDB{})
	_, err := q.ListQuestions(context.Background(), ListQuestionsParams{Limit: 20})
	assert.Error(t, err)
}

func TestGetQuestionScansNoRows(t *testing.T) {
	db := &fakeDB{row: fakeRow{scan: func(dest ...interface{}) error { return pgx.ErrNoRows }}}
	_, err := New(db).GetQuestion(context.Background(), 1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
