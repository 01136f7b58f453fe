package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPostgres_MapsSQLState(t *testing.T) {
	cases := map[string]ErrorCode{
		"23505": ErrorCodeDuplicateKey,
		"23503": ErrorCodeInvalidArgument,
		"23514": ErrorCodeValidation,
		"22P02": ErrorCodeInvalidArgument,
		"57014": ErrorCodeUnavailable,
		"40001": ErrorCodeDB,
		"XX000": ErrorCodeDB,
	}
	for state, want := range cases {
		err := FromPostgres(fmt.Errorf("exec: %w", &pgconn.PgError{Code: state}), "insert record")
		assert.Equal(t, want, CodeOf(err), state)
	}
}

func TestFromPostgres_AttachesColumn(t *testing.T) {
	err := FromPostgres(&pgconn.PgError{Code: "23502", ColumnName: "lote"}, "insert record")

	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "lote", e.Field())

	pgErr, ok := PgError(err)
	require.True(t, ok)
	assert.Equal(t, "23502", pgErr.Code)
}

func TestFromPostgres_NonPg(t *testing.T) {
	assert.NoError(t, FromPostgres(nil, "x"))

	err := FromPostgres(stderrs.New("dial tcp: refused"), "list records")
	assert.True(t, IsCode(err, ErrorCodeDB))
	_, ok := PgError(err)
	assert.False(t, ok)
}
