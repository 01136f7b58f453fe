package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"hidegrade/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dsn = "postgres://u:p@h:5432/db?sslmode=disable"

func TestOpen_BadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{URL: "://bad"}, nil, nil)
	require.Error(t, err)
}

func TestOpen_PoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	_, err := Open(context.Background(), Config{URL: dsn}, nil, nil)
	require.Error(t, err)
}

func TestOpen_AppliesConfigAndMutator(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, pc *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = pc
		// zero value pool, never closed
		return &pgxpool.Pool{}, nil
	})

	p, err := Open(context.Background(), Config{URL: dsn, AppName: "hidegrade-api", MaxConns: 7, SlowMs: 250}, nil, func(pc *pgxpool.Config) {
		pc.MaxConnIdleTime = 42 * time.Second
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, seen.MaxConns)
	assert.Equal(t, "hidegrade-api", seen.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, 42*time.Second, seen.MaxConnIdleTime)
	assert.Equal(t, 250, p.SlowMs)
}

func TestClose_NilSafe(t *testing.T) {
	var p *PG
	p.Close()
	(&PG{}).Close()
}
