package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	assert.Equal(t, "select 1", compact("  select   1  "))
	assert.Equal(t, "SELECT * FROM t WHERE a = 1", compact("SELECT\t*\nFROM\r\tt WHERE  a =  1"))
	assert.Equal(t, "", compact("\n\t "))
}

func TestTracer_LevelFollowsOutcome(t *testing.T) {
	cases := []struct {
		name  string
		ev    QueryEvent
		level string
	}{
		{"plain", QueryEvent{SQL: "select 1", ElapsedUS: 1500}, "info"},
		{"slow", QueryEvent{SQL: "select pg_sleep(1)", Slow: true}, "warn"},
		{"failed", QueryEvent{SQL: "select nope", Err: errors.New("boom"), Slow: true}, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			// root level above error, the tracer must still emit
			Tracer(zerolog.New(&buf).Level(zerolog.Disabled)).OnQuery(context.Background(), tc.ev)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tc.level, line["level"])
			assert.Equal(t, "pg", line["component"])
			assert.Equal(t, compact(tc.ev.SQL), line["sql"])
		})
	}
}
