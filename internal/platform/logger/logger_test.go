package logger

import (
	"bytes"
	"context"
	"testing"

	kit "hidegrade/internal/platform/testkit"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" INFO ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.DebugLevel,
		"bogus":   zerolog.DebugLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestInit_RequestScopedFields(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{
		Level:        "info",
		Format:       "console",
		Service:      "hidegrade-test",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	ctx := WithRequest(context.Background(), "req-123", "")
	ctx = WithRequest(ctx, "", "owner-9")
	C(ctx).Info().Msg("ctx-msg")
	Named("records").Info().Msg("named-msg")

	out := buf.String()
	for _, want := range []string{"ctx-msg", "req-123", "owner_id=", "owner-9", "named-msg", "records", "hidegrade-test"} {
		kit.MustContain(t, out, want)
	}
}

func TestC_WithoutRequestFields(t *testing.T) {
	assert.NotNil(t, C(context.Background()))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "4")

	opt := FromEnv()
	assert.Equal(t, "warn", opt.Level)
	assert.Equal(t, "json", opt.Format)
	assert.True(t, opt.WithCaller)
	assert.Equal(t, 4, opt.SampleEvery)
}
