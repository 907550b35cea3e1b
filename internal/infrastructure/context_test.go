package infrastructure

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTraceID(t *testing.T) {
	a := GenerateTraceID()
	b := GenerateTraceID()

	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestWithTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", GetTraceID(ctx))
}

func TestGetTraceIDAbsent(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetTraceID(nil))
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	id := GetTraceID(ctx)
	require.NotEmpty(t, id)

	// Already carrying an ID: context unchanged
	again := EnsureTraceID(ctx)
	assert.Equal(t, id, GetTraceID(again))
	assert.Same(t, ctx, again)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{level: "debug", want: "DEBUG"},
		{level: "info", want: "INFO"},
		{level: "warn", want: "WARN"},
		{level: "warning", want: "WARN"},
		{level: "error", want: "ERROR"},
		{level: "unknown", want: "INFO"},
		{level: "", want: "INFO"},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.level).String())
		})
	}
}
