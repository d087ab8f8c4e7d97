package logger

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

func newBufferedLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return New(Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: buf}), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestInfoCarriesServiceAndContextFields(t *testing.T) {
	logg, buf := newBufferedLogger(t)

	ctx := logg.WithFields(context.Background(), map[string]any{"date": "2025-03-01"})
	ctx = logg.WithRequestID(ctx, "req-1")
	logg.Info(ctx, "sales.batch.recorded")

	entry := decodeLine(t, buf)
	assert.Equal(t, "test", entry["service"])
	assert.Equal(t, "2025-03-01", entry["date"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "sales.batch.recorded", entry["message"])
}

func TestErrorIncludesStack(t *testing.T) {
	logg, buf := newBufferedLogger(t)

	logg.Error(context.Background(), "boom", errors.New("db gone"))

	entry := decodeLine(t, buf)
	assert.Equal(t, "db gone", entry["error"])
	assert.NotEmpty(t, entry["stack"])
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
}
