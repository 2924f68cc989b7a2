package dynarray

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).WithRank(2)

	logger.LogRealloc([]int{1, 1}, []int{2, 2}, 4)
	logger.LogInsert(0, []int{1, 0}, []int{2, 2}, nil)
	logger.LogResize([]int{2, 2}, []int{-1, 2}, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "buffer reallocated", lines[0]["msg"])
	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, float64(2), lines[0]["rank"])
	assert.Equal(t, float64(4), lines[0]["cells"])

	assert.Equal(t, "insert completed", lines[1]["msg"])
	assert.Equal(t, float64(0), lines[1]["axis"])

	assert.Equal(t, "resize failed", lines[2]["msg"])
	assert.Equal(t, "ERROR", lines[2]["level"])
	assert.Equal(t, "boom", lines[2]["error"])
}

func TestLogger_Array(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	a, err := New[int](2, WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, a.Resize(2, 2))
	assert.Zero(t, buf.Len(), "debug records are filtered at info level")

	require.Error(t, a.Insert(nil, 0, 0, 0))
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "insert failed", lines[0]["msg"])
	assert.Equal(t, float64(2), lines[0]["rank"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotPanics(t, func() {
		logger.LogInsert(0, nil, nil, errors.New("ignored"))
	})
	assert.NotNil(t, NewLogger(nil))
}
