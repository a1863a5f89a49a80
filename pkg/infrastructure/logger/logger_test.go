package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_JSON(t *testing.T) {
	t.Cleanup(SetNop)

	var buf bytes.Buffer
	require.NoError(t, Init(&buf, "info", true))

	With(String("catalog", "parts")).Info(context.Background(), "part added", Int("part_id", 7))
	Debug(context.Background(), "dropped below level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "part added", entry["msg"])
	assert.Equal(t, "parts", entry["catalog"])
	assert.EqualValues(t, 7, entry["part_id"])
}

func TestInit_UnknownLevel(t *testing.T) {
	t.Cleanup(SetNop)

	err := Init(&bytes.Buffer{}, "loud", false)
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}
