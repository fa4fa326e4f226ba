package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugrc/stewardlink/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("source", "catalog").Int("rows", 12).Msg("read complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "read complete", entry["message"])
	assert.Equal(t, "catalog", entry["source"])
	assert.EqualValues(t, 12, entry["rows"])
	assert.Contains(t, entry, "time")
}

func TestDefaultLoggerReplaceable(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	var buf bytes.Buffer
	logging.SetDefault(logging.New(&buf))

	logging.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), logger)
	logging.FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	// Falls back to the default logger when nothing is stored.
	assert.NotNil(t, logging.FromContext(context.Background()))
	assert.NotNil(t, logging.FromContext(nil)) //nolint:staticcheck // intentional nil context
}

func TestNopDiscards(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, logging.Nop.GetLevel())
}
