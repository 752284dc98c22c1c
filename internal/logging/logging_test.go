package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("info", "json", &buf)
		require.NoError(t, err)

		log.Debug().Msg("hidden")
		log.Info().Str("room", "ABCD").Msg("room created")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "ABCD", entry["room"])
		assert.Equal(t, "room created", entry["message"])
		assert.Contains(t, entry, "time")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := New("DEBUG", "text", &buf)
		require.NoError(t, err)

		log.Debug().Msg("dial moved")
		assert.Contains(t, buf.String(), "dial moved")
		assert.NotContains(t, buf.String(), "{")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New("loud", "json", &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New("info", "xml", &bytes.Buffer{})
		assert.Error(t, err)
	})
}
