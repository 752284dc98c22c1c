package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("built-ins", func(t *testing.T) {
		assert.NoError(t, run(nil))
	})

	t.Run("valid pack", func(t *testing.T) {
		path := write("ok.yaml", `cards: [{ id: x1, left: "Calm", right: "Chaotic" }]`)
		assert.NoError(t, run([]string{path}))
	})

	t.Run("clashing id", func(t *testing.T) {
		path := write("clash.yaml", `cards: [{ id: b01, left: "Calm", right: "Chaotic" }]`)
		assert.Error(t, run([]string{path}))
	})

	t.Run("blank label", func(t *testing.T) {
		path := write("blank.yaml", `cards: [{ id: x2, left: "", right: "Chaotic" }]`)
		assert.Error(t, run([]string{path}))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, run([]string{filepath.Join(dir, "nope.yaml")}))
	})
}
