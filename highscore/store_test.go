package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	m := NewMemory()

	score, err := m.Load("nottetris")
	require.NoError(t, err)
	assert.Zero(t, score)

	require.NoError(t, m.Save("nottetris", 120))
	score, err = m.Load("nottetris")
	require.NoError(t, err)
	assert.Equal(t, 120, score)

	score, _ = m.Load("snake")
	assert.Zero(t, score, "games are keyed independently")
}

func TestFile(t *testing.T) {
	t.Run("missing file loads zero", func(t *testing.T) {
		f := NewFile(filepath.Join(t.TempDir(), "scores.json"))
		score, err := f.Load("nottetris")
		require.NoError(t, err)
		assert.Zero(t, score)
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "scores.json")
		f := NewFile(path)

		require.NoError(t, f.Save("nottetris", 300))
		require.NoError(t, f.Save("offroad", 42))

		reopened := NewFile(path)
		score, err := reopened.Load("nottetris")
		require.NoError(t, err)
		assert.Equal(t, 300, score)

		score, err = reopened.Load("offroad")
		require.NoError(t, err)
		assert.Equal(t, 42, score)
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		dir := t.TempDir()
		f := NewFile(filepath.Join(dir, "scores.json"))
		require.NoError(t, f.Save("nottetris", 10))
		require.NoError(t, f.Save("nottetris", 20))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "scores.json", entries[0].Name())
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewFile(path).Load("nottetris")
		assert.ErrorContains(t, err, "decode high scores")

		err = NewFile(path).Save("nottetris", 1)
		assert.Error(t, err)
	})
}
