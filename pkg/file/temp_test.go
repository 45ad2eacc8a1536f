package file_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fetchkit/pkg/file"
)

func TestTempPath(t *testing.T) {
	t.Parallel()

	t.Run("lives in temp dir, not created", func(t *testing.T) {
		t.Parallel()
		path, err := file.TempPath("")
		require.NoError(t, err)

		assert.Equal(t, os.TempDir(), filepath.Dir(path))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("extension hint appended", func(t *testing.T) {
		t.Parallel()
		withDot, err := file.TempPath(".png")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(withDot, ".png"))

		withoutDot, err := file.TempPath("png")
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(withoutDot, ".png"))
	})

	t.Run("name is base32 without padding", func(t *testing.T) {
		t.Parallel()
		path, err := file.TempPath("")
		require.NoError(t, err)

		name := filepath.Base(path)
		// 20 bytes -> 32 base32 characters, no "=" padding.
		assert.Len(t, name, 32)
		assert.NotContains(t, name, "=")
	})

	t.Run("no collisions across 10000 samples", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			path, err := file.TempPath(".png")
			require.NoError(t, err)
			require.False(t, seen[path], "duplicate temp path %s", path)
			seen[path] = true
		}
	})
}
