package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	f := New()

	require.NoError(t, f.MkdirAll(dir))
	exists, err := f.DirExists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	// Already present.
	assert.NoError(t, f.MkdirAll(dir))
}

func TestDirExists(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name   string
		path   string
		expect bool
	}{
		{name: "directory", path: tmp, expect: true},
		{name: "regular file", path: file, expect: false},
		{name: "missing", path: filepath.Join(tmp, "missing"), expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := New().DirExists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, exists)
		})
	}
}
