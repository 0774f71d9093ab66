package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv(_envConfigDir, "")

	provider, err := NewConfig()
	require.NoError(t, err)
	require.NotNil(t, provider)

	config := provider.(Config)
	assert.Equal(t, "config", config.Name())

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "pipe environment variable", path: "sockpuppet.pipeEnv", expected: "VSCODE_SOCKPUPPET_PIPE"},
		{name: "framing", path: "sockpuppet.framing", expected: "line"},
		{name: "logging level", path: "logging.level", expected: "warn"},
		{name: "output channel", path: "automation.outputChannel", expected: "Go Automation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := config.Get(tt.path)
			assert.True(t, value.HasValue())
			assert.Equal(t, tt.expected, value.String())
		})
	}

	var timeout time.Duration
	require.NoError(t, config.Get("automation.statusBarTimeout").Populate(&timeout))
	assert.Equal(t, 5*time.Second, timeout)

	assert.False(t, config.Get("nonexistent.path").HasValue())
}

func TestNewConfig_Overrides(t *testing.T) {
	tempDir := t.TempDir()

	meta := "files:\n  - base.yaml\n  - local.yaml\n  - missing.yaml\n"
	base := "sockpuppet:\n  framing: header\nlogging:\n  level: info\n"
	local := "logging:\n  level: ${SOCKPUPPET_TEST_LEVEL:debug}\n"

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "meta.yaml"), []byte(meta), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "base.yaml"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "local.yaml"), []byte(local), 0o644))

	t.Run("later files override earlier ones", func(t *testing.T) {
		t.Setenv(_envConfigDir, tempDir)
		provider, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "header", provider.Get("sockpuppet.framing").String())
		assert.Equal(t, "debug", provider.Get("logging.level").String())
		// Keys not overridden keep their embedded default.
		assert.Equal(t, "VSCODE_SOCKPUPPET_PIPE", provider.Get("sockpuppet.pipeEnv").String())
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv(_envConfigDir, tempDir)
		t.Setenv("SOCKPUPPET_TEST_LEVEL", "error")
		provider, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, "error", provider.Get("logging.level").String())
	})
}

func TestNewConfig_MetaEntries(t *testing.T) {
	t.Run("empty meta file keeps defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "meta.yaml"), nil, 0o644))
		t.Setenv(_envConfigDir, tempDir)

		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "line", provider.Get("sockpuppet.framing").String())
	})

	t.Run("entries expand environment variables", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "meta.yaml"), []byte("files:\n  - ${SOCKPUPPET_TEST_PROFILE}.yaml\n"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "ci.yaml"), []byte("sockpuppet:\n  framing: header\n"), 0o644))
		t.Setenv(_envConfigDir, tempDir)
		t.Setenv("SOCKPUPPET_TEST_PROFILE", "ci")

		provider, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "header", provider.Get("sockpuppet.framing").String())
	})
}

func TestNewConfig_Errors(t *testing.T) {
	t.Run("missing meta file", func(t *testing.T) {
		t.Setenv(_envConfigDir, filepath.Join(t.TempDir(), "nonexistent"))
		provider, err := NewConfig()
		assert.Error(t, err)
		assert.Nil(t, provider)
	})

	t.Run("unknown meta key", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "meta.yaml"), []byte("fiels:\n  - base.yaml\n"), 0o644))
		t.Setenv(_envConfigDir, tempDir)

		provider, err := NewConfig()
		assert.ErrorContains(t, err, "meta.yaml")
		assert.Nil(t, provider)
	})

	t.Run("meta file without files list", func(t *testing.T) {
		tempDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, "meta.yaml"), []byte("files: 12\n"), 0o644))
		t.Setenv(_envConfigDir, tempDir)

		provider, err := NewConfig()
		assert.Error(t, err)
		assert.Nil(t, provider)
	})
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
