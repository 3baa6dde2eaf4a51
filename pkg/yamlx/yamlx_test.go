package yamlx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearkit/bearkit/pkg/dictx"
	"github.com/bearkit/bearkit/pkg/yamlx"
)

const sampleYAML = `
server:
  listen:
    host: 0.0.0.0
    port: 8080
  tls: false
tags:
  - alpha
  - beta
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		data, err := yamlx.Load(writeTemp(t, sampleYAML))
		require.NoError(t, err)

		server, ok := data["server"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, server["tls"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yamlx.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := yamlx.Load(writeTemp(t, "a: [unclosed"))
		assert.ErrorIs(t, err, yamlx.ErrDecode)
	})
}

func TestLoadInto(t *testing.T) {
	t.Parallel()

	type listen struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}
	type cfg struct {
		Server struct {
			Listen listen `yaml:"listen"`
			TLS    bool   `yaml:"tls"`
		} `yaml:"server"`
		Tags []string `yaml:"tags"`
	}

	var c cfg
	require.NoError(t, yamlx.LoadInto(writeTemp(t, sampleYAML), &c))

	assert.Equal(t, "0.0.0.0", c.Server.Listen.Host)
	assert.Equal(t, 8080, c.Server.Listen.Port)
	assert.Equal(t, []string{"alpha", "beta"}, c.Tags)
}

func TestGetNested(t *testing.T) {
	t.Parallel()

	data, err := yamlx.Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	t.Run("deep scalar", func(t *testing.T) {
		t.Parallel()

		port, err := yamlx.GetNested(data, "server", "listen", "port")
		require.NoError(t, err)
		assert.Equal(t, 8080, port)
	})

	t.Run("missing key surfaces dictx error", func(t *testing.T) {
		t.Parallel()

		_, err := yamlx.GetNested(data, "server", "listen", "backlog")
		assert.True(t, dictx.IsKeyNotFoundError(err))
	})

	t.Run("scalar in the middle of the path", func(t *testing.T) {
		t.Parallel()

		_, err := yamlx.GetNested(data, "server", "tls", "deeper")
		require.Error(t, err)

		var nam *dictx.NotAMapError
		assert.ErrorAs(t, err, &nam)
	})
}

func TestSaveAndMarshal(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.yaml")
		original := map[string]any{
			"name":  "bearkit",
			"count": 3,
		}

		require.NoError(t, yamlx.Save(path, original))

		loaded, err := yamlx.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "bearkit", loaded["name"])
		assert.Equal(t, 3, loaded["count"])
	})

	t.Run("marshal to string", func(t *testing.T) {
		t.Parallel()

		s, err := yamlx.Marshal(map[string]any{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, "a: 1\n", s)
	})
}
