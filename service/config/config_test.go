package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "config.yaml")
	data := `
seed:
  items:
    - hola
    - mundo
`
	require.NoError(t, os.WriteFile(location, []byte(data), 0644))

	cfg, err := Load(location)
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.EqualValues(t, []string{"hola", "mundo"}, cfg.Seed.Items)
	assert.Nil(t, cfg.Server)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(location, []byte("seed: [unclosed"), 0644))
	_, err = Load(location)
	assert.Error(t, err)
}
