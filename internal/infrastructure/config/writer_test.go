package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestEncodeTOML_SortedSections(t *testing.T) {
	data, err := EncodeTOML(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"[docking]", "[layout]", "[logging]", "[viewport]"},
		sectionHeaders(string(data)))
	assert.Contains(t, string(data), "zone_margin = 0.3")
}

func TestEncodeTOML_NilConfig(t *testing.T) {
	_, err := EncodeTOML(nil)
	require.Error(t, err)
}

func TestWriteConfigOrdered_RoundTripsThroughViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Docking.ZoneMargin = 0.2
	cfg.Layout.Preset = "single"
	require.NoError(t, WriteConfigOrdered(cfg, path))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	var got Config
	require.NoError(t, v.Unmarshal(&got))
	assert.Equal(t, *cfg, got)
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'dock'

[viewport]
width = 800.0

[docking]
zone_margin = 0.3

  [docking.advanced]
  snap = true
`

	result := sortTOMLSections(input)

	assert.True(t, strings.HasPrefix(result, "title = 'dock'\n\n"))
	assert.Equal(t,
		[]string{"[docking]", "[docking.advanced]", "[viewport]"},
		sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "width = 800.0\n"))
}

func TestManager_CreatesOrderedDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	data, err := os.ReadFile(mgr.GetConfigFile())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"[docking]", "[layout]", "[logging]", "[viewport]"},
		sectionHeaders(string(data)))
}
