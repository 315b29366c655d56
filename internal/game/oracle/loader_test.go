package oracle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/oracle"
)

const overrideYAML = `
weather:
  winter:
    1: Still and bitter
    2: Grey sky
    3: Flurries
    4: Deep drifts
    5: Whiteout
    6: Freezing fog
encounter:
  1: A lost traveller
  2: Wolves
  3: Sylvani scouts
  4: A trader
  5: Rockslide
  6: Abandoned camp
`

func TestLoadBook_OverridesNamedTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oracles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overrideYAML), 0o644))

	b, err := oracle.LoadBook(path)
	require.NoError(t, err)

	text, err := b.Weather(campaign.Winter, 3)
	require.NoError(t, err)
	assert.Equal(t, "Flurries", text)

	text, err = b.Weather(campaign.Spring, 1)
	require.NoError(t, err)
	assert.Equal(t, "Clear skies, warm breeze", text, "unnamed seasons keep built-in text")

	text, err = b.Lookup(oracle.Encounter, 2)
	require.NoError(t, err)
	assert.Equal(t, "Wolves", text)

	text, err = b.Lookup(oracle.Discovery, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ruins or abandoned structure", text)
}

func TestParseBook_Empty(t *testing.T) {
	b, err := oracle.ParseBook(nil)
	require.NoError(t, err)
	text, err := b.Weather(campaign.Winter, 3)
	require.NoError(t, err)
	assert.Equal(t, "Light snow", text)
}

func TestParseBook_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "treasure:\n  1: gold\n",
		"unknown season": "weather:\n  monsoon:\n    1: a\n",
		"incomplete":     "discovery:\n  1: a\n  2: b\n",
		"not yaml":       "weather: [unterminated",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := oracle.ParseBook([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadBook_MissingFile(t *testing.T) {
	_, err := oracle.LoadBook(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
