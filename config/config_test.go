package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/isostrategy/strategy"
)

const basicConfig = `# A basic configuration example.
[Logging]
  File = "isostrategy.log"
  Level = "debug"

[[Strategy]]
  Preset = "A"

[[Strategy]]
  Name = "balanced"
  LeafCount = 10
  MulCost = 1.0
  IsoCost = 1.0
`

func TestConfig(t *testing.T) {

	t.Run("Empty", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultLogLevel, cfg.Logging.Level)

		params, err := cfg.Parameters()
		require.NoError(t, err)
		require.Len(t, params, len(strategy.PresetNames()))
		for i, name := range strategy.PresetNames() {
			lit, err := strategy.Preset(name)
			require.NoError(t, err)
			require.Equal(t, name, params[i].Name)
			require.Equal(t, lit, params[i].ParametersLiteral())
		}
	})

	t.Run("Basic", func(t *testing.T) {
		cfg, err := Load([]byte(basicConfig))
		require.NoError(t, err)
		require.Equal(t, "isostrategy.log", cfg.Logging.File)
		require.Equal(t, "DEBUG", cfg.Logging.Level)

		params, err := cfg.Parameters()
		require.NoError(t, err)
		require.Len(t, params, 2)
		require.Equal(t, "A", params[0].Name)
		require.Equal(t, 185, params[0].LeafCount())
		require.Equal(t, "balanced", params[1].Name)
		require.Equal(t, strategy.ParametersLiteral{LeafCount: 10, MulCost: 1, IsoCost: 1}, params[1].ParametersLiteral())
	})

	t.Run("Idempotent", func(t *testing.T) {
		cfg, err := Load([]byte(basicConfig))
		require.NoError(t, err)
		require.NoError(t, cfg.FixupAndValidate())
		require.Len(t, cfg.Strategy, 2)
		require.Equal(t, "A", cfg.Strategy[0].Name)
	})

	t.Run("File", func(t *testing.T) {
		f := filepath.Join(t.TempDir(), "isostrategy.toml")
		require.NoError(t, os.WriteFile(f, []byte(basicConfig), 0600))
		cfg, err := LoadFile(f)
		require.NoError(t, err)
		require.Len(t, cfg.Strategy, 2)

		_, err = LoadFile("")
		require.Error(t, err)
	})

	t.Run("DefaultName", func(t *testing.T) {
		cfg, err := Load([]byte("[[Strategy]]\nLeafCount = 8\nMulCost = 1.0\nIsoCost = 2.0\n"))
		require.NoError(t, err)
		require.Equal(t, "n=8,p=1,q=2", cfg.Strategy[0].Name)
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, body := range map[string]string{
			"UnknownKey":   "[[Strategy]]\nPreset = \"A\"\nLeaves = 3\n",
			"UnknownLevel": "[Logging]\nLevel = \"LOUD\"\n",
			"Duplicate":    "[[Strategy]]\nPreset = \"A\"\n[[Strategy]]\nPreset = \"A\"\n",
			"Exclusive":    "[[Strategy]]\nPreset = \"A\"\nLeafCount = 10\n",
			"UnknownSet":   "[[Strategy]]\nPreset = \"C\"\n",
			"Syntax":       "[[Strategy]\n",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := Load([]byte(body))
				require.Error(t, err)
			})
		}
	})

	t.Run("TooFewLeaves", func(t *testing.T) {
		_, err := Load([]byte("[[Strategy]]\nLeafCount = 2\nMulCost = 1.0\nIsoCost = 1.0\n"))
		require.True(t, errors.Is(err, strategy.ErrInvalidArgument))
	})
}
