package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disksched/disksched/sim"
)

func defaultsPath(t *testing.T) string {
	t.Helper()
	path := "defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "../defaults.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Skip("defaults.yaml not found, skipping integration test")
		}
	}
	return path
}

func TestLoadPreset_TextbookA_MatchesKnownTotals(t *testing.T) {
	// GIVEN the textbook-a preset from defaults.yaml
	spec, err := loadPreset(defaultsPath(t), "textbook-a")
	require.NoError(t, err)
	input, err := spec.Input()
	require.NoError(t, err)

	// WHEN FCFS and SSTF run over it
	fcfs, err := sim.AlgorithmSelector(input, int(sim.FCFS))
	require.NoError(t, err)
	sstf, err := sim.AlgorithmSelector(input, int(sim.SSTF))
	require.NoError(t, err)

	// THEN the totals are the well-known 644 and 236
	assert.Equal(t, 644, fcfs[0])
	assert.Equal(t, 236, sstf[0])
}

func TestLoadPreset_EveryPresetIsRunnable(t *testing.T) {
	path := defaultsPath(t)
	cfg, err := loadDefaultsConfig(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Presets)

	for _, name := range presetNames(cfg) {
		t.Run(name, func(t *testing.T) {
			spec, err := loadPreset(path, name)
			require.NoError(t, err)
			_, err = spec.ResolvedPolicies()
			require.NoError(t, err)
			input, err := spec.Input()
			require.NoError(t, err)
			_, err = sim.CompareAll(input, sim.AllPolicies())
			assert.NoError(t, err)
		})
	}
}

func TestLoadPreset_Unknown_ListsValidNames(t *testing.T) {
	_, err := loadPreset(defaultsPath(t), "no-such-preset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "textbook-a")
}

func TestLoadDefaultsConfig_UnknownField_Rejected(t *testing.T) {
	// GIVEN a defaults file with a misspelled preset field
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	body := "version: \"1\"\npresets:\n  x:\n    head: 1\n    tial: 9\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	// WHEN loaded
	_, err := loadDefaultsConfig(path)

	// THEN strict parsing rejects it
	assert.Error(t, err)
}

func TestLoadDefaultsConfig_MissingFile(t *testing.T) {
	_, err := loadDefaultsConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
