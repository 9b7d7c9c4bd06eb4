package provider_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgen/isaac"
	"github.com/katalvlaran/lvgen/provider"
)

func u64(v uint64) *uint64 { return &v }

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LVGEN_SEED", "42")
	t.Setenv("LVGEN_SCALE", "5")

	cfg, err := provider.ConfigFromEnv(provider.DefaultEnvPrefix)
	require.NoError(t, err)
	want := provider.Config{Seed: u64(42), Scale: 5, SecondaryScale: provider.DefaultSecondaryScale}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("ConfigFromEnv mismatch (-want +got):\n%s", diff)
	}

	p, err := provider.NewFromEnv()
	require.NoError(t, err)
	assert.True(t, p.Equal(newProvider(t, 42, 5, provider.DefaultSecondaryScale)))
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("TEST_SCALE", "many")
	_, err := provider.ConfigFromEnv("TEST_")
	assert.ErrorIs(t, err, provider.ErrInvalidConfig)
}

func TestConfigFromYAML(t *testing.T) {
	cfg, err := provider.ConfigFromYAML([]byte("seed: 7\nscale: 3\n"))
	require.NoError(t, err)
	want := provider.Config{Seed: u64(7), Scale: 3, SecondaryScale: provider.DefaultSecondaryScale}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("ConfigFromYAML mismatch (-want +got):\n%s", diff)
	}

	_, err = provider.ConfigFromYAML([]byte("scale: [1, 2]"))
	assert.ErrorIs(t, err, provider.ErrInvalidConfig)
}

func TestConfigFromMap(t *testing.T) {
	cfg, err := provider.ConfigFromMap(map[string]any{"seed": 9, "secondary_scale": 1})
	require.NoError(t, err)
	want := provider.Config{Seed: u64(9), Scale: provider.DefaultScale, SecondaryScale: 1}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("ConfigFromMap mismatch (-want +got):\n%s", diff)
	}

	_, err = provider.ConfigFromMap(map[string]any{"seeed": 9})
	assert.ErrorIs(t, err, provider.ErrInvalidConfig, "unknown keys are rejected")
}

func TestConfig_Validate(t *testing.T) {
	words := make([]uint32, isaac.SeedSize)
	tests := []struct {
		name string
		cfg  provider.Config
		want error
	}{
		{"defaults", provider.DefaultConfig(), nil},
		{"seed words", provider.Config{SeedWords: words, Scale: 1}, nil},
		{"both seeds", provider.Config{Seed: u64(1), SeedWords: words}, provider.ErrInvalidConfig},
		{"short words", provider.Config{SeedWords: words[:4]}, provider.ErrInvalidSeed},
		{"negative scale", provider.Config{Scale: -1}, provider.ErrInvalidScale},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			_, err = provider.NewFromConfig(tc.cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromConfig_SeedWords(t *testing.T) {
	seed := provider.SeedFromUint64(3)
	p, err := provider.NewFromConfig(provider.Config{SeedWords: seed, Scale: 4, SecondaryScale: 2})
	require.NoError(t, err)
	assert.True(t, p.Equal(newProvider(t, 3, 4, 2)))
}
