package provider_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgen/provider"
)

// seedDet is the default fixed seed of the package tests.
const seedDet = 42

// newProvider builds a seeded Provider or fails the test.
func newProvider(t testing.TB, seed uint64, scale, secondary int) *provider.Provider {
	t.Helper()
	p, err := provider.New(provider.WithSeed64(seed), provider.WithScales(scale, secondary))
	require.NoError(t, err)

	return p
}

// words draws n raw words.
func words(p *provider.Provider, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = p.Uint32()
	}
	return out
}
