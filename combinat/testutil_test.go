package combinat_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgen/provider"
)

const seedDet = 42

func newProvider(t testing.TB, scale, secondary int) *provider.Provider {
	t.Helper()
	p, err := provider.New(provider.WithSeed64(seedDet), provider.WithScales(scale, secondary))
	require.NoError(t, err)

	return p
}

// naturals enumerates 0, 1, 2, ... forever.
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; yield(i); i++ {
		}
	}
}

// digits yields uniform values in [0, 9] from p.
func digits(p *provider.Provider) iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, _ := provider.Range(p, 0, 9)
			if !yield(v) {
				return
			}
		}
	}
}
