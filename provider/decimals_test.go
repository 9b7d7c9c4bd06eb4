package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgen/numeric"
	"github.com/katalvlaran/lvgen/provider"
)

// TestBigDecimal_CanonicalReparse checks that canonical output survives a
// String/Parse round trip and carries no redundant trailing zero.
func TestBigDecimal_CanonicalReparse(t *testing.T) {
	p := newProvider(t, seedDet, 8, 2)
	for i := 0; i < 3000; i++ {
		d, err := p.BigDecimal(provider.Canonical)
		require.NoError(t, err)
		back, err := numeric.ParseDecimal(d.String())
		require.NoError(t, err, "%s", d)
		require.True(t, back.Equal(d), "%s reparsed as %s", d, back)
		require.True(t, back.IsCanonical(), "%s", back)
	}
}

func TestBigDecimal_NonCanonicalCoversRedundantForms(t *testing.T) {
	p := newProvider(t, seedDet, 8, 2)
	redundant, zeroWithScale := 0, 0
	for i := 0; i < 3000; i++ {
		d, err := p.BigDecimal(provider.NonCanonical)
		require.NoError(t, err)
		if !d.IsCanonical() {
			redundant++
			if d.IsZero() {
				zeroWithScale++
			}
		}
	}
	assert.Positive(t, redundant)
	assert.Positive(t, zeroWithScale)
}

func TestBigDecimal_Signs(t *testing.T) {
	p := newProvider(t, seedDet, 8, 2)
	for _, mode := range []provider.DecimalMode{provider.Canonical, provider.NonCanonical} {
		for i := 0; i < 500; i++ {
			pos, err := p.PositiveBigDecimal(mode)
			require.NoError(t, err)
			require.Equal(t, 1, pos.Sign())

			neg, err := p.NegativeBigDecimal(mode)
			require.NoError(t, err)
			require.Equal(t, -1, neg.Sign())

			nz, err := p.NonzeroBigDecimal(mode)
			require.NoError(t, err)
			require.NotZero(t, nz.Sign())
			if mode == provider.Canonical {
				require.True(t, nz.IsCanonical())
			}
		}
	}
}

func TestBigDecimal_Ranges(t *testing.T) {
	p := newProvider(t, seedDet, 8, 2)
	a, err := numeric.ParseDecimal("-1.5")
	require.NoError(t, err)
	b, err := numeric.ParseDecimal("2.25")
	require.NoError(t, err)

	for _, mode := range []provider.DecimalMode{provider.Canonical, provider.NonCanonical} {
		for i := 0; i < 1000; i++ {
			d, err := p.BigDecimalRange(mode, a, b)
			require.NoError(t, err)
			require.True(t, d.Cmp(a) >= 0 && d.Cmp(b) <= 0, "%s", d)
			if mode == provider.Canonical {
				require.True(t, d.IsCanonical(), "%s", d)
			} else {
				require.GreaterOrEqual(t, d.Scale(), int32(2))
			}

			up, err := p.BigDecimalRangeUp(mode, a)
			require.NoError(t, err)
			require.GreaterOrEqual(t, up.Cmp(a), 0)

			down, err := p.BigDecimalRangeDown(mode, b)
			require.NoError(t, err)
			require.LessOrEqual(t, down.Cmp(b), 0)
		}
	}

	one, err := numeric.ParseDecimal("1.000")
	require.NoError(t, err)
	same, err := p.BigDecimalRange(provider.Canonical, one, numeric.DecimalOf(1))
	require.NoError(t, err)
	assert.Equal(t, "1", same.String())

	_, err = p.BigDecimalRange(provider.Canonical, b, a)
	assert.ErrorIs(t, err, provider.ErrEmptyRange)
}

func TestBigDecimal_Errors(t *testing.T) {
	p := newProvider(t, seedDet, 8, 0)
	_, err := p.BigDecimal(provider.Canonical)
	assert.ErrorIs(t, err, provider.ErrInvalidScale)

	q := newProvider(t, seedDet, 8, 2)
	_, err = q.BigDecimal(provider.DecimalMode(7))
	assert.ErrorIs(t, err, provider.ErrInvalidArgument)
	_, err = q.BigDecimalRange(provider.DecimalMode(-1), numeric.DecimalOf(0), numeric.DecimalOf(1))
	assert.ErrorIs(t, err, provider.ErrInvalidArgument)

	assert.Equal(t, "canonical", provider.Canonical.String())
	assert.Equal(t, "non-canonical", provider.NonCanonical.String())
}
