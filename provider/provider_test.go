package provider_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgen/isaac"
	"github.com/katalvlaran/lvgen/provider"
)

type LifecycleSuite struct {
	suite.Suite
	p *provider.Provider
}

func (s *LifecycleSuite) SetupTest() {
	p, err := provider.New(
		provider.WithSeed64(seedDet),
		provider.WithScales(8, 2),
		provider.WithLogger(testr.New(s.T())),
	)
	s.Require().NoError(err)
	s.p = p
}

func (s *LifecycleSuite) TestDeterminism() {
	require := require.New(s.T())
	q := newProvider(s.T(), seedDet, 8, 2)
	for i := 0; i < 200; i++ {
		a, err := s.p.NaturalIntGeometric()
		require.NoError(err)
		b, err := q.NaturalIntGeometric()
		require.NoError(err)
		require.Equal(a, b, "draw %d", i)
		require.Equal(s.p.Float64(), q.Float64(), "draw %d", i)
	}
	require.True(s.p.Equal(q))
}

func (s *LifecycleSuite) TestCopyIndependence() {
	require := require.New(s.T())
	words(s.p, 37)
	q := s.p.Copy()
	require.True(s.p.Equal(q))
	require.Equal(s.p.Position(), q.Position())

	fromP := words(s.p, 600) // crosses a batch boundary
	fromQ := words(q, 600)
	require.Equal(fromP, fromQ)

	words(s.p, 1)
	require.False(s.p.Equal(q))
	require.Equal(s.p.ID(), q.ID(), "copies share the identity token")
}

func (s *LifecycleSuite) TestResetIdempotence() {
	require := require.New(s.T())
	s.p.Reset()
	first := words(s.p, 300)
	s.p.Reset()
	second := words(s.p, 300)
	require.Equal(first, second)
	require.EqualValues(300, s.p.Position())

	s.p.Reset()
	require.Zero(s.p.Position())
	require.Equal(8, s.p.Scale())
	require.Equal(2, s.p.SecondaryScale())
	require.True(s.p.Equal(newProvider(s.T(), seedDet, 8, 2)))
}

func (s *LifecycleSuite) TestWithScaleSharesStream() {
	require := require.New(s.T())
	v, err := s.p.WithScale(3)
	require.NoError(err)
	require.Equal(3, v.Scale())
	require.Equal(2, v.SecondaryScale())

	q := s.p.Copy()
	a := s.p.Uint32()
	b := v.Uint32()
	require.Equal(words(q, 2), []uint32{a, b}, "the view continues the same stream")
	require.Equal(s.p.Position(), v.Position())

	w, err := s.p.WithSecondaryScale(5)
	require.NoError(err)
	require.Equal(8, w.Scale())
	require.Equal(5, w.SecondaryScale())
	require.False(w.Equal(s.p))

	_, err = s.p.WithScale(-1)
	require.ErrorIs(err, provider.ErrInvalidScale)
	_, err = s.p.WithSecondaryScale(-1)
	require.ErrorIs(err, provider.ErrInvalidScale)
}

func (s *LifecycleSuite) TestSubstreams() {
	require := require.New(s.T())
	sub := s.p.Substream("positions")
	require.Same(sub, s.p.Substream("positions"), "cached")
	require.NotEqual(sub.ID(), s.p.Substream("other").ID())

	before := s.p.Position()
	words(sub, 10)
	require.Equal(before, s.p.Position(), "sub-streams do not advance the parent")

	// equal providers derive equal sub-streams
	fresh := newProvider(s.T(), seedDet, 8, 2).Substream("k")
	require.Equal(words(fresh, 5), words(newProvider(s.T(), seedDet, 8, 2).Substream("k"), 5))
}

func (s *LifecycleSuite) TestCopySnapshotsSubstreams() {
	require := require.New(s.T())
	sub := s.p.Substream("k")
	words(sub, 3)

	copiers := map[string]func() *provider.Provider{"copy": s.p.Copy, "deep copy": s.p.DeepCopy}
	for name, copier := range copiers {
		c := copier()
		csub := c.Substream("k")
		require.NotSame(sub, csub, name)
		require.True(sub.Equal(csub), name)
		want := words(sub.Copy(), 20)
		words(sub, 20)
		require.Equal(want, words(csub, 20), "%s: replays after the original advanced", name)
		// the copy derives keys it never saw on its own
		require.NotSame(s.p.Substream("fresh"), c.Substream("fresh"), name)
	}

	s.p.Reset()
	require.NotSame(sub, s.p.Substream("k"))
	require.Zero(s.p.Substream("k").Position())
}

func (s *LifecycleSuite) TestCopiesDrawConcurrently() {
	require := require.New(s.T())
	s.p.Substream("k")
	copies := []*provider.Provider{s.p.Copy(), s.p.Copy(), s.p.Copy()}
	out := make([][]uint32, len(copies))

	var wg sync.WaitGroup
	for i, c := range copies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := c.Substream("k")
			c.Substream("other")
			out[i] = words(sub, 50)
		}()
	}
	wg.Wait()
	require.Equal(out[0], out[1])
	require.Equal(out[0], out[2])
}

func (s *LifecycleSuite) TestHashAndString() {
	require := require.New(s.T())
	q := newProvider(s.T(), seedDet, 8, 2)
	require.Equal(s.p.Hash(), q.Hash())
	q.Uint32()
	require.NotEqual(s.p.Hash(), q.Hash())

	str := s.p.String()
	require.Contains(str, "scale=8")
	require.Contains(str, "secondaryScale=2")
	require.Contains(str, "position=0")
	require.True(strings.HasPrefix(str, "Provider{"))
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

func TestNew_Errors(t *testing.T) {
	_, err := provider.New(provider.WithSeed(make([]uint32, 3)))
	assert.ErrorIs(t, err, provider.ErrInvalidSeed)

	_, err = provider.New(provider.WithScales(-1, 0))
	assert.ErrorIs(t, err, provider.ErrInvalidScale)

	_, err = provider.New(provider.WithScales(1, -1))
	assert.ErrorIs(t, err, provider.ErrInvalidScale)
}

func TestNew_Defaults(t *testing.T) {
	p, err := provider.New(provider.WithSeed64(1))
	require.NoError(t, err)
	assert.Equal(t, provider.DefaultScale, p.Scale())
	assert.Equal(t, provider.DefaultSecondaryScale, p.SecondaryScale())
	assert.Len(t, p.Seed(), isaac.SeedSize)
}

func TestNew_ExplicitSeedIsCopied(t *testing.T) {
	seed := provider.SeedFromUint64(5)
	p, err := provider.New(provider.WithSeed(seed))
	require.NoError(t, err)
	seed[0] ^= 1
	assert.NotEqual(t, seed, p.Seed())

	q, err := provider.New(provider.WithSeed64(5))
	require.NoError(t, err)
	assert.True(t, p.Equal(q), "WithSeed64 is WithSeed over SeedFromUint64")
}

func TestNew_EntropySeedIsLogged(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	p, err := provider.New(provider.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "seeded from system entropy")
	assert.Contains(t, lines[0], `"seed64"`)
	assert.Len(t, p.Seed(), isaac.SeedSize)
}

func TestEqual_Nil(t *testing.T) {
	var a, b *provider.Provider
	assert.True(t, a.Equal(b))
	assert.False(t, newProvider(t, 1, 1, 1).Equal(nil))
}
