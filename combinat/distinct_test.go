package combinat_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvgen/combinat"
	"github.com/katalvlaran/lvgen/provider"
)

type DistinctSuite struct {
	suite.Suite
	p      *provider.Provider
	domain combinat.Domain[string]
}

func (s *DistinctSuite) SetupTest() {
	s.p = newProvider(s.T(), 3, 2)
	s.domain = combinat.FiniteDomain("a", "b", "c", "b", "d", "e", "a")
}

func (s *DistinctSuite) noDuplicates(xs []string) {
	seen := map[string]bool{}
	for _, x := range xs {
		s.Require().False(seen[x], "duplicate %q in %v", x, xs)
		seen[x] = true
	}
}

func (s *DistinctSuite) TestFiniteDomain_Dedup() {
	n, finite := s.domain.Size()
	s.True(finite)
	s.Equal(5, n)
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, s.domain.Elements()); diff != "" {
		s.Failf("FiniteDomain order", "(-want +got):\n%s", diff)
	}
	_, finite = combinat.StreamDomain(naturals()).Size()
	s.False(finite)
}

func (s *DistinctSuite) TestDistinctLists() {
	lists, err := combinat.Collect2(combinat.DistinctLists(s.p, s.domain), 2000)
	s.Require().NoError(err)
	orders := map[string]bool{}
	for _, l := range lists {
		s.LessOrEqual(len(l), 5)
		s.noDuplicates(l)
		if len(l) == 2 {
			orders[l[0]+l[1]] = true
		}
	}
	s.Len(orders, 20, "every ordered pair of distinct elements appears")
}

// TestDistinctLists_ScaleFarAboveDomain draws sizes from a domain far smaller
// than the scale; sizes pile up at the domain size without redraw loops.
func (s *DistinctSuite) TestDistinctLists_ScaleFarAboveDomain() {
	p, err := s.p.WithScale(1 << 20)
	s.Require().NoError(err)
	before := p.Position()
	lists, err := combinat.Collect2(combinat.DistinctLists(p, s.domain), 300)
	s.Require().NoError(err)
	full := 0
	for _, l := range lists {
		s.LessOrEqual(len(l), 5)
		s.noDuplicates(l)
		if len(l) == 5 {
			full++
		}
	}
	s.Greater(full, 30, "q is nearly 1, so all six sizes are about equally likely")
	s.Less(p.Position()-before, uint64(300*40))
}

// TestDistinctListsAtLeast_Unsatisfiable asks for three distinct elements
// from a two-element domain.
func (s *DistinctSuite) TestDistinctListsAtLeast_Unsatisfiable() {
	d := combinat.FiniteDomain(1, 2)
	_, err := combinat.DistinctListsAtLeast(newProvider(s.T(), 8, 2), d, 3)
	s.ErrorIs(err, combinat.ErrUnsatisfiableSize)

	_, err = combinat.DistinctListsOfSize(s.p, d, 3)
	s.ErrorIs(err, combinat.ErrUnsatisfiableSize)
	_, err = combinat.SubsetsAtLeast(s.p, d, 3)
	s.ErrorIs(err, combinat.ErrUnsatisfiableSize)

	_, err = combinat.DistinctListsAtLeast(s.p, s.domain, 3)
	s.ErrorIs(err, provider.ErrInvalidScale, "scale 3 does not exceed min 3")
}

func (s *DistinctSuite) TestDistinctListsAtLeast() {
	seq, err := combinat.DistinctListsAtLeast(s.p, s.domain, 2)
	s.Require().NoError(err)
	lists, err := combinat.Collect2(seq, 500)
	s.Require().NoError(err)
	for _, l := range lists {
		s.GreaterOrEqual(len(l), 2)
		s.LessOrEqual(len(l), 5)
		s.noDuplicates(l)
	}
}

func (s *DistinctSuite) TestSubsets_DomainOrder() {
	subsets, err := combinat.Collect2(combinat.Subsets(s.p, s.domain), 1000)
	s.Require().NoError(err)
	rank := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "e": 4}
	for _, sub := range subsets {
		s.True(slices.IsSortedFunc(sub, func(x, y string) int { return rank[x] - rank[y] }), "%v", sub)
		s.noDuplicates(sub)
	}

	seq, err := combinat.SubsetsOfSize(s.p, s.domain, 5)
	s.Require().NoError(err)
	full, err := combinat.Collect2(seq, 3)
	s.Require().NoError(err)
	for _, sub := range full {
		s.Equal([]string{"a", "b", "c", "d", "e"}, sub)
	}
}

func (s *DistinctSuite) TestStreamDomain() {
	d := combinat.StreamDomain(naturals())
	seq, err := combinat.DistinctListsOfSize(s.p, d, 6)
	s.Require().NoError(err)
	lists, err := combinat.Collect2(seq, 100)
	s.Require().NoError(err)
	for _, l := range lists {
		s.Len(l, 6)
		seen := map[int]bool{}
		for _, v := range l {
			s.False(seen[v])
			seen[v] = true
		}
	}

	subs, err := combinat.Collect2(combinat.Subsets(s.p, d), 100)
	s.Require().NoError(err)
	for _, sub := range subs {
		s.True(slices.IsSorted(sub), "enumeration order of naturals is ascending: %v", sub)
	}
}

func (s *DistinctSuite) TestStreamDomain_Exhausted() {
	d := combinat.StreamDomain(slices.Values([]int{1, 2, 2, 1}))
	seq, err := combinat.DistinctListsOfSize(s.p, d, 3)
	s.Require().NoError(err, "stream domains are not sized up front")
	_, err = combinat.Collect2(seq, 1)
	s.ErrorIs(err, combinat.ErrDomainExhausted)
}

func (s *DistinctSuite) TestStrings() {
	chars := combinat.FiniteDomain([]rune("xyzw")...)
	strs, err := combinat.Collect2(combinat.DistinctStrings(s.p, chars), 300)
	s.Require().NoError(err)
	for _, str := range strs {
		s.noDuplicates(slices.Collect(func(yield func(string) bool) {
			for _, r := range str {
				if !yield(string(r)) {
					return
				}
			}
		}))
	}

	subs, err := combinat.Collect2(combinat.StringSubsets(s.p, chars), 300)
	s.Require().NoError(err)
	order := "xyzw"
	for _, str := range subs {
		last := -1
		for _, r := range str {
			i := slices.Index([]rune(order), r)
			s.Greater(i, last, "%q", str)
			last = i
		}
	}
}

func TestDistinctSuite(t *testing.T) {
	suite.Run(t, new(DistinctSuite))
}
