package combinat_test

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgen/combinat"
	"github.com/katalvlaran/lvgen/provider"
)

func TestLists_MeanLength(t *testing.T) {
	p := newProvider(t, 4, 2)
	lists, err := combinat.Collect2(combinat.Lists(p, digits(p)), 5000)
	require.NoError(t, err)
	total := 0
	for _, l := range lists {
		total += len(l)
		for _, v := range l {
			require.True(t, v >= 0 && v <= 9)
		}
	}
	assert.InDelta(t, 4, float64(total)/5000, 0.2)
}

func TestListsAtLeast(t *testing.T) {
	p := newProvider(t, 6, 2)
	seq, err := combinat.ListsAtLeast(p, digits(p), 3)
	require.NoError(t, err)
	lists, err := combinat.Collect2(seq, 3000)
	require.NoError(t, err)
	total := 0
	for _, l := range lists {
		require.GreaterOrEqual(t, len(l), 3)
		total += len(l)
	}
	assert.InDelta(t, 6, float64(total)/3000, 0.25, "the mean stays at scale")

	_, err = combinat.ListsAtLeast(p, digits(p), 6)
	assert.ErrorIs(t, err, provider.ErrInvalidScale)
	_, err = combinat.ListsAtLeast(p, digits(p), -1)
	assert.ErrorIs(t, err, combinat.ErrInvalidSize)
}

func TestListsOfSize_Exhaustion(t *testing.T) {
	p := newProvider(t, 4, 2)
	seq, err := combinat.ListsOfSize(p, slices.Values([]int{1, 2, 3}), 2)
	require.NoError(t, err)

	var got [][]int
	var last error
	for l, err := range seq {
		if err != nil {
			last = err
			break
		}
		got = append(got, l)
	}
	assert.Equal(t, [][]int{{1, 2}}, got)
	assert.ErrorIs(t, last, combinat.ErrDomainExhausted)

	_, err = combinat.ListsOfSize(p, digits(p), -2)
	assert.ErrorIs(t, err, combinat.ErrInvalidSize)
}

func TestStrings(t *testing.T) {
	p := newProvider(t, 5, 2)
	strs, err := combinat.Collect2(combinat.Strings(p, combinat.Runes(p)), 500)
	require.NoError(t, err)
	for _, s := range strs {
		require.True(t, utf8.ValidString(s))
	}

	seq, err := combinat.StringsOfSize(p, combinat.Runes(p), 3)
	require.NoError(t, err)
	fixed, err := combinat.Collect2(seq, 100)
	require.NoError(t, err)
	for _, s := range fixed {
		require.Equal(t, 3, utf8.RuneCountInString(s))
	}

	ascii := combinat.Repeatedly(p, (*provider.Provider).ASCIIRune)
	seq, err = combinat.StringsAtLeast(p, ascii, 2)
	require.NoError(t, err)
	long, err := combinat.Collect2(seq, 100)
	require.NoError(t, err)
	for _, s := range long {
		require.GreaterOrEqual(t, len(s), 2)
	}
}

func TestBags_Sorted(t *testing.T) {
	p := newProvider(t, 6, 2)
	bags, err := combinat.Collect2(combinat.Bags(p, digits(p)), 500)
	require.NoError(t, err)
	for _, b := range bags {
		require.True(t, slices.IsSorted(b), "%v", b)
	}

	seq, err := combinat.BagsOfSize(p, digits(p), 4)
	require.NoError(t, err)
	fixed, err := combinat.Collect2(seq, 50)
	require.NoError(t, err)
	for _, b := range fixed {
		require.Len(t, b, 4)
		require.True(t, slices.IsSorted(b))
	}

	seq, err = combinat.BagsAtLeast(p, digits(p), 2)
	require.NoError(t, err)
	_, err = combinat.Collect2(seq, 50)
	require.NoError(t, err)

	desc := func(a, b int) int { return b - a }
	seq, err = combinat.BagsFunc(p, digits(p), desc)
	require.NoError(t, err)
	rev, err := combinat.Collect2(seq, 100)
	require.NoError(t, err)
	for _, b := range rev {
		require.True(t, slices.IsSortedFunc(b, desc))
	}
	_, err = combinat.BagsFunc[int](p, digits(p), nil)
	assert.ErrorIs(t, err, combinat.ErrNilFunc)

	strs, err := combinat.Collect2(combinat.StringBags(p, combinat.Runes(p)), 100)
	require.NoError(t, err)
	for _, s := range strs {
		require.True(t, slices.IsSorted([]rune(s)))
	}
}

func TestSplicing(t *testing.T) {
	p := newProvider(t, 4, 2)
	base, err := combinat.ListsOfSize(p, digits(p), 3)
	require.NoError(t, err)

	positions := map[int]bool{}
	withElem, err := combinat.Collect2(combinat.WithElement(p, base, 99), 400)
	require.NoError(t, err)
	for _, l := range withElem {
		require.Len(t, l, 4)
		i := slices.Index(l, 99)
		require.GreaterOrEqual(t, i, 0)
		positions[i] = true
	}
	assert.Len(t, positions, 4, "every insertion point is used")

	withSub, err := combinat.Collect2(combinat.WithSublists(p, combinat.Lists(p, digits(p)), []int{-1, -2}), 200)
	require.NoError(t, err)
	for _, l := range withSub {
		i := slices.Index(l, -1)
		require.GreaterOrEqual(t, i, 0)
		require.Equal(t, -2, l[i+1])
	}

	strs, err := combinat.Collect2(combinat.WithSubstrings(p, combinat.Strings(p, combinat.Runes(p)), "héllo"), 200)
	require.NoError(t, err)
	for _, s := range strs {
		require.True(t, strings.Contains(s, "héllo"))
		require.True(t, utf8.ValidString(s))
	}

	chars, err := combinat.Collect2(combinat.WithChar(p, combinat.Strings(p, combinat.Runes(p)), '✓'), 200)
	require.NoError(t, err)
	for _, s := range chars {
		require.True(t, strings.ContainsRune(s, '✓'))
	}
}
