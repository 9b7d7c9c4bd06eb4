package provider

import (
	"fmt"
	"unicode"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// RuneRange returns a Unicode scalar value in [lo, hi], uniform over the
// scalar values in range. Surrogates are never produced.
//
// Errors:
//   - ErrInvalidArgument if a bound is outside [0, unicode.MaxRune].
//   - ErrEmptyRange if lo > hi or the range holds only surrogates.
func (p *Provider) RuneRange(lo, hi rune) (rune, error) {
	if lo < 0 || hi < 0 || lo > unicode.MaxRune || hi > unicode.MaxRune {
		return 0, fmt.Errorf("RuneRange: [%#x, %#x]: %w", lo, hi, ErrInvalidArgument)
	}
	if lo >= surrogateMin && lo <= surrogateMax {
		lo = surrogateMax + 1
	}
	if hi >= surrogateMin && hi <= surrogateMax {
		hi = surrogateMin - 1
	}
	if lo > hi {
		return 0, fmt.Errorf("RuneRange: [%#x, %#x]: %w", lo, hi, ErrEmptyRange)
	}

	gap := rune(0)
	if lo < surrogateMin && hi > surrogateMax {
		gap = surrogateMax - surrogateMin + 1
	}
	r := lo + rune(p.uniformUint64(uint64(hi-lo-gap)))
	if gap > 0 && r >= surrogateMin {
		r += gap
	}

	return r, nil
}

// Rune returns a scalar value uniform over all of Unicode.
func (p *Provider) Rune() rune {
	r, _ := p.RuneRange(0, unicode.MaxRune)
	return r
}

// ASCIIRune returns a rune uniform in [0, 127].
func (p *Provider) ASCIIRune() rune {
	r, _ := p.RuneRange(0, unicode.MaxASCII)
	return r
}
