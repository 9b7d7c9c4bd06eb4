// SPDX-License-Identifier: MIT
// Package: lvgen/isaac
//
// isaac.go - ISAAC-32 state, seeding and batch generation.
//
// Contract:
//   - Words are served from results[SeedSize-1] down to results[0]; a new batch
//     is produced when the buffer is exhausted.
//   - randinit with flag=TRUE semantics: the seed is mixed twice into memory.

package isaac

import "fmt"

const (
	sizeLog = 8
	// SeedSize is the number of 32-bit words in a seed (and in one output batch).
	SeedSize = 1 << sizeLog
	half     = SeedSize / 2
	mask     = SeedSize - 1
	golden   = 0x9e3779b9 // golden ratio, the reference initial mixing value
)

// State is a comparable snapshot of a Generator's internal state.
// Two generators with equal States produce identical future streams.
type State struct {
	Results [SeedSize]uint32
	Memory  [SeedSize]uint32
	A, B, C uint32
	Count   int    // words still available in Results
	Drawn   uint64 // words served since construction or Reset
}

// Generator is an ISAAC-32 pseudorandom word generator.
type Generator struct {
	seed [SeedSize]uint32
	st   State
}

// New builds a Generator from exactly SeedSize words.
// Complexity: O(SeedSize).
func New(seed []uint32) (*Generator, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("New: got %d words: %w", len(seed), ErrSeedLength)
	}
	g := &Generator{}
	copy(g.seed[:], seed)
	g.Reset()

	return g, nil
}

// Seed returns a copy of the seed the generator was built from.
func (g *Generator) Seed() []uint32 {
	out := make([]uint32, SeedSize)
	copy(out, g.seed[:])

	return out
}

// Reset rewinds the generator to the position right after seeding.
// Complexity: O(SeedSize).
func (g *Generator) Reset() {
	g.st = State{Results: g.seed}
	g.init()
}

// Uint32 returns the next word of the stream.
// Complexity: amortized O(1); one batch of SeedSize words every SeedSize calls.
func (g *Generator) Uint32() uint32 {
	if g.st.Count == 0 {
		g.generate()
		g.st.Count = SeedSize
	}
	g.st.Count--
	g.st.Drawn++

	return g.st.Results[g.st.Count]
}

// Drawn reports how many words were served since construction or Reset.
func (g *Generator) Drawn() uint64 { return g.st.Drawn }

// State returns a snapshot of the current state.
func (g *Generator) State() State { return g.st }

// SetState restores a snapshot previously taken with State.
func (g *Generator) SetState(s State) { g.st = s }

// Clone returns an independent generator positioned at the same word.
func (g *Generator) Clone() *Generator {
	c := *g

	return &c
}

// mix is the reference eight-word scrambling step used during seeding.
func mix(s *[8]uint32) {
	s[0] ^= s[1] << 11
	s[3] += s[0]
	s[1] += s[2]
	s[1] ^= s[2] >> 2
	s[4] += s[1]
	s[2] += s[3]
	s[2] ^= s[3] << 8
	s[5] += s[2]
	s[3] += s[4]
	s[3] ^= s[4] >> 16
	s[6] += s[3]
	s[4] += s[5]
	s[4] ^= s[5] << 10
	s[7] += s[4]
	s[5] += s[6]
	s[5] ^= s[6] >> 4
	s[0] += s[5]
	s[6] += s[7]
	s[6] ^= s[7] << 8
	s[1] += s[6]
	s[7] += s[0]
	s[7] ^= s[0] >> 9
	s[2] += s[7]
	s[0] += s[1]
}

// init runs randinit(ctx, TRUE): two passes over the seed/memory, then one batch.
func (g *Generator) init() {
	var s [8]uint32
	var i, k int
	for k = range s {
		s[k] = golden
	}
	for i = 0; i < 4; i++ {
		mix(&s)
	}

	for i = 0; i < SeedSize; i += 8 {
		for k = 0; k < 8; k++ {
			s[k] += g.st.Results[i+k]
		}
		mix(&s)
		copy(g.st.Memory[i:i+8], s[:])
	}
	// second pass makes every seed word affect every memory word
	for i = 0; i < SeedSize; i += 8 {
		for k = 0; k < 8; k++ {
			s[k] += g.st.Memory[i+k]
		}
		mix(&s)
		copy(g.st.Memory[i:i+8], s[:])
	}

	g.generate()
	g.st.Count = SeedSize
}

// generate fills Results with the next batch of SeedSize words.
func (g *Generator) generate() {
	st := &g.st
	st.C++
	st.B += st.C
	a, b := st.A, st.B

	var x, y uint32
	for i := 0; i < SeedSize; i++ {
		x = st.Memory[i]
		switch i & 3 {
		case 0:
			a ^= a << 13
		case 1:
			a ^= a >> 6
		case 2:
			a ^= a << 2
		case 3:
			a ^= a >> 16
		}
		a += st.Memory[(i+half)&mask]
		y = st.Memory[(x>>2)&mask] + a + b
		st.Memory[i] = y
		b = st.Memory[(y>>(sizeLog+2))&mask] + x
		st.Results[i] = b
	}
	st.A, st.B = a, b
}
