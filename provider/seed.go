package provider

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvgen/isaac"
)

const goldenGamma = 0x9e3779b97f4a7c15

// splitMix64 is the SplitMix64 finalizer (Vigna 2014).
func splitMix64(x uint64) uint64 {
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// SeedFromUint64 expands n into isaac.SeedSize words with the SplitMix64
// sequence: output i is splitMix64(n + (i+1)·γ), stored low word first.
// Equal inputs always give equal seeds, which is what makes a 64-bit value
// enough to replay a run.
func SeedFromUint64(n uint64) []uint32 {
	seed := make([]uint32, isaac.SeedSize)
	state := n
	for i := 0; i < isaac.SeedSize; i += 2 {
		state += goldenGamma
		z := splitMix64(state)
		seed[i] = uint32(z)
		seed[i+1] = uint32(z >> 32)
	}

	return seed
}

// entropySeed reads a 64-bit seed from the system entropy source.
func entropySeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("entropySeed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// fingerprint hashes seed words into the identity token.
func fingerprint(seed []uint32) uint64 {
	buf := make([]byte, 0, 4*len(seed))
	for _, w := range seed {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return xxhash.Sum64(buf)
}

// deriveSeed64 mixes a parent identity and a sub-stream key into a 64-bit seed.
func deriveSeed64(parent uint64, key string) uint64 {
	d := xxhash.New()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], parent)
	_, _ = d.Write(b[:])
	_, _ = d.WriteString(key)

	return splitMix64(d.Sum64() + goldenGamma)
}
