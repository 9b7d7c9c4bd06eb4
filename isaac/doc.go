// Package isaac implements Bob Jenkins' ISAAC-32 pseudorandom generator, the
// bit source underneath every lvgen Provider.
//
// What is ISAAC?
//
//	ISAAC (Indirection, Shift, Accumulate, Add, and Count) produces batches of
//	256 uniformly distributed 32-bit words from a 256-word internal memory.
//	It is seeded with exactly SeedSize words and is fully deterministic: the
//	same seed always yields the same word stream on every platform.
//
// Key features:
//   - Bit-exact with the reference randinit(ctx, TRUE)/isaac() routines.
//   - Comparable State snapshots for copy / reset semantics.
//   - Clone() for independent cursors positioned at the same word.
//   - Drawn() exposes the cursor position for debugging and equality.
//
// Usage:
//
//	g, err := isaac.New(make([]uint32, isaac.SeedSize))
//	if err != nil {
//	  // handle ErrSeedLength
//	}
//	w := g.Uint32()
//
// Concurrency:
//   - A Generator is NOT goroutine-safe. Clone it before handing it to another goroutine.
//
// ISAAC is not a cryptographic primitive here; it is used for its long period and
// reproducibility.
package isaac
