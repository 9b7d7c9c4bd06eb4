// Package provider is the heart of lvgen: a seeded, reproducible source of
// random values for property-based tests.
//
// What is a Provider?
//
//	A Provider wraps an ISAAC-32 word stream (lvgen/isaac) together with two
//	shape parameters:
//	  • scale         : the mean magnitude/size of unbounded values
//	                     (geometric means, big-integer bit lengths, list sizes)
//	  • secondaryScale: a second dimension: exponents of binary fractions,
//	                     decimal scales, permutation lookahead
//
//	Every sampling method advances the stream in place and returns a value.
//	For a fixed seed, scale pair and call sequence the output is bit-identical
//	on every platform.
//
// Samplers:
//   - Uniform integers: Range, Uniform, BigRange, Uint32/Int32/Uint64/Int64/Bool.
//   - Characters: RuneRange, Rune, ASCIIRune.
//   - Geometric: Natural/Positive/Negative/Nonzero/Int Geometric for int32 and
//     int64 (Long), RangeUp/RangeDown variants, and the arbitrary-precision
//     NaturalBigInt ... BigInt family whose bit length is geometric.
//   - Floats: exact bit-pattern sampling (Float64, Float64Range, ...) and
//     uniform-value sampling (Float64RangeUniform, ...), for float32 as well.
//   - Precision numbers: BinaryFraction* and BigDecimal* (see DecimalMode).
//
// Lifecycle:
//
//	p, err := provider.New(provider.WithSeed64(42), provider.WithScales(8, 2))
//	q := p.Copy()        // independent cursor, same position
//	d := p.DeepCopy()    // same as Copy; cached sub-streams are snapshotted too
//	v, _ := p.WithScale(3) // same stream, different shape
//	p.Reset()            // rewind to the seeded position
//
// Errors:
//   - Preconditions (seed length, scale minimums, empty ranges, NaN bounds)
//     are reported by the violating call with sentinel errors; branch with
//     errors.Is. Nothing is clamped silently.
//
// Concurrency:
//   - A Provider is NOT goroutine-safe; every draw mutates its cursor.
//     Hand Copy() or DeepCopy() results to other goroutines instead.
package provider
