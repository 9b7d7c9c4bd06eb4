// Package lvgen is a deterministic, seedable engine for generating test
// inputs: numbers of every width and precision, characters and strings, and
// lazy combinatorial structures, all reproducible from one seed.
//
// 🚀 What is lvgen?
//
//	A property-based testing backend that brings together:
//		• isaac/   : the ISAAC-32 word generator, bit-exact across platforms
//		• numeric/ : exact BinaryFraction and Decimal values
//		• provider/: the Provider: seed, scale pair, and every scalar sampler
//		              (uniform ranges, geometric magnitudes, floats by bit
//		              pattern or by value, runes, big integers, decimals)
//		• combinat/: permutations, lists, bags, subsets, products and maps as
//		              Go iterators
//
// ✨ Why lvgen?
//
//   - Replayable – a failing case is identified by a 64-bit seed and a scale pair
//   - Shaped – scale and secondaryScale tune sizes and magnitudes without
//     changing any distribution's form
//   - Honest – invalid arguments return sentinel errors, nothing is clamped
//
// Quick start:
//
//	p, err := provider.New(provider.WithSeed64(42), provider.WithScales(8, 2))
//	if err != nil { ... }
//	n, _ := provider.Range(p, 1, 6)
//	xs, _ := combinat.Collect2(combinat.Lists(p, combinat.Runes(p)), 10)
//
// A Provider is not safe for concurrent use; give each goroutine its own Copy.
package lvgen
