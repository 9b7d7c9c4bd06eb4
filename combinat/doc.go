// Package combinat builds lazy, possibly infinite streams of combinatorial
// values on top of a provider.Provider.
//
// Streams:
//
//	Every generator returns a Go range-over-func iterator. Infallible streams
//	are iter.Seq[T]; streams that can run out of source elements mid-way are
//	iter.Seq2[T, error] and stop right after yielding the error.
//	Validation problems (empty inputs, unsatisfiable sizes, scale too small)
//	are returned when the generator is built, never deferred into iteration.
//
// Ownership:
//
//	A generator borrows its Provider: iterating draws from it, so a second
//	traversal continues where the first stopped (one-shot). Wrap the builder
//	in Restartable to traverse from the same snapshot every time.
//
// Families:
//   - Helpers: Repeatedly, UniformSample, Take, Collect, Restartable, WithNull.
//   - Permutations: Shuffle, Permutations, PrefixPermutations, InfinitePermutation.
//   - Sized collections: Lists*, Strings*, Bags*, and over a Domain the
//     distinct-element DistinctLists*, Subsets*, DistinctStrings, StringSubsets.
//   - Splicing: WithElement, WithSublists, WithSubstrings, WithChar.
//   - Products: CartesianProduct, DependentPairs, Maps, RandomMaps.
//
// Sizes are geometric with mean scale; AtLeast variants shift the
// distribution so the mean stays scale, which requires scale > min.
package combinat
