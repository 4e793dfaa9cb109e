// SPDX-License-Identifier: MIT

// Package perm implements the immutable permutation entity together with
// its algebra and the pattern-occurrence search that every avoidance query
// in permav is built on.
//
// What:
//
//   - Perm: a bijection on {0..n-1}, stored as its one-line notation.
//     Value at position i is the image of i. Instances are handed out as
//     *Perm and never mutated after construction.
//   - Constructors: New, FromInteger (digits), Standardize/StandardizeFunc
//     (order preserving ranking of arbitrary values), FromOneBased, FromAny
//     (dynamic input), Parse (text), Identity, Decreasing, Unrank, Random.
//   - Algebra: DirectSum, SkewSum, Compose, Inverse, Reverse, Complement,
//     ReverseComplement, Rotate, cyclic shifts, Insert, Remove.
//   - Patterns: OccurrencesIn, OccurrencesOf, CountOccurrencesIn, Contains,
//     Avoids.
//
// Occurrence search:
//
// For a pattern P of length k and a host H of length n the search walks
// host positions left to right and assigns pattern positions 0..k-1 in
// order. For every pattern position j the pattern caches its left floor
// (nearest smaller value to the left) and left ceiling (nearest larger
// value to the left), plus the value gaps to them. A host index i is
// admissible for j iff H[i] lies in the interval implied by the host values
// already chosen for the floor and ceiling; a branch is abandoned as soon
// as fewer host positions remain than pattern positions are still needed.
//
//	pattern (2,0,1) in host (5,3,0,4,2,1):
//	(0,1,3) (0,2,3) (0,2,4) (0,2,5) (1,2,4) (1,2,5)
//
// Complexity:
//
//   - Construction, algebra: O(n) time and space (Compose O(m·n) for m args).
//   - Bound table: O(k²) once per pattern, cached lock-free.
//   - OccurrencesIn: worst case exponential in k, O(1) per search step.
//
// Errors:
//
// Every failure is classified as ErrType (a value is not an integer, or a
// permutation argument is nil) or ErrValue (out of range, duplicate, length
// mismatch, bad index, bad digits, bad syntax). Use errors.Is on the kind or
// on the specific sentinel. Occurrence search never fails.
//
// Concurrency:
//
// A *Perm is safe for concurrent use. The lazily computed bound table is
// published through an atomic pointer without locking; two goroutines may
// compute it concurrently and the last store wins, which is harmless since
// the table is a deterministic function of the permutation.
package perm
