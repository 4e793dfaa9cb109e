// SPDX-License-Identifier: MIT

// Package basis builds canonical bases: finite antichains of patterns
// under pattern containment.
//
// What:
//
//   - Basis: an immutable, ordered set of patterns in which no pattern
//     contains another. Ordered by length, then lexicographically.
//   - Union: adds patterns to a basis, keeping only the minimal ones.
//   - Parse: reads bases from text such as "012_2103" or "123, 321".
//
// Why:
//
// An avoidance class is determined by the minimal patterns it avoids:
// Av(012, 0123) and Av(012) are the same set, since every permutation
// containing 0123 also contains 012. Reducing to the antichain makes the
// basis a canonical identity, and Key() is what the avoidance engine caches
// classes by.
//
// Algorithm (Union):
//
//  1. Reject nil patterns (ErrType). No additions: return the receiver.
//  2. The empty pattern dominates everything: the result is {ε}.
//  3. Merge old and new patterns, sort by (length, lexicographic), and accept
//     each candidate iff it avoids every pattern accepted so far. Accepted
//     patterns are never longer than the candidate, so containment can only
//     run candidate ⊇ accepted.
//  4. If nothing new survived, return the receiver itself.
//
// Complexity:
//
//   - Union: O(m log m) for sorting plus O(m²) containment tests.
//
// Concurrency:
//
// A *Basis is immutable and safe for concurrent use.
package basis
