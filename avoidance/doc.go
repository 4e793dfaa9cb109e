// SPDX-License-Identifier: MIT

// Package avoidance implements the lazily grown, memoized avoidance class
// Av(B): every permutation that avoids all patterns of a basis B.
//
// What:
//
//   - Class: one shared instance per distinct basis, obtained with Of.
//     It owns levels[k], the set of class members of length k, and grows
//     them on demand. levels[0] is {ε} unless the basis contains ε.
//   - Level: an immutable, ordered view of one level with O(1) membership.
//   - Cursor / All / UpTo: restartable breadth-first iteration.
//   - At, Contains, OfLength, Counts, Random, Sample: queries that extend
//     the cache as needed.
//
// Growth:
//
// Level k+1 is built from level k by inserting the new maximum k at every
// position of every member and keeping the results that avoid the basis.
// This is complete because deleting the maximum of a member of Av(B)
// always leaves a member of Av(B). For the same reason an empty level means
// every longer level is empty too, and iteration over a finite class ends.
//
// Concurrency:
//
//   - Extension runs under one mutex per Class (never a global lock); the
//     lock covers exactly the "build levels until k exists" loop.
//   - Levels are published through an atomic pointer to an append-only
//     slice. A published level is complete and never modified, so readers
//     do not lock; a reader that needs a missing level blocks on the
//     extension lock and then continues lock-free.
//   - The registry is a sharded concurrent map (orcaman/concurrent-map)
//     with insert-if-absent under the shard lock. Classes are created on
//     first request and never evicted.
//
// Iteration is unbounded for infinite classes: callers supply the stopping
// condition, e.g. break out of All or use UpTo.
//
// Observability:
//
// SetLogger installs a zap logger (default: no-op); level extension is
// logged at Debug. Prometheus collectors under the "permav" namespace count
// built levels, checked candidates, build latency and cached classes.
package avoidance
