// SPDX-License-Identifier: MIT

// Package permav is a toolkit for permutation patterns: containment,
// occurrence search and lazily enumerated avoidance classes.
//
// Packages:
//
//	perm/       — immutable Perm, constructors, algebra, statistics and the
//	              pruned occurrence search (Contains, Avoids, OccurrencesIn)
//	basis/      — canonical antichain bases: sorted, minimal, deduplicated
//	avoidance/  — Av(B): memoized levels built on demand, safe for
//	              concurrent readers, one shared instance per basis
//	permset/    — factory picking a specialized set for a basis (all
//	              permutations, monotone, finite) or falling back to Av(B)
//	cmd/permav/ — command line front end (contains, occurrences, enumerate,
//	              sample, basis)
//
// Quick start:
//
//	b := basis.MustParse("012")
//	av := avoidance.MustOf(b)
//	fmt.Println(av.Counts(6)) // [1 1 2 5 14 42 132]
//
//	p := perm.Must(perm.Parse("530421"))
//	q := perm.Must(perm.Parse("201"))
//	fmt.Println(p.Contains(q)) // true
//
// Errors are sentinel values in each package. Every one of them wraps
// either perm.ErrType (the input has the wrong shape) or perm.ErrValue
// (the input is well formed but out of range), so callers can branch with
// errors.Is on those two kinds.
package permav
