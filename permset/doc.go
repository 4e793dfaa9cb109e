// SPDX-License-Identifier: MIT

// Package permset resolves a class description (a basis, a length, or an
// explicit collection) to a concrete permutation set behind one interface.
//
// The strategy is selected once, at construction, from the shape of the
// description:
//
//	basis {}        → KindAll       every permutation
//	basis {ε}       → KindFinite    the empty set
//	basis {0}       → KindFinite    {ε}
//	basis {01}      → KindMonotone  one decreasing permutation per length
//	basis {10}      → KindMonotone  one increasing permutation per length
//	any other basis → KindAvoidance the shared avoidance.Class
//	length n        → KindLength    all n! permutations of length n
//	explicit perms  → KindFinite    a fully computed, non-lazy set
//
// Specialized variants answer exactly as the generic engine would; they only
// skip work the general algorithm cannot know is unnecessary.
package permset
