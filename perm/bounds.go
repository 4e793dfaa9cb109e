// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// bounds.go — the left-floor/left-ceiling table of a pattern.
//
// For pattern position j:
//   floor = position left of j holding the largest value below P[j], or -1
//   ceil  = position left of j holding the smallest value above P[j], or -1
//   low   = P[j]-P[floor] if floor exists, else P[j]
//   high  = P[ceil]-P[j]  if ceil exists,  else k-P[j]
//
// A host value h can stand for P[j] only if
//   h >= H[floor]+low  (or h >= low)      and
//   h <= H[ceil]-high  (or h <= n-high).

package perm

// noBound marks a missing floor or ceiling.
const noBound = -1

// boundRow is the precomputed interval data for one pattern position.
type boundRow struct {
	floor, ceil int // pattern positions, or noBound
	low, high   int // value gaps to the floor/ceiling or to the absolute bounds
}

// boundTable is immutable once built.
type boundTable struct {
	rows []boundRow
}

// boundTable returns the cached table, building it on first use.
// Concurrent first calls may both build it; either result is identical.
func (p *Perm) boundTable() *boundTable {
	if t := p.bounds.Load(); t != nil {
		return t
	}
	t := buildBounds(p.seq)
	p.bounds.Store(t)

	return t
}

// buildBounds computes the table for pattern seq.
// Complexity: O(k²) time, O(k) space.
func buildBounds(seq []int) *boundTable {
	k := len(seq)
	rows := make([]boundRow, k)
	for j, v := range seq {
		// 1. Scan everything to the left for the nearest values below and above.
		floor, ceil := noBound, noBound
		for x := 0; x < j; x++ {
			w := seq[x]
			if w < v && (floor == noBound || w > seq[floor]) {
				floor = x
			}
			if w > v && (ceil == noBound || w < seq[ceil]) {
				ceil = x
			}
		}

		// 2. Gaps: how many values must fit strictly between.
		row := boundRow{floor: floor, ceil: ceil, low: v, high: k - v}
		if floor != noBound {
			row.low = v - seq[floor]
		}
		if ceil != noBound {
			row.high = seq[ceil] - v
		}
		rows[j] = row
	}

	return &boundTable{rows: rows}
}
