// SPDX-License-Identifier: MIT
// Package: permav/perm
//
// algebra.go — sums, composition, the symmetries of the square, cyclic
// shifts and single-element insertion/removal. Every operation returns a
// new *Perm; receivers are never modified.

package perm

import "fmt"

// DirectSum returns p1 ⊕ p2 ⊕ ... : each argument is shifted up by the
// total length of the arguments before it and the results are concatenated.
// DirectSum() is the empty permutation.
//
// Errors: ErrNilPerm (ErrType) if any argument is nil.
// Complexity: O(total length).
func DirectSum(ps ...*Perm) (*Perm, error) {
	total, err := totalLen("DirectSum", ps)
	if err != nil {
		return nil, err
	}
	seq := make([]int, 0, total)
	offset := 0
	for _, p := range ps {
		for _, v := range p.seq {
			seq = append(seq, v+offset)
		}
		offset += len(p.seq)
	}

	return fromOwned(seq), nil
}

// SkewSum returns p1 ⊖ p2 ⊖ ... : each argument is shifted up by the total
// length of the arguments after it, so earlier blocks sit above later ones.
//
// Errors: ErrNilPerm (ErrType) if any argument is nil.
// Complexity: O(total length).
func SkewSum(ps ...*Perm) (*Perm, error) {
	total, err := totalLen("SkewSum", ps)
	if err != nil {
		return nil, err
	}
	seq := make([]int, 0, total)
	offset := total
	for _, p := range ps {
		offset -= len(p.seq)
		for _, v := range p.seq {
			seq = append(seq, v+offset)
		}
	}

	return fromOwned(seq), nil
}

// totalLen sums argument lengths, rejecting nil arguments.
func totalLen(op string, ps []*Perm) (int, error) {
	total := 0
	for i, p := range ps {
		if p == nil {
			return 0, fmt.Errorf("perm: %s: argument %d: %w", op, i, ErrNilPerm)
		}
		total += len(p.seq)
	}

	return total, nil
}

// Compose returns the functional composition p ∘ q1 ∘ q2 ∘ ... where the
// rightmost argument is applied first: p.Compose(q)[i] == p[q[i]].
//
// Errors: ErrNilPerm (ErrType) for a nil argument; ErrLengthMismatch
// (ErrValue) if lengths differ.
// Complexity: O(n) per argument.
func (p *Perm) Compose(others ...*Perm) (*Perm, error) {
	// 1. Validate every argument before doing any work.
	for i, q := range others {
		if q == nil {
			return nil, fmt.Errorf("perm: Compose: argument %d: %w", i, ErrNilPerm)
		}
		if len(q.seq) != len(p.seq) {
			return nil, fmt.Errorf("perm: Compose: argument %d has length %d, want %d: %w",
				i, len(q.seq), len(p.seq), ErrLengthMismatch)
		}
	}

	// 2. Fold left to right: after step j, cur = p ∘ q1 ∘ ... ∘ qj.
	cur := p.seq
	for _, q := range others {
		next := make([]int, len(cur))
		for i, v := range q.seq {
			next[i] = cur[v]
		}
		cur = next
	}
	if len(others) == 0 {
		return p, nil
	}

	return fromOwned(cur), nil
}

// Inverse returns p⁻¹, so that p.Compose(p.Inverse()) is the identity.
func (p *Perm) Inverse() *Perm {
	seq := make([]int, len(p.seq))
	for i, v := range p.seq {
		seq[v] = i
	}

	return fromOwned(seq)
}

// Reverse returns p read right to left.
func (p *Perm) Reverse() *Perm {
	n := len(p.seq)
	seq := make([]int, n)
	for i, v := range p.seq {
		seq[n-1-i] = v
	}

	return fromOwned(seq)
}

// Complement returns the permutation with every value v replaced by n-1-v.
func (p *Perm) Complement() *Perm {
	n := len(p.seq)
	seq := make([]int, n)
	for i, v := range p.seq {
		seq[i] = n - 1 - v
	}

	return fromOwned(seq)
}

// ReverseComplement returns the reverse of the complement, which is the
// rotation of the plot of p by 180 degrees.
func (p *Perm) ReverseComplement() *Perm {
	n := len(p.seq)
	seq := make([]int, n)
	for i, v := range p.seq {
		seq[n-1-i] = n - 1 - v
	}

	return fromOwned(seq)
}

// Rotate turns the plot of p clockwise by times quarter turns. Negative
// values turn counter-clockwise; times is taken modulo 4.
//
// A point (i, p[i]) moves to (p[i], n-1-i) under one clockwise turn.
func (p *Perm) Rotate(times int) *Perm {
	n := len(p.seq)
	switch mod(times, 4) {
	case 1:
		seq := make([]int, n)
		for i, v := range p.seq {
			seq[v] = n - 1 - i
		}
		return fromOwned(seq)
	case 2:
		return p.ReverseComplement()
	case 3:
		seq := make([]int, n)
		for i, v := range p.seq {
			seq[n-1-v] = i
		}
		return fromOwned(seq)
	default:
		return p
	}
}

// ShiftLeft moves every element times positions to the left, cyclically:
// (2, 0, 1).ShiftLeft(1) == (0, 1, 2).
func (p *Perm) ShiftLeft(times int) *Perm {
	n := len(p.seq)
	if n == 0 {
		return p
	}
	t := mod(times, n)
	seq := make([]int, 0, n)
	seq = append(seq, p.seq[t:]...)
	seq = append(seq, p.seq[:t]...)

	return fromOwned(seq)
}

// ShiftRight moves every element times positions to the right, cyclically.
func (p *Perm) ShiftRight(times int) *Perm {
	return p.ShiftLeft(-times)
}

// ShiftUp adds times to every value, modulo n.
func (p *Perm) ShiftUp(times int) *Perm {
	n := len(p.seq)
	if n == 0 {
		return p
	}
	seq := make([]int, n)
	for i, v := range p.seq {
		seq[i] = mod(v+times, n)
	}

	return fromOwned(seq)
}

// ShiftDown subtracts times from every value, modulo n.
func (p *Perm) ShiftDown(times int) *Perm {
	return p.ShiftUp(-times)
}

// Insert returns the permutation of length n+1 obtained by placing value at
// position index; existing values >= value move up by one.
// Insert(n, n) appends a new maximum.
//
// Errors: ErrIndex (ErrValue) unless 0 <= index <= n and 0 <= value <= n.
func (p *Perm) Insert(index, value int) (*Perm, error) {
	n := len(p.seq)
	if index < 0 || index > n || value < 0 || value > n {
		return nil, fmt.Errorf("perm: Insert(%d, %d) into length %d: %w", index, value, n, ErrIndex)
	}

	return p.insert(index, value), nil
}

// insert is Insert without bounds checks.
func (p *Perm) insert(index, value int) *Perm {
	seq := make([]int, len(p.seq)+1)
	for i, v := range p.seq {
		if v >= value {
			v++
		}
		if i < index {
			seq[i] = v
		} else {
			seq[i+1] = v
		}
	}
	seq[index] = value

	return fromOwned(seq)
}

// InsertMax returns p with a new maximum value n placed at index.
// This is the growth step of avoidance classes.
//
// Errors: ErrIndex (ErrValue) unless 0 <= index <= n.
func (p *Perm) InsertMax(index int) (*Perm, error) {
	return p.Insert(index, len(p.seq))
}

// Remove deletes the element at index; values above it move down by one.
//
// Errors: ErrIndex (ErrValue) unless 0 <= index < n.
func (p *Perm) Remove(index int) (*Perm, error) {
	n := len(p.seq)
	if index < 0 || index >= n {
		return nil, fmt.Errorf("perm: Remove(%d) from length %d: %w", index, n, ErrIndex)
	}
	removed := p.seq[index]
	seq := make([]int, 0, n-1)
	for i, v := range p.seq {
		if i == index {
			continue
		}
		if v > removed {
			v--
		}
		seq = append(seq, v)
	}

	return fromOwned(seq), nil
}

// mod returns the non-negative remainder of a modulo m (m > 0).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
