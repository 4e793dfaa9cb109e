// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// level.go — Level, the immutable set of class members of one length.

package avoidance

import (
	"iter"
	"slices"

	"github.com/katalvlaran/permav/perm"
)

// Level holds every member of a class of one length, in the order they were
// generated. It is never modified after publication.
type Level struct {
	length int
	perms  []*perm.Perm
	index  map[string]struct{}
}

// newLevel takes ownership of perms, which must be distinct.
func newLevel(length int, perms []*perm.Perm) *Level {
	index := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		index[p.Key()] = struct{}{}
	}

	return &Level{length: length, perms: perms, index: index}
}

// Length returns the permutation length of this level.
func (l *Level) Length() int { return l.length }

// Len returns the number of members.
func (l *Level) Len() int { return len(l.perms) }

// At returns the i-th member.
func (l *Level) At(i int) *perm.Perm { return l.perms[i] }

// Contains reports whether p is a member. O(len(p)).
func (l *Level) Contains(p *perm.Perm) bool {
	if p == nil || p.Len() != l.length {
		return false
	}
	_, ok := l.index[p.Key()]

	return ok
}

// All yields the members in generation order.
func (l *Level) All() iter.Seq[*perm.Perm] { return slices.Values(l.perms) }

// Perms returns a copy of the member list.
func (l *Level) Perms() []*perm.Perm { return slices.Clone(l.perms) }
