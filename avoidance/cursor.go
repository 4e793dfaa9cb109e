// SPDX-License-Identifier: MIT
// Package: permav/avoidance
//
// cursor.go — breadth-first iteration over a class.

package avoidance

import (
	"iter"

	"github.com/katalvlaran/permav/perm"
)

// Cursor walks a class in non-decreasing length order. Each cursor is
// independent; restarting means creating a new one. A Cursor is not safe
// for concurrent use, but any number of cursors may share a Class.
type Cursor struct {
	class  *Class
	length int // current level
	pos    int // next position within the level
	maxLen int // last length to visit, or -1 for no limit
	done   bool
}

// NewCursor returns a cursor positioned before the first member.
func (c *Class) NewCursor() *Cursor {
	return &Cursor{class: c, maxLen: -1}
}

// Next returns the next member and true, or nil and false once the class
// (or the cursor's length limit) is exhausted. For an infinite class
// without a limit Next never returns false.
func (cur *Cursor) Next() (*perm.Perm, bool) {
	for !cur.done {
		if cur.maxLen >= 0 && cur.length > cur.maxLen {
			cur.done = true
			break
		}
		lvl := cur.class.ensureLevel(cur.length)[cur.length]
		if cur.pos < lvl.Len() {
			p := lvl.At(cur.pos)
			cur.pos++
			return p, true
		}
		// An empty level ends the class: no longer member can exist.
		if lvl.Len() == 0 {
			cur.done = true
			break
		}
		cur.length++
		cur.pos = 0
	}

	return nil, false
}

// Length returns the length of the level the cursor is currently in.
func (cur *Cursor) Length() int { return cur.length }

// All yields every member by non-decreasing length. Each range statement
// starts from the beginning.
//
// For a finite class the sequence ends after the last member: the first
// empty level proves every longer level empty, so iteration stops there
// instead of producing nothing forever. For infinite classes the sequence
// never ends and the caller must break.
func (c *Class) All() iter.Seq[*perm.Perm] {
	return c.seq(-1)
}

// UpTo yields every member of length at most maxLen.
func (c *Class) UpTo(maxLen int) iter.Seq[*perm.Perm] {
	if maxLen < 0 {
		return func(func(*perm.Perm) bool) {}
	}

	return c.seq(maxLen)
}

func (c *Class) seq(maxLen int) iter.Seq[*perm.Perm] {
	return func(yield func(*perm.Perm) bool) {
		cur := &Cursor{class: c, maxLen: maxLen}
		for p, ok := cur.Next(); ok; p, ok = cur.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
