// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package binfinder implements the bin-finder strategy of §4.2: given a
// middle cell, return the candidate bottom and top cells to search. The
// core only assumes each returned set is finite and valid for the
// index it was given; callers may register their own strategies the
// way mconduct/mreten register named material models.
package binfinder

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/trkseed/index"
)

// Finder selects candidate partner cells for a middle cell.
type Finder interface {
	BottomNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID
	TopNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID
}

var allocators = map[string]func() Finder{}

// Register adds a named Finder constructor to the registry.
func Register(name string, allocator func() Finder) {
	allocators[name] = allocator
}

// New returns a new Finder by name.
func New(name string) (Finder, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("bin finder %q is not available in binfinder database", name)
	}
	return allocator(), nil
}

func init() {
	Register("self", func() Finder { return SelfOnly{} })
	Register("phi1", func() Finder { return PhiNeighbor1{} })
}

// SelfOnly returns just the middle cell: the simplest, most restrictive
// strategy, useful when the phi binning is already coarse enough to
// contain every compatible doublet.
type SelfOnly struct{}

// BottomNeighbourhood implements Finder.
func (SelfOnly) BottomNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID {
	return []index.CellID{mid}
}

// TopNeighbourhood implements Finder.
func (SelfOnly) TopNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID {
	return []index.CellID{mid}
}

// PhiNeighbor1 returns the middle cell plus its two phi neighbours at
// the same z, wrapping around at the phi seam.
type PhiNeighbor1 struct{}

func (PhiNeighbor1) neighbourhood(mid index.CellID, idx *index.Index) []index.CellID {
	left := idx.WrapPhi(mid.Phi - 1)
	right := idx.WrapPhi(mid.Phi + 1)
	return []index.CellID{{Phi: left, Z: mid.Z}, mid, {Phi: right, Z: mid.Z}}
}

// BottomNeighbourhood implements Finder.
func (f PhiNeighbor1) BottomNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID {
	return f.neighbourhood(mid, idx)
}

// TopNeighbourhood implements Finder.
func (f PhiNeighbor1) TopNeighbourhood(mid index.CellID, idx *index.Index) []index.CellID {
	return f.neighbourhood(mid, idx)
}
