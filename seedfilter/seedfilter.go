// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seedfilter implements the two-stage ranking of §4.6: a
// per-middle-fixed-bottom filter ("2SpFixed") that scores accepted tops
// against one bottom, and a per-middle filter ("1SpFixed") that merges
// and caps the scores across every bottom of one middle point. Both
// stages are caller-suppliable policies; this package only fixes their
// contract and registry, plus one reference implementation of each.
package seedfilter

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/seeding"
	"github.com/cpmech/trkseed/spacepoint"
)

// WeightedSeed is one ranked (bottom, middle, top) candidate.
type WeightedSeed struct {
	Bottom, Middle, Top *spacepoint.Internal
	Zo                  float64
	Weight              float64
}

// TwoSpFilter scores the accepted tops of one (bottom, middle) doublet.
// The core specifies only this contract; the scoring body is a policy.
type TwoSpFilter interface {
	Filter(middle *spacepoint.Internal, group seeding.BottomGroup, c *cfg.Config) []WeightedSeed
}

// OneSpFilter merges the weighted seeds produced by every bottom of one
// middle point and enforces maxSeedsPerSpM.
type OneSpFilter interface {
	Filter(middle *spacepoint.Internal, seeds []WeightedSeed, c *cfg.Config) []WeightedSeed
}

var twoSpAllocators = map[string]func() TwoSpFilter{}
var oneSpAllocators = map[string]func() OneSpFilter{}

// RegisterTwoSp adds a named TwoSpFilter constructor to the registry.
func RegisterTwoSp(name string, allocator func() TwoSpFilter) {
	twoSpAllocators[name] = allocator
}

// RegisterOneSp adds a named OneSpFilter constructor to the registry.
func RegisterOneSp(name string, allocator func() OneSpFilter) {
	oneSpAllocators[name] = allocator
}

// NewTwoSp returns a new TwoSpFilter by name.
func NewTwoSp(name string) (TwoSpFilter, error) {
	allocator, ok := twoSpAllocators[name]
	if !ok {
		return nil, chk.Err("2SpFixed filter %q is not available in seedfilter database", name)
	}
	return allocator(), nil
}

// NewOneSp returns a new OneSpFilter by name.
func NewOneSp(name string) (OneSpFilter, error) {
	allocator, ok := oneSpAllocators[name]
	if !ok {
		return nil, chk.Err("1SpFixed filter %q is not available in seedfilter database", name)
	}
	return allocator(), nil
}

func init() {
	RegisterTwoSp("default", func() TwoSpFilter { return Default2SpFilter{} })
	RegisterOneSp("default", func() OneSpFilter { return Default1SpFilter{} })
}

// rankByWeight sorts seeds by descending weight using
// gosl/utl.SortQuadruples, the same parallel-array sort idiom the
// teacher uses to reorder (x, y, ...) result columns in lockstep.
func rankByWeight(seeds []WeightedSeed) []WeightedSeed {
	n := len(seeds)
	if n == 0 {
		return seeds
	}
	weight := make([]float64, n)
	slot := make([]float64, n)
	zero := make([]float64, n)
	zo := make([]float64, n)
	for i, s := range seeds {
		weight[i] = s.Weight
		slot[i] = float64(i)
		zo[i] = s.Zo
	}
	w, sl, _, z, err := utl.SortQuadruples(weight, slot, zero, zo, "x")
	if err != nil {
		return seeds
	}
	ranked := make([]WeightedSeed, n)
	for i := 0; i < n; i++ {
		orig := seeds[int(sl[i])]
		orig.Weight = w[i]
		orig.Zo = z[i]
		ranked[n-1-i] = orig // SortQuadruples orders ascending; reverse for descending weight
	}
	return ranked
}
