// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trkseed wires the spacepoint adapter, binned index, bin
// finder, doublet builder, conformal transformer, triplet builder, and
// seed filter into the acyclic pipeline of §2: for every middle cell,
// for every middle spacepoint in it, build triplets against the
// candidate partner cells and rank them; append the ranked seeds to
// that cell's output slot.
package trkseed

import (
	"github.com/cpmech/trkseed/binfinder"
	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/index"
	"github.com/cpmech/trkseed/seedfilter"
	"github.com/cpmech/trkseed/seeding"
	"github.com/cpmech/trkseed/spacepoint"
)

// Seed is one output triplet: references to the three external
// spacepoints, plus the bottom's Zo and the weight the filter assigned.
type Seed struct {
	Bottom, Middle, Top spacepoint.Point
	Zo                  float64
	Weight              float64
}

// Finder is the assembled seed-finder pipeline. Config, BinFinder,
// TwoSp, and OneSp are immutable after construction and may be shared
// read-only across concurrent Run calls on independent inputs, per §5.
type Finder struct {
	Config    *cfg.Config
	CovTool   spacepoint.CovarianceTool
	BinFinder binfinder.Finder
	TwoSp     seedfilter.TwoSpFilter
	OneSp     seedfilter.OneSpFilter
}

// NewFinder assembles a Finder from an initialised Config and the named
// strategies. Config.Init must already have succeeded.
func NewFinder(c *cfg.Config, cov spacepoint.CovarianceTool, binFinderName, twoSpName, oneSpName string) (*Finder, error) {
	bf, err := binfinder.New(binFinderName)
	if err != nil {
		return nil, err
	}
	twoSp, err := seedfilter.NewTwoSp(twoSpName)
	if err != nil {
		return nil, err
	}
	oneSp, err := seedfilter.NewOneSp(oneSpName)
	if err != nil {
		return nil, err
	}
	return &Finder{Config: c, CovTool: cov, BinFinder: bf, TwoSp: twoSp, OneSp: oneSp}, nil
}

// Run builds the index over points and returns one seed list per (phi,
// z) cell, in natural cell-index order (§5). Cells with no middle
// spacepoints contribute an empty (possibly nil) slot.
func (f *Finder) Run(points []spacepoint.Point) ([][]Seed, error) {
	idx, err := index.Build(points, f.CovTool, f.Config)
	if err != nil {
		return nil, err
	}

	nPhi, nZ := idx.NumCells()
	output := make([][]Seed, nPhi*nZ)

	for iphi := 0; iphi < nPhi; iphi++ {
		for iz := 0; iz < nZ; iz++ {
			cell := index.CellID{Phi: iphi, Z: iz}
			bin := idx.At(cell)
			if bin == nil {
				continue
			}
			output[iphi*nZ+iz] = f.seedsForCell(idx, cell, bin)
		}
	}
	return output, nil
}

func (f *Finder) seedsForCell(idx *index.Index, cell index.CellID, bin *index.Bin) []Seed {
	bottomCells := f.BinFinder.BottomNeighbourhood(cell, idx)
	topCells := f.BinFinder.TopNeighbourhood(cell, idx)

	var out []Seed
	for _, m := range bin.Points {
		bottomLists := collectLists(idx, bottomCells)
		topLists := collectLists(idx, topCells)

		bottoms := seeding.CompatibleBottoms(m, bottomLists, f.Config)
		tops := seeding.CompatibleTops(m, topLists, f.Config)
		if len(bottoms) == 0 || len(tops) == 0 {
			continue
		}

		bottomLin := seeding.TransformAll(m, bottoms, false)
		topLin := seeding.TransformAll(m, tops, true)
		groups := seeding.BuildTriplets(m, bottomLin, topLin, f.Config)

		var midSeeds []seedfilter.WeightedSeed
		for _, g := range groups {
			midSeeds = append(midSeeds, f.TwoSp.Filter(m, g, f.Config)...)
		}
		ranked := f.OneSp.Filter(m, midSeeds, f.Config)
		out = append(out, toExternalSeeds(ranked)...)
	}
	return out
}

func collectLists(idx *index.Index, cells []index.CellID) [][]*spacepoint.Internal {
	lists := make([][]*spacepoint.Internal, 0, len(cells))
	for _, c := range cells {
		bin := idx.At(c)
		if bin == nil {
			continue
		}
		lists = append(lists, bin.Points)
	}
	return lists
}

func toExternalSeeds(seeds []seedfilter.WeightedSeed) []Seed {
	out := make([]Seed, len(seeds))
	for i, s := range seeds {
		out[i] = Seed{
			Bottom: s.Bottom.Src,
			Middle: s.Middle.Src,
			Top:    s.Top.Src,
			Zo:     s.Zo,
			Weight: s.Weight,
		}
	}
	return out
}
