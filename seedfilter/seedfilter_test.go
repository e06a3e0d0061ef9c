// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedfilter

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/seeding"
	"github.com/cpmech/trkseed/spacepoint"
)

type fakePoint struct{ x, y, z float64 }

func (p fakePoint) X() float64 { return p.x }
func (p fakePoint) Y() float64 { return p.y }
func (p fakePoint) Z() float64 { return p.z }

func point(x, y, z float64) *spacepoint.Internal {
	return spacepoint.New(fakePoint{x: x, y: y, z: z}, 0, 0, spacepoint.DefaultCovarianceTool{}, 0, 0, 1)
}

func testConfig(tst *testing.T) *cfg.Config {
	c := &cfg.Config{
		MinPt: 400, BFieldInZ: 0.002, CotThetaMax: 7.40627,
		DeltaRMin: 5, DeltaRMax: 270, ImpactMax: 10, SigmaScattering: 5,
		MaxSeedsPerSpM: 2, CollisionRegionMin: -150, CollisionRegionMax: 150,
		PhiMin: -math.Pi, PhiMax: math.Pi, ZMin: -500, ZMax: 500, RMax: 400,
		RadLengthPerSeed: 0.1,
	}
	if err := c.Init(); err != nil {
		tst.Fatalf("cfg.Init failed: %v", err)
	}
	return c
}

func TestDefault2SpFilterFoldsSharedCurvature(tst *testing.T) {

	chk.PrintTitle("Default2SpFilterFoldsSharedCurvature")

	bottom := point(30, 0, 0)
	middle := point(80, 0, 0)
	group := seeding.BottomGroup{
		Bottom: bottom,
		Zo:     0,
		Tops: []seeding.TopCandidate{
			{Top: point(180, 0, 0), Curvature: 0.001, ImpactParam: 1},
			{Top: point(181, 0, 0), Curvature: 0.001 + curvatureTol/2, ImpactParam: 2}, // shares curvature
			{Top: point(182, 0, 0), Curvature: 0.01, ImpactParam: 0.5},                 // distinct curvature
		},
	}

	var f Default2SpFilter
	seeds := f.Filter(middle, group, testConfig(tst))
	if len(seeds) != 2 {
		tst.Fatalf("expected the two close-curvature tops folded into one seed, got %d seeds", len(seeds))
	}
}

func TestDefault1SpFilterCapsAndRanksByWeight(tst *testing.T) {

	chk.PrintTitle("Default1SpFilterCapsAndRanksByWeight")

	middle := point(80, 0, 0)
	c := testConfig(tst) // maxSeedsPerSpM = 2
	seeds := []WeightedSeed{
		{Bottom: point(30, 0, 0), Middle: middle, Top: point(180, 0, 0), Zo: 0, Weight: 1},
		{Bottom: point(31, 0, 0), Middle: middle, Top: point(181, 0, 0), Zo: 1, Weight: 5},
		{Bottom: point(32, 0, 0), Middle: middle, Top: point(182, 0, 0), Zo: 2, Weight: 3},
	}

	var f Default1SpFilter
	ranked := f.Filter(middle, seeds, c)
	if len(ranked) != 2 {
		tst.Fatalf("expected cap at maxSeedsPerSpM=2, got %d", len(ranked))
	}
	if ranked[0].Weight != 5 || ranked[1].Weight != 3 {
		tst.Errorf("expected descending weight order [5,3], got [%v,%v]", ranked[0].Weight, ranked[1].Weight)
	}
}

func TestRegistryDefaults(tst *testing.T) {

	chk.PrintTitle("RegistryDefaults")

	if _, err := NewTwoSp("default"); err != nil {
		tst.Errorf("default 2SpFixed filter should be registered: %v", err)
	}
	if _, err := NewOneSp("default"); err != nil {
		tst.Errorf("default 1SpFixed filter should be registered: %v", err)
	}
	if _, err := NewTwoSp("missing"); err == nil {
		tst.Errorf("expected an error for an unregistered 2SpFixed filter")
	}
}
