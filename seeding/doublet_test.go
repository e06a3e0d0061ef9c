// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seeding

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

type fakePoint struct{ x, y, z float64 }

func (p fakePoint) X() float64 { return p.x }
func (p fakePoint) Y() float64 { return p.y }
func (p fakePoint) Z() float64 { return p.z }

func scenarioConfig(tst *testing.T) *cfg.Config {
	c := &cfg.Config{
		MinPt: 400, BFieldInZ: 0.002, CotThetaMax: 7.40627,
		DeltaRMin: 5, DeltaRMax: 270, ImpactMax: 10, SigmaScattering: 5,
		MaxSeedsPerSpM: 5, CollisionRegionMin: -150, CollisionRegionMax: 150,
		PhiMin: -math.Pi, PhiMax: math.Pi, ZMin: -500, ZMax: 500, RMax: 400,
		RadLengthPerSeed: 0.1,
	}
	if err := c.Init(); err != nil {
		tst.Fatalf("cfg.Init failed: %v", err)
	}
	return c
}

func inner(x, y, z float64) *spacepoint.Internal {
	return spacepoint.New(fakePoint{x: x, y: y, z: z}, 0, 0, spacepoint.DefaultCovarianceTool{}, 0, 0, 1)
}

func TestCompatibleBottomsBreakContinue(tst *testing.T) {

	chk.PrintTitle("CompatibleBottomsBreakContinue")

	c := scenarioConfig(tst)
	m := inner(80, 0, 0)

	// radius-sorted ascending, as the index guarantees
	candidates := []*spacepoint.Internal{
		inner(5, 0, 0),  // deltaR=75, ok
		inner(30, 0, 0), // deltaR=50, ok
		inner(76, 0, 0), // deltaR=4 < deltaRMin: must break, not just skip
		inner(79, 0, 0), // deltaR=1, would also be < deltaRMin but must never be reached
	}
	got := CompatibleBottoms(m, [][]*spacepoint.Internal{candidates}, c)
	if len(got) != 2 {
		tst.Fatalf("expected 2 compatible bottoms, got %d", len(got))
	}
	if got[0].R != 5 || got[1].R != 30 {
		tst.Errorf("unexpected bottoms: %v", got)
	}
}

func TestCompatibleTopsBreakContinue(tst *testing.T) {

	chk.PrintTitle("CompatibleTopsBreakContinue")

	c := scenarioConfig(tst)
	m := inner(80, 0, 0)

	candidates := []*spacepoint.Internal{
		inner(83, 0, 0),  // deltaR=3 < deltaRMin: continue
		inner(180, 0, 0), // deltaR=100, ok
		inner(355, 0, 0), // deltaR=275 > deltaRMax: must break
		inner(399, 0, 0), // would also exceed deltaRMax, must never be reached
	}
	got := CompatibleTops(m, [][]*spacepoint.Internal{candidates}, c)
	if len(got) != 1 {
		tst.Fatalf("expected 1 compatible top, got %d", len(got))
	}
	if got[0].R != 180 {
		tst.Errorf("unexpected top: %v", got)
	}
}

func TestCompatibleBottomsRejectsZOrigin(tst *testing.T) {

	chk.PrintTitle("CompatibleBottomsRejectsZOrigin")

	c := scenarioConfig(tst)
	m := inner(80, 0, 200)

	candidates := []*spacepoint.Internal{
		inner(30, 0, 205), // zOrigin extrapolates far outside the collision region
	}
	got := CompatibleBottoms(m, [][]*spacepoint.Internal{candidates}, c)
	if len(got) != 0 {
		tst.Errorf("expected the out-of-region doublet to be rejected, got %v", got)
	}
}
