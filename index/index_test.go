// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

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

func testConfig(tst *testing.T) *cfg.Config {
	c := &cfg.Config{
		MinPt:              400,
		BFieldInZ:          0.002,
		CotThetaMax:        7.40627,
		DeltaRMin:          5,
		DeltaRMax:          270,
		ImpactMax:          10,
		SigmaScattering:    5,
		MaxSeedsPerSpM:     5,
		CollisionRegionMin: -150,
		CollisionRegionMax: 150,
		PhiMin:             -math.Pi,
		PhiMax:             math.Pi,
		ZMin:               -500,
		ZMax:               500,
		RMax:               200,
		RadLengthPerSeed:   0.1,
	}
	if err := c.Init(); err != nil {
		tst.Fatalf("cfg.Init failed: %v", err)
	}
	return c
}

func TestBuildDropsOutOfRegion(tst *testing.T) {

	chk.PrintTitle("BuildDropsOutOfRegion")

	c := testConfig(tst)
	pts := []spacepoint.Point{
		fakePoint{x: 30, y: 0, z: 0},    // in region
		fakePoint{x: 30, y: 0, z: 9000}, // z out of range
		fakePoint{x: 1000, y: 0, z: 0},  // r beyond rMax
	}
	idx, err := Build(pts, spacepoint.DefaultCovarianceTool{}, c)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	if n := countRetained(tst, idx); n != 1 {
		tst.Errorf("expected exactly 1 retained spacepoint, got %d", n)
	}
}

func countRetained(tst *testing.T, idx *Index) int {
	count := 0
	nPhi, nZ := idx.NumCells()
	for iphi := 0; iphi < nPhi; iphi++ {
		for iz := 0; iz < nZ; iz++ {
			if b := idx.At(CellID{Phi: iphi, Z: iz}); b != nil {
				count += len(b.Points)
			}
		}
	}
	return count
}

func TestBuildDropsAtRMaxBoundary(tst *testing.T) {

	chk.PrintTitle("BuildDropsAtRMaxBoundary")

	c := testConfig(tst) // rMax=200, beamPos=(0,0)
	pts := []spacepoint.Point{
		fakePoint{x: 199.9, y: 0, z: 0}, // floor(r)=199 < 200: kept
		fakePoint{x: 200.0, y: 0, z: 0}, // floor(r)=200 >= 200: dropped
		fakePoint{x: 201.9, y: 0, z: 0}, // floor(r)=201 >= 200: dropped
	}
	idx, err := Build(pts, spacepoint.DefaultCovarianceTool{}, c)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}
	if n := countRetained(tst, idx); n != 1 {
		tst.Errorf("expected exactly the r=199.9 point retained at the rMax boundary, got %d", n)
	}
}

func TestBinsAreRadiusSorted(tst *testing.T) {

	chk.PrintTitle("BinsAreRadiusSorted")

	c := testConfig(tst)
	pts := []spacepoint.Point{
		fakePoint{x: 80, y: 0, z: 0},
		fakePoint{x: 30, y: 0, z: 0},
		fakePoint{x: 180, y: 0, z: 0},
		fakePoint{x: 50, y: 0, z: 0},
	}
	idx, err := Build(pts, spacepoint.DefaultCovarianceTool{}, c)
	if err != nil {
		tst.Fatalf("Build failed: %v", err)
	}

	nPhi, nZ := idx.NumCells()
	for iphi := 0; iphi < nPhi; iphi++ {
		for iz := 0; iz < nZ; iz++ {
			b := idx.At(CellID{Phi: iphi, Z: iz})
			if b == nil {
				continue
			}
			for i := 1; i < len(b.Points); i++ {
				if b.Points[i].R < b.Points[i-1].R-1.0 {
					tst.Errorf("radii not sorted within tolerance at cell (%d,%d): %v", iphi, iz, b.Points)
				}
			}
		}
	}
}
