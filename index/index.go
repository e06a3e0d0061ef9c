// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package index implements the two-dimensional (phi, z) binned index
// over adapted spacepoints that the triplet seed finder scans. Cells
// are sized from the configuration (§4.1) and, once built, hold their
// spacepoints sorted by non-decreasing radius so the doublet builder's
// break/continue scan (seeding package) is safe.
package index

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

// CellID identifies one (phi, z) cell.
type CellID struct {
	Phi int
	Z   int
}

// Bin is the list of internal spacepoints assigned to one cell. It is
// sorted by non-decreasing radius up to the 1mm bucket tolerance
// described in §4.1.
type Bin struct {
	Points []*spacepoint.Internal
}

// Index is the read-only, per-event spatial index. It is safe to share
// across worker goroutines once Build returns: nothing in it is mutated
// afterwards (§5).
type Index struct {
	cfg *cfg.Config

	nPhi, nZ    int
	phiBinWidth float64
	zBinWidth   float64

	cells map[CellID]*Bin
}

// bucketWidth is the radius-bucket granularity used while flushing
// spacepoints into bins, per §4.1 ("the radius sort tolerance is one
// bucket, ~1mm").
const bucketWidth = 1.0

// Build constructs the index from a flat list of externally-owned
// spacepoints. Out-of-region points are silently dropped (§4.1, §7);
// this is not an error condition.
func Build(points []spacepoint.Point, cov spacepoint.CovarianceTool, c *cfg.Config) (*Index, error) {
	if !c.Ready() {
		return nil, chk.Err("cfg.Config must be initialised with Init() before building an index")
	}

	idx := &Index{cfg: c}
	idx.sizeCells()
	idx.cells = make(map[CellID]*Bin)

	beamOffset := math.Hypot(c.BeamPosX, c.BeamPosY)
	rBoundary := c.RMax + beamOffset
	buckets := make([][]*spacepoint.Internal, int(math.Ceil(rBoundary)))

	for _, sp := range points {
		z := sp.Z()
		if z < c.ZMin || z > c.ZMax {
			continue
		}
		phi := math.Atan2(sp.Y()-c.BeamPosY, sp.X()-c.BeamPosX)
		if phi < c.PhiMin || phi > c.PhiMax {
			continue
		}
		inner := spacepoint.New(sp, c.BeamPosX, c.BeamPosY, cov, c.ZAlign, c.RAlign, c.SigmaError)
		bucket := math.Floor(inner.R / bucketWidth)
		if bucket >= rBoundary {
			// drop spacepoints whose radius bucket reaches or exceeds
			// rMax+|beamPos|, per §4.1; see the open question in the
			// design notes.
			continue
		}
		buckets[int(bucket)] = append(buckets[int(bucket)], inner)
	}

	for _, bucket := range buckets {
		for _, inner := range bucket {
			cell := idx.cellOf(inner)
			bin, ok := idx.cells[cell]
			if !ok {
				bin = &Bin{}
				idx.cells[cell] = bin
			}
			bin.Points = append(bin.Points, inner)
		}
	}
	return idx, nil
}

// sizeCells derives the (phi, z) cell grid from bFieldInZ, minPt,
// zMin, zMax, deltaRMax, and cotThetaMax. rMax does not enter the cell
// sizes; it only bounds which spacepoints Build keeps.
func (idx *Index) sizeCells() {
	c := idx.cfg

	minHelixRadius := c.MinPt / (300 * c.BFieldInZ)
	half := c.DeltaRMax / (2 * minHelixRadius)
	half = utl.Min(half, 1)
	phiWidth := 2 * math.Asin(half)
	if phiWidth <= 0 || math.IsNaN(phiWidth) {
		phiWidth = 2 * math.Pi
	}
	idx.nPhi = int(2 * math.Pi / phiWidth)
	if idx.nPhi < 1 {
		idx.nPhi = 1
	}
	idx.phiBinWidth = 2 * math.Pi / float64(idx.nPhi)

	// a z bin must be wide enough to hold the worst-case Delta-z of a
	// single doublet (deltaRMax * cotThetaMax), or the reference bin
	// finders (which never cross z bins, §4.2) would silently drop
	// doublets that straddle a bin edge near the interaction region.
	span := c.ZMax - c.ZMin
	worstCaseDz := c.DeltaRMax * c.CotThetaMax
	idx.nZ = 1
	if worstCaseDz > 0 && worstCaseDz < span {
		idx.nZ = int(span / worstCaseDz)
		if idx.nZ < 1 {
			idx.nZ = 1
		}
	}
	idx.zBinWidth = span / float64(idx.nZ)
}

func (idx *Index) cellOf(sp *spacepoint.Internal) CellID {
	c := idx.cfg
	iphi := int((sp.Phi - c.PhiMin) / idx.phiBinWidth)
	if iphi < 0 {
		iphi = 0
	}
	if iphi >= idx.nPhi {
		iphi = idx.nPhi - 1
	}
	iz := int((sp.Z - c.ZMin) / idx.zBinWidth)
	if iz < 0 {
		iz = 0
	}
	if iz >= idx.nZ {
		iz = idx.nZ - 1
	}
	return CellID{Phi: iphi, Z: iz}
}

// At returns the bin at the given cell, or nil if the cell has no
// spacepoints.
func (idx *Index) At(cell CellID) *Bin {
	return idx.cells[cell]
}

// NumCells returns the (nPhi, nZ) extents of the grid.
func (idx *Index) NumCells() (int, int) {
	return idx.nPhi, idx.nZ
}

// WrapPhi normalises a phi cell coordinate modulo nPhi, implementing the
// phi wrap-around a bin finder needs at the grid's seam.
func (idx *Index) WrapPhi(iphi int) int {
	n := idx.nPhi
	iphi %= n
	if iphi < 0 {
		iphi += n
	}
	return iphi
}
