// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package seeding implements the doublet builder, the conformal (U,V)
// transform, and the triplet builder that together turn a middle
// spacepoint and its candidate partner cells into ranked triplet
// candidates (§4.3-4.5).
package seeding

import (
	"math"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

// CompatibleBottoms scans each candidate cell's spacepoints (already
// radius-sorted ascending) and returns those compatible with m as a
// bottom partner, per §4.3. Each cell is scanned independently so the
// early break remains valid even though cells are not merged in radius
// order with each other.
func CompatibleBottoms(m *spacepoint.Internal, cellLists [][]*spacepoint.Internal, c *cfg.Config) []*spacepoint.Internal {
	var out []*spacepoint.Internal
	for _, list := range cellLists {
		for _, b := range list {
			deltaR := m.R - b.R
			if deltaR > c.DeltaRMax {
				continue
			}
			if deltaR < c.DeltaRMin {
				break // bin is radius-sorted ascending: rB only grows from here, deltaR only shrinks
			}
			cotTheta := (m.Z - b.Z) / deltaR
			if math.Abs(cotTheta) > c.CotThetaMax {
				continue
			}
			zOrigin := m.Z - m.R*cotTheta
			if zOrigin < c.CollisionRegionMin || zOrigin > c.CollisionRegionMax {
				continue
			}
			out = append(out, b)
		}
	}
	return out
}

// CompatibleTops mirrors CompatibleBottoms for top partners: deltaR =
// rT - rM grows as the (radius-sorted ascending) cell list is scanned,
// so the short-distance cut continues and the long-distance cut breaks.
func CompatibleTops(m *spacepoint.Internal, cellLists [][]*spacepoint.Internal, c *cfg.Config) []*spacepoint.Internal {
	var out []*spacepoint.Internal
	for _, list := range cellLists {
		for _, t := range list {
			deltaR := t.R - m.R
			if deltaR < c.DeltaRMin {
				continue
			}
			if deltaR > c.DeltaRMax {
				break
			}
			cotTheta := (t.Z - m.Z) / deltaR
			if math.Abs(cotTheta) > c.CotThetaMax {
				continue
			}
			zOrigin := m.Z - m.R*cotTheta
			if zOrigin < c.CollisionRegionMin || zOrigin > c.CollisionRegionMax {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}
