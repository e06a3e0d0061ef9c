// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seeding

import (
	"math"

	"github.com/cpmech/trkseed/spacepoint"
)

// LinCircle is the conformal-space record attached to one (middle,
// partner) pair, per §4.4. It is computed lazily by Transform and
// discarded once the middle point has been processed.
type LinCircle struct {
	Partner  *spacepoint.Internal
	CotTheta float64
	Zo       float64
	IDeltaR  float64
	U        float64
	V        float64
	Er       float64
}

// Transform linearises the circle equation around the middle
// spacepoint m for a partner p. isTop selects the sign convention: +1
// for a top partner, -1 for a bottom partner.
func Transform(m, p *spacepoint.Internal, isTop bool) LinCircle {
	cosPhiM := m.X / m.R
	sinPhiM := m.Y / m.R
	dx := p.X - m.X
	dy := p.Y - m.Y
	dz := p.Z - m.Z

	xp := dx*cosPhiM + dy*sinPhiM
	yp := dy*cosPhiM - dx*sinPhiM

	iDeltaR2 := 1 / (dx*dx + dy*dy)
	iDeltaR := math.Sqrt(iDeltaR2)

	sign := -1.0
	if isTop {
		sign = 1.0
	}
	cotTheta := dz * iDeltaR * sign
	zo := m.Z - m.R*cotTheta

	er := ((m.CovZ + p.CovZ) + cotTheta*cotTheta*(m.CovR+p.CovR)) * iDeltaR2

	return LinCircle{
		Partner:  p,
		CotTheta: cotTheta,
		Zo:       zo,
		IDeltaR:  iDeltaR,
		U:        xp * iDeltaR2,
		V:        yp * iDeltaR2,
		Er:       er,
	}
}

// TransformAll transforms every partner in parts against the middle
// spacepoint m.
func TransformAll(m *spacepoint.Internal, parts []*spacepoint.Internal, isTop bool) []LinCircle {
	out := make([]LinCircle, len(parts))
	for i, p := range parts {
		out[i] = Transform(m, p, isTop)
	}
	return out
}
