// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seeding

import (
	"math"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

// TopCandidate is an accepted (middle, top) pairing together with the
// quantities the seed filter needs: the fitted curvature and the
// transverse impact parameter of the (bottom, middle, top) triplet it
// belongs to.
type TopCandidate struct {
	Top         *spacepoint.Internal
	Curvature   float64
	ImpactParam float64
}

// BottomGroup is every accepted triplet sharing one (bottom, middle)
// doublet, keyed by that doublet's own Zo (§4.6: "the bottom's Zo").
type BottomGroup struct {
	Bottom *spacepoint.Internal
	Zo     float64
	Tops   []TopCandidate
}

// BuildTriplets pairs every compatible bottom with every compatible top
// in conformal space and applies the scattering, helix-radius, and
// impact-parameter cuts of §4.5. Results are grouped by bottom so the
// per-middle-fixed-bottom seed filter (§4.6) can consume them directly.
func BuildTriplets(m *spacepoint.Internal, bottoms, tops []LinCircle, c *cfg.Config) []BottomGroup {
	sigma2 := c.SigmaScattering * c.SigmaScattering
	groups := make([]BottomGroup, 0, len(bottoms))

	for _, b := range bottoms {
		group := BottomGroup{Bottom: b.Partner, Zo: b.Zo}
		iSinTheta2 := 1 + b.CotTheta*b.CotTheta
		scatteringInRegion2 := c.MaxScatteringAngle2 * iSinTheta2 * sigma2

		for _, t := range tops {
			// 1-3: scattering precheck using the configured multiple-scattering bound
			error2 := t.Er + b.Er + 2*(b.CotTheta*t.CotTheta*m.CovR+m.CovZ)*b.IDeltaR*t.IDeltaR
			deltaCotTheta := b.CotTheta - t.CotTheta
			deltaCotTheta2 := deltaCotTheta * deltaCotTheta

			// 4
			haveD := false
			var d float64
			if deltaCotTheta2-error2 > 0 {
				errv := math.Sqrt(error2)
				d = deltaCotTheta2 + error2 - 2*math.Abs(deltaCotTheta)*errv
				if d > scatteringInRegion2 {
					continue
				}
				haveD = true
			}

			// 5: degenerate conformal pair
			dU := t.U - b.U
			if dU == 0 {
				continue
			}

			// 6-7: helix radius floor
			A := (t.V - b.V) / dU
			s2 := 1 + A*A
			bPrime := b.V - A*b.U
			bPrime2 := bPrime * bPrime
			if s2 < bPrime2*c.MinHelixDiameter2 {
				continue
			}

			// 8: scattering bound re-evaluated at the measured pT
			iHelixDia2 := bPrime2 / s2
			pT2scat := 4 * iHelixDia2 * c.PT2PerRadius
			p2scat := pT2scat * iSinTheta2
			if haveD && d > p2scat*sigma2 {
				continue
			}

			// 9: impact parameter
			im := math.Abs((A - bPrime*m.R) * m.R)
			if im > c.ImpactMax {
				continue
			}

			// 10: accept
			curvature := bPrime / math.Sqrt(s2)
			group.Tops = append(group.Tops, TopCandidate{
				Top:         t.Partner,
				Curvature:   curvature,
				ImpactParam: im,
			})
		}

		if len(group.Tops) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
