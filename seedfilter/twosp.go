// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedfilter

import (
	"math"

	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/seeding"
	"github.com/cpmech/trkseed/spacepoint"
)

// curvatureTol is the closeness, in inverse mm, below which two top
// candidates are considered to share a curvature for the purpose of
// the shared-curvature bonus.
const curvatureTol = 3e-5

// Default2SpFilter rewards tops whose curvature is shared by other
// accepted tops of the same bottom (several hits consistent with one
// helix is stronger evidence than a single one) and penalises large
// impact parameters; near-duplicate tops are folded into a single
// seed instead of producing near-identical entries.
type Default2SpFilter struct{}

// Filter implements TwoSpFilter.
func (Default2SpFilter) Filter(middle *spacepoint.Internal, group seeding.BottomGroup, c *cfg.Config) []WeightedSeed {
	tops := group.Tops
	n := len(tops)
	seeds := make([]WeightedSeed, 0, n)
	used := make([]bool, n)

	for i, ti := range tops {
		if used[i] {
			continue
		}
		weight := -ti.ImpactParam
		for j, tj := range tops {
			if i == j || used[j] {
				continue
			}
			if math.Abs(ti.Curvature-tj.Curvature) < curvatureTol {
				weight++
				used[j] = true // fold geometrically redundant tops into this seed
			}
		}
		seeds = append(seeds, WeightedSeed{
			Bottom: group.Bottom,
			Middle: middle,
			Top:    ti.Top,
			Zo:     group.Zo,
			Weight: weight,
		})
	}
	return seeds
}
