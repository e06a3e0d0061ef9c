// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedfilter

import (
	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

// Default1SpFilter merges the weighted seeds from every bottom of one
// middle point, ranks them by weight, and keeps at most
// maxSeedsPerSpM. Ties are broken by rankByWeight's stable ordering.
type Default1SpFilter struct{}

// Filter implements OneSpFilter.
func (Default1SpFilter) Filter(middle *spacepoint.Internal, seeds []WeightedSeed, c *cfg.Config) []WeightedSeed {
	ranked := rankByWeight(seeds)
	if len(ranked) > c.MaxSeedsPerSpM {
		ranked = ranked[:c.MaxSeedsPerSpM]
	}
	return ranked
}
