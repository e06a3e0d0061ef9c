// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfg holds the configuration surface of the triplet seed
// finder: every scalar cut, region-of-interest bound, and material
// constant that parameterises indexing, doublet, and triplet
// construction. Config is immutable after Init succeeds.
package cfg

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config is the full set of caller-tunable parameters (see spec §6).
// Fields are read from a JSON file by Load, or set directly by a caller
// that already has them in memory; either way Init must run before use.
type Config struct {

	// momentum and curvature
	MinPt     float64 `json:"minPt"`     // lower pT bound, MeV
	BFieldInZ float64 `json:"bFieldInZ"` // longitudinal B field, kT

	// doublet cuts
	CotThetaMax float64 `json:"cotThetaMax"` // max |cotTheta| for any doublet
	DeltaRMin   float64 `json:"deltaRMin"` // mm
	DeltaRMax   float64 `json:"deltaRMax"` // mm

	// triplet cuts
	ImpactMax       float64 `json:"impactMax"`       // max transverse impact parameter, mm
	SigmaScattering float64 `json:"sigmaScattering"` // multiplier on the scattering bound, in sigma
	MaxSeedsPerSpM  int     `json:"maxSeedsPerSpM"`  // cap enforced by the per-middle filter

	// collision region
	CollisionRegionMin float64 `json:"collisionRegionMin"` // mm
	CollisionRegionMax float64 `json:"collisionRegionMax"` // mm

	// region of interest for indexing
	PhiMin float64 `json:"phiMin"`
	PhiMax float64 `json:"phiMax"`
	ZMin   float64 `json:"zMin"`
	ZMax   float64 `json:"zMax"`
	RMax   float64 `json:"rMax"`

	// beam
	BeamPosX float64 `json:"beamPosX"`
	BeamPosY float64 `json:"beamPosY"`

	// material budget for the highland multiple-scattering formula
	RadLengthPerSeed float64 `json:"radLengthPerSeed"`

	// forwarded to the covariance tool
	ZAlign     float64 `json:"zAlign"`
	RAlign     float64 `json:"rAlign"`
	SigmaError float64 `json:"sigmaError"`

	// derived constants, computed once by Init; do not set directly
	Highland            float64 `json:"-"`
	MaxScatteringAngle2 float64 `json:"-"`
	PTPerHelixRadius    float64 `json:"-"`
	MinHelixDiameter2   float64 `json:"-"`
	PT2PerRadius        float64 `json:"-"`

	initialised bool
}

// Load reads a Config from a JSON file and initialises it.
func Load(dir, fn string) (c *Config, err error) {
	b, err := io.ReadFile(dir + "/" + fn)
	if err != nil {
		return nil, err
	}
	c = new(Config)
	err = json.Unmarshal(b, c)
	if err != nil {
		return nil, err
	}
	err = c.Init()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Init validates the configuration and computes the derived constants
// used by the triplet builder (§4.5). It collects every violated bound
// instead of stopping at the first one, and must be called exactly once
// before a Config is used.
func (c *Config) Init() error {
	var bad []string
	check := func(cond bool, msg string) {
		if cond {
			bad = append(bad, msg)
		}
	}
	check(c.MinPt <= 0, "minPt must be > 0")
	check(c.BFieldInZ <= 0, "bFieldInZ must be > 0")
	check(c.CotThetaMax <= 0, "cotThetaMax must be > 0")
	check(c.DeltaRMin > c.DeltaRMax, "deltaRMin must be <= deltaRMax")
	check(c.DeltaRMax <= 0, "deltaRMax must be > 0")
	check(c.ImpactMax < 0, "impactMax must be >= 0")
	check(c.SigmaScattering <= 0, "sigmaScattering must be > 0")
	check(c.MaxSeedsPerSpM <= 0, "maxSeedsPerSpM must be > 0")
	check(c.CollisionRegionMin >= c.CollisionRegionMax, "collisionRegionMin must be < collisionRegionMax")
	check(c.PhiMin >= c.PhiMax, "phiMin must be < phiMax")
	check(c.ZMin >= c.ZMax, "zMin must be < zMax")
	check(c.RMax <= 0, "rMax must be > 0")
	check(c.RadLengthPerSeed <= 0, "radLengthPerSeed must be > 0")
	if len(bad) > 0 {
		return chk.Err("invalid configuration:\n  %s", strings.Join(bad, "\n  "))
	}

	// highland multiple-scattering formula; radLengthPerSeed is a
	// dimensionless fraction of a radiation length
	c.Highland = 13.6 * math.Sqrt(c.RadLengthPerSeed) * (1 + 0.038*math.Log(c.RadLengthPerSeed))
	c.MaxScatteringAngle2 = (c.Highland / c.MinPt) * (c.Highland / c.MinPt)

	// MeV/mm/kT convention
	c.PTPerHelixRadius = 300 * c.BFieldInZ
	minHelixDiameter := c.MinPt * 2 / c.PTPerHelixRadius
	c.MinHelixDiameter2 = minHelixDiameter * minHelixDiameter
	ratio := c.Highland / c.PTPerHelixRadius
	c.PT2PerRadius = ratio * ratio

	c.initialised = true
	return nil
}

// Ready reports whether Init has completed successfully.
func (c *Config) Ready() bool {
	return c.initialised
}
