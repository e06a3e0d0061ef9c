// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package spacepoint wraps externally-owned detector hits for the seed
// finder. The core never copies or owns an external spacepoint; it only
// borrows it through the Point accessor and derives an Internal value
// from it once, during indexing.
package spacepoint

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Point is the external spacepoint accessor. The caller's concrete
// spacepoint type is never known to the core; only x, y, z are needed.
type Point interface {
	X() float64
	Y() float64
	Z() float64
}

// CovarianceTool produces the transverse and longitudinal covariance
// contributions of a spacepoint given the alignment-error configuration
// (zAlign, rAlign, sigmaError). Implementations are supplied by the
// caller; the core treats this as an opaque callback.
type CovarianceTool interface {
	Covariance(sp Point, zAlign, rAlign, sigmaError float64) (covr, covz float64)
}

// Internal is the value the index actually stores: the external point
// translated by the beam position, plus its polar coordinates and
// covariance contributions. It is created once during indexing and
// never mutated afterwards.
type Internal struct {
	Src  Point   // borrowed external spacepoint
	X, Y float64 // beam-translated transverse coordinates
	Z    float64 // longitudinal coordinate
	R    float64 // radius; r = sqrt(x^2+y^2) >= 0
	Phi  float64 // azimuth in [-pi, pi]
	CovR float64 // transverse covariance contribution
	CovZ float64 // longitudinal covariance contribution
}

// New derives an Internal spacepoint from an external one. beamX, beamY
// are subtracted from the raw x, y before r and phi are computed, per
// the beamPos configuration option.
func New(sp Point, beamX, beamY float64, cov CovarianceTool, zAlign, rAlign, sigmaError float64) *Internal {
	x := sp.X() - beamX
	y := sp.Y() - beamY
	covr, covz := cov.Covariance(sp, zAlign, rAlign, sigmaError)
	return &Internal{
		Src:  sp,
		X:    x,
		Y:    y,
		Z:    sp.Z(),
		R:    la.VecNorm([]float64{x, y}),
		Phi:  math.Atan2(y, x),
		CovR: covr,
		CovZ: covz,
	}
}

// DefaultCovarianceTool is a reference covariance contribution model:
// the alignment errors add in quadrature with the configured spread,
// independent of the spacepoint itself. Callers with a detector-specific
// error model should supply their own CovarianceTool instead.
type DefaultCovarianceTool struct{}

// Covariance implements CovarianceTool.
func (DefaultCovarianceTool) Covariance(sp Point, zAlign, rAlign, sigmaError float64) (covr, covz float64) {
	covr = rAlign*rAlign + sigmaError*sigmaError
	covz = zAlign*zAlign + sigmaError*sigmaError
	return
}
