// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seedviz is a diagnostic companion to seedfind: it buckets the (Zo,
// weight) pairs of every produced seed into a spatial bin structure,
// the same cataloguing role gm.Bins plays for nodes and integration
// points in the FEM output package, then walks the occupied bins back
// out to print a coarse density report.
package main

import (
	"encoding/csv"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/trkseed"
	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

type xyz struct{ x, y, z float64 }

func (p *xyz) X() float64 { return p.x }
func (p *xyz) Y() float64 { return p.y }
func (p *xyz) Z() float64 { return p.z }

func main() {
	fnkey := flag.String("cfg", "seedfind", "configuration file key (reads <dir>/<cfg>.json)")
	dir := flag.String("dir", ".", "directory holding the config and CSV files")
	points := flag.String("points", "spacepoints.csv", "CSV file of x,y,z spacepoints")
	ndiv := flag.Int("ndiv", 10, "bin divisions along each axis of the (Zo, weight) density map")

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("seedviz failed:\n%v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()

	c, err := cfg.Load(*dir, *fnkey+".json")
	if err != nil {
		chk.Panic("%v", err)
	}

	sps, err := readSpacepoints(filepath.Join(*dir, *points))
	if err != nil {
		chk.Panic("%v", err)
	}

	finder, err := trkseed.NewFinder(c, spacepoint.DefaultCovarianceTool{}, "phi1", "default", "default")
	if err != nil {
		chk.Panic("%v", err)
	}

	cells, err := finder.Run(sps)
	if err != nil {
		chk.Panic("%v", err)
	}

	var seeds []trkseed.Seed
	for _, s := range cells {
		seeds = append(seeds, s...)
	}
	if len(seeds) == 0 {
		io.Pfyel("seedviz: no seeds produced\n")
		return
	}

	zoMin, zoMax := seeds[0].Zo, seeds[0].Zo
	wMin, wMax := seeds[0].Weight, seeds[0].Weight
	for _, s := range seeds {
		zoMin, zoMax = minMax(zoMin, zoMax, s.Zo)
		wMin, wMax = minMax(wMin, wMax, s.Weight)
	}
	// Bins needs a non-degenerate extent even when every seed lands on
	// the same value.
	if zoMax == zoMin {
		zoMax = zoMin + 1
	}
	if wMax == wMin {
		wMax = wMin + 1
	}

	var bins gm.Bins
	err = bins.Init([]float64{zoMin, wMin}, []float64{zoMax, wMax}, *ndiv)
	if err != nil {
		chk.Panic("cannot initialise seed density bins: %v", err)
	}
	for i, s := range seeds {
		err = bins.Append([]float64{s.Zo, s.Weight}, i)
		if err != nil {
			chk.Panic("cannot append seed %d to density bins: %v", i, err)
		}
	}

	io.Pfgreen("seedviz: %d seeds binned over Zo in [%.2f,%.2f], weight in [%.2f,%.2f]\n",
		len(seeds), zoMin, zoMax, wMin, wMax)

	occupied := 0
	for _, b := range bins.Bins {
		if b == nil || len(b.Entries) == 0 {
			continue
		}
		occupied++
		io.Pf("  bin %4d: %d seed(s)\n", b.Index, len(b.Entries))
	}
	io.Pfcyan("  %d/%d bins occupied\n", occupied, len(bins.Bins))
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}

func readSpacepoints(fn string) ([]spacepoint.Point, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make([]spacepoint.Point, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		x, errX := strconv.ParseFloat(row[0], 64)
		y, errY := strconv.ParseFloat(row[1], 64)
		z, errZ := strconv.ParseFloat(row[2], 64)
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		out = append(out, &xyz{x: x, y: y, z: z})
	}
	return out, nil
}
