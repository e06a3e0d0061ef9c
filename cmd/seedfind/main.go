// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seedfind is a small runnable entry point for the triplet seed finder:
// it loads a configuration JSON file and a CSV of x,y,z spacepoints,
// runs the pipeline, and prints a per-cell summary.
package main

import (
	"encoding/csv"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/trkseed"
	"github.com/cpmech/trkseed/cfg"
	"github.com/cpmech/trkseed/spacepoint"
)

// xyz is the simplest possible spacepoint.Point implementation: a bare
// (x,y,z) triple read straight from a CSV row.
type xyz struct{ x, y, z float64 }

func (p *xyz) X() float64 { return p.x }
func (p *xyz) Y() float64 { return p.y }
func (p *xyz) Z() float64 { return p.z }

func main() {

	fnkey := flag.String("cfg", "seedfind", "configuration file key (reads <dir>/<cfg>.json)")
	dir := flag.String("dir", ".", "directory holding the config and CSV files")
	points := flag.String("points", "spacepoints.csv", "CSV file of x,y,z spacepoints")
	binFinder := flag.String("binfinder", "phi1", "bin finder strategy: self, phi1")
	twoSp := flag.String("twosp", "default", "2SpFixed filter policy")
	oneSp := flag.String("onesp", "default", "1SpFixed filter policy")

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("seedfind failed:\n%v\n", err)
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

	finder, err := trkseed.NewFinder(c, spacepoint.DefaultCovarianceTool{}, *binFinder, *twoSp, *oneSp)
	if err != nil {
		chk.Panic("%v", err)
	}

	cells, err := finder.Run(sps)
	if err != nil {
		chk.Panic("%v", err)
	}

	total := 0
	for _, seeds := range cells {
		total += len(seeds)
	}
	io.Pfgreen("seedfind: %d spacepoints -> %d seeds across %d cells\n", len(sps), total, len(cells))
	for i, seeds := range cells {
		if len(seeds) == 0 {
			continue
		}
		io.Pf("  cell %4d: %d seed(s)\n", i, len(seeds))
		for _, s := range seeds {
			io.Pfcyan("    Zo=%8.3f weight=%6.3f\n", s.Zo, s.Weight)
		}
	}
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
			continue // header row or malformed line
		}
		out = append(out, &xyz{x: x, y: y, z: z})
	}
	return out, nil
}
