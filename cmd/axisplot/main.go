// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command axisplot renders an axis for a column of samples.
//
// axisplot reads float64 samples, one per line, from the input files
// (or standard input), fits a scale to the observed extent, and
// writes a single SVG axis. It exists mostly as a worked example of
// the scale, format and axis packages.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-chart/axis"
	"github.com/aclements/go-chart/format"
	"github.com/aclements/go-chart/scale"
)

func main() {
	log.SetPrefix("axisplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagLog    = flag.Bool("log", false, "use a logarithmic scale")
		flagBase   = flag.Float64("base", 10, "tick `base` for the logarithmic scale")
		flagWidth  = flag.Int("width", 640, "axis width in `pixels`")
		flagFormat = flag.String("format", "general", "tick label `format`: fixed, general, sci, si, short, percent, or currency")
		flagPrec   = flag.Int("prec", 3, "label `precision` in decimal digits")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	f, err := newFormatter(*flagFormat, *flagPrec)
	if err != nil {
		log.Fatal(err)
	}

	var samples []float64
	if flag.NArg() == 0 {
		samples, err = readSamples(os.Stdin, "stdin", samples)
		if err != nil {
			log.Fatal(err)
		}
	}
	for _, path := range flag.Args() {
		file, err := os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		samples, err = readSamples(file, path, samples)
		file.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	if len(samples) == 0 {
		log.Fatal("no samples")
	}

	s, err := newScale(*flagLog, *flagBase, samples)
	if err != nil {
		log.Fatal(err)
	}
	const pad = 40
	s.SetRange(pad, float64(*flagWidth-pad))

	out := io.Writer(os.Stdout)
	if *flagOut != "" {
		file, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		out = file
	}
	axis.New(s, f).RenderSVG(out, *flagWidth, 60)
}

// newScale builds a scale over the extent of samples and nices its
// domain.
func newScale(logarithmic bool, base float64, samples []float64) (scale.Quantitative, error) {
	var s scale.Quantitative
	if logarithmic {
		ls, err := scale.NewLog(base, 0)
		if err != nil {
			return nil, err
		}
		s = ls
	} else {
		s = scale.NewLinear()
	}
	for _, v := range samples {
		s.Include(v)
	}
	min, max, ok := s.Extent()
	if !ok {
		return nil, fmt.Errorf("no representable samples")
	}
	if err := s.SetDomain(min, max); err != nil {
		return nil, err
	}
	s.Nice()
	return s, nil
}

func newFormatter(name string, prec int) (format.Func, error) {
	switch name {
	case "fixed":
		return format.Fixed(prec)
	case "general":
		return format.General(prec)
	case "sci":
		return format.Exponential(prec)
	case "si":
		return format.SISuffix(prec)
	case "short":
		return format.ShortScale(prec)
	case "percent":
		return format.Percentage(prec)
	case "currency":
		return format.Currency(prec, "$", true)
	}
	return nil, fmt.Errorf("unknown format %q", name)
}

func readSamples(r io.Reader, name string, samples []float64) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", name, line, err)
		}
		samples = append(samples, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return samples, nil
}
