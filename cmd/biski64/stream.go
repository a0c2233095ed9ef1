// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"golang.org/x/exp/biski64"
	"golang.org/x/exp/biski64/baseline"
)

var streamCommand = cli.Command{
	Name:  "stream",
	Usage: "write generator output to stdout",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "gen, g",
			Value: "biski64",
			Usage: "generator to draw from",
		},
		cli.Uint64Flag{
			Name:   "seed",
			Value:  12345,
			Usage:  "seed for the generator",
			EnvVar: "BISKI64_SEED",
		},
		cli.Uint64Flag{
			Name:  "stream",
			Value: 0,
			Usage: "stream index, biski64 only",
		},
		cli.Uint64Flag{
			Name:  "streams",
			Value: 1,
			Usage: "total number of parallel streams, biski64 only",
		},
		cli.Uint64Flag{
			Name:  "count, c",
			Value: 16,
			Usage: "number of values to emit, 0 for unlimited",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "raw64",
			Usage: "output format: raw64 (little-endian words) or float (decimal in [0,1))",
		},
	},
	Action: runStream,
}

func runStream(c *cli.Context) error {
	format := c.String("format")
	switch format {
	case "raw64", "float":
	default:
		return errors.Errorf("unknown format %q (have: raw64, float)", format)
	}

	g, err := newGenerator(c.String("gen"), c.Uint64("seed"), c.Uint64("stream"), c.Uint64("streams"))
	if err != nil {
		return err
	}

	count := c.Uint64("count")
	log.Info().
		Str("gen", c.String("gen")).
		Uint64("seed", c.Uint64("seed")).
		Uint64("stream", c.Uint64("stream")).
		Uint64("streams", c.Uint64("streams")).
		Uint64("count", count).
		Str("format", format).
		Msg("streaming")

	w := bufio.NewWriter(os.Stdout)
	if err := writeValues(w, g, format, count); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "flush stdout")
}

// newGenerator builds the named generator seeded with seed and, for
// biski64, positioned on the requested parallel stream.
func newGenerator(name string, seed, stream, streams uint64) (baseline.Generator, error) {
	if streams == 0 {
		return nil, errors.New("streams must be at least 1")
	}
	if streams > uint64(^uint32(0)) {
		return nil, errors.Errorf("stream count %d exceeds the maximum of %d", streams, ^uint32(0))
	}
	if stream >= streams {
		return nil, errors.Errorf("stream index %d out of range for %d streams", stream, streams)
	}
	if name == "biski64" {
		return biski64.NewStream(seed, uint32(stream), uint32(streams)), nil
	}
	if streams > 1 {
		return nil, errors.Errorf("generator %q does not support parallel streams", name)
	}
	e, ok := baseline.Lookup(name)
	if !ok {
		return nil, errors.Errorf("unknown generator %q (have: %s)",
			name, strings.Join(baseline.Names(), ", "))
	}
	return e.New(seed), nil
}

// writeValues emits count values from g to w, or runs until a write
// fails when count is zero. The float format applies the same
// upper-53-bit mapping to every generator.
func writeValues(w io.Writer, g baseline.Generator, format string, count uint64) error {
	var buf [8]byte
	for n := uint64(0); count == 0 || n < count; n++ {
		var err error
		switch format {
		case "raw64":
			binary.LittleEndian.PutUint64(buf[:], g.Uint64())
			_, err = w.Write(buf[:])
		case "float":
			f := float64(g.Uint64()>>11) * (1.0 / (1 << 53))
			_, err = fmt.Fprintln(w, f)
		default:
			return errors.Errorf("unknown format %q", format)
		}
		if err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}
