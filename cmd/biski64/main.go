// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command biski64 exercises the biski64 generator and the baseline
// generators it is compared against.
//
// The bench subcommand times each generator over a fixed number of
// calls and reports nanoseconds per call and throughput:
//
//	biski64 bench -n 100000000
//	biski64 bench -gen biski64 -gen wyrand -seed 42
//
// The stream subcommand writes generator output to stdout, either as
// little-endian 64-bit words suitable for piping into statistical test
// suites, or as decimal floats in [0, 1):
//
//	biski64 stream -c 0 | RNG_test stdin64
//	biski64 stream -gen biski64 -streams 4 -stream 2 -c 1000000 -format float
//
// Progress and diagnostics go to stderr; stdout carries only data.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

var version = "devel"

var log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
	w.Out = os.Stderr
	w.TimeFormat = "15:04:05.000"
})).With().Timestamp().Logger()

func main() {
	app := cli.NewApp()
	app.Name = "biski64"
	app.Usage = "time the biski64 generator and dump its output streams"
	app.Version = version
	app.Commands = []cli.Command{
		benchCommand,
		streamCommand,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}
