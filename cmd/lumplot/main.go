// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Lumplot generates the figures of the luminosity-function analysis.
//
// Usage:
//
//	lumplot erfarg [--T 5] [--sig0 1] [--c 6] [--pdf-format=true]
//	lumplot model
//	lumplot perf [--data-dir DIR]
//	lumplot thetas FILE PREFIX [--lower-scale-factor F] [--upper-scale-factor F]
//
// Every command accepts --out-dir, --format, --config and --verbose.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lumfunc/lumplot/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
