// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanescaps reports which capability tokens the current CPU
// supports and the lane counts each tier provides per scalar type.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/lanes"
)

// registerBits maps a token tier to its native register width. The generic
// tier has no registers; it carries one scalar per vector.
func registerBits(name string) int {
	switch name {
	case "avx":
		return 256
	case "sse", "neon":
		return 128
	default:
		return 0
	}
}

var scalarSizes = []struct {
	name string
	bits int
}{
	{"float32", 32},
	{"float64", 64},
	{"complex64", 64},
	{"complex128", 128},
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "target: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	if lanes.NoSimdEnv() {
		fmt.Fprintln(out, "LANES_NO_SIMD is set; only the generic tier is available")
	}

	best := lanes.Detect()
	fmt.Fprintf(out, "best token: %s\n\n", best.Name())

	fmt.Fprintln(out, "available tokens, most capable first:")
	for _, tok := range lanes.Tokens() {
		bits := registerBits(tok.Name())
		if bits == 0 {
			fmt.Fprintf(out, "  %-8s portable fallback\n", tok.Name())
			continue
		}
		fmt.Fprintf(out, "  %-8s %d-bit registers\n", tok.Name(), bits)
	}

	fmt.Fprintln(out, "\nnative lanes per register:")
	for _, tok := range lanes.Tokens() {
		fmt.Fprintf(out, "  %-8s", tok.Name())
		for _, sc := range scalarSizes {
			n := 1
			if bits := registerBits(tok.Name()); bits > 0 {
				n = bits / sc.bits
			}
			fmt.Fprintf(out, " %s=%d", sc.name, n)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "lanescaps",
		Short: "Report CPU vector capability tokens and lane counts",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
