// Command vbapinfo prints VBAP gain tables for loudspeaker layouts.
//
// Usage:
//
//	vbapinfo [flags] [preset]
//
// Without arguments it prints the gains of the stereo preset for the
// front direction.
//
// Examples:
//
//	vbapinfo -azimuth 45 5.1
//	vbapinfo -azimuth 30 -elevation 20 7.1.4
//	vbapinfo -sweep 24 5.1
//	vbapinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vbap"
)

var registry = []struct {
	name   string
	preset vbap.Preset
}{
	{"stereo", vbap.PresetStereo},
	{"stereo-wide", vbap.PresetStereoWide},
	{"lcr", vbap.PresetLCR},
	{"quad", vbap.PresetQuad},
	{"5.0", vbap.PresetSurround50},
	{"5.1", vbap.PresetSurround51},
	{"7.0", vbap.PresetSurround70},
	{"7.1", vbap.PresetSurround71},
	{"5.1.4", vbap.PresetAtmos514},
	{"7.1.4", vbap.PresetAtmos714},
	{"9.1.6", vbap.PresetAtmos916},
	{"auro-9.1", vbap.PresetAuro91},
	{"hexagon", vbap.PresetHexagon},
	{"octagon", vbap.PresetOctagon},
}

func main() {
	azimuth := flag.Float64("azimuth", 0, "source azimuth in degrees (0 front, positive left)")
	elevation := flag.Float64("elevation", 0, "source elevation in degrees (0 horizontal, 90 above)")
	spread := flag.Float64("spread", 0, "spread angle in degrees (0 disables)")
	sweep := flag.Int("sweep", 0, "print a gain table for N azimuth steps around the full circle")
	list := flag.Bool("list", false, "list available preset names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vbapinfo [flags] [preset]\n\n")
		fmt.Fprintf(os.Stderr, "Prints VBAP speaker gains for a preset loudspeaker layout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vbapinfo -azimuth 45 5.1\n")
		fmt.Fprintf(os.Stderr, "  vbapinfo -azimuth 30 -elevation 20 7.1.4\n")
		fmt.Fprintf(os.Stderr, "  vbapinfo -sweep 24 5.1\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	name := "stereo"
	if flag.NArg() > 0 {
		name = strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	}

	preset, ok := resolvePreset(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown preset %q (use -list to see available)\n", name)
		os.Exit(1)
	}

	opts := []vbap.Option{vbap.WithPreset(preset)}
	if *spread > 0 {
		opts = append(opts, vbap.WithSpread(*spread))
	}

	panner, err := vbap.NewPanner(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *sweep > 0 {
		printSweep(panner, preset, *sweep, *elevation)
		return
	}

	printGains(panner, preset, *azimuth, *elevation)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolvePreset(name string) (vbap.Preset, bool) {
	for _, e := range registry {
		if e.name == name {
			return e.preset, true
		}
	}
	return 0, false
}

func printGains(panner *vbap.Panner, preset vbap.Preset, azimuth, elevation float64) {
	gains, err := panner.ComputeGains(azimuth, elevation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("preset: %s (%d speakers, %s)\n", preset, panner.NumSpeakers(), panner.Mode())
	fmt.Printf("source: azimuth %g°, elevation %g°\n\n", azimuth, elevation)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Speaker\tAzimuth\tElevation\tGain\n")
	fmt.Fprintf(tw, "-------\t-------\t---------\t----\n")

	for _, s := range panner.Layout().Speakers() {
		fmt.Fprintf(tw, "%d\t%g°\t%g°\t%.4f\n", s.Index(), s.Azimuth(), s.Elevation(), gains[s.Index()])
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func printSweep(panner *vbap.Panner, preset vbap.Preset, steps int, elevation float64) {
	fmt.Printf("preset: %s (%d speakers, %s), elevation %g°\n\n", preset, panner.NumSpeakers(),
		panner.Mode(), elevation)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Azimuth")
	for _, s := range panner.Layout().Speakers() {
		fmt.Fprintf(tw, "\tSpk %d (%g°)", s.Index(), s.Azimuth())
	}
	fmt.Fprintf(tw, "\n")

	gains := make([]float64, panner.NumSpeakers())

	for i := 0; i < steps; i++ {
		azimuth := -180 + 360*float64(i)/float64(steps)

		if err := panner.ComputeGainsInto(azimuth, elevation, gains); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "%.1f°", azimuth)
		for _, g := range gains {
			fmt.Fprintf(tw, "\t%.4f", g)
		}
		fmt.Fprintf(tw, "\n")
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}
