// Command hatch is a demo and benchmark driver for the hatch package:
// given a pattern file and a segment file, it either prints the
// hatched segment count (-b) or renders an SVG preview to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/hatchline/hatch"
	"github.com/hatchline/hatch/export/svg"
)

const (
	cfgScale   = "hatch.scale"
	cfgJitter  = "hatch.jitter"
	cfgRule    = "hatch.rule"
	cfgWorkers = "hatch.workers"
)

func setDefaults(v *viper.Viper) {
	v.SetConfigName("hatch")
	v.AddConfigPath(".")
	v.SetConfigType("toml")

	v.SetDefault(cfgScale, 1.0)
	v.SetDefault(cfgJitter, 0.0)
	v.SetDefault(cfgRule, "odd")
	v.SetDefault(cfgWorkers, 0)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-b] [-s scale] [-j jitter] [-r rulename] [-config file] [-workers n] patfile segfile\n", os.Args[0])
	os.Exit(1)
}

func main() {
	v := viper.New()
	setDefaults(v)

	var (
		bench      = flag.Bool("b", false, "benchmark mode: print hatched segment count instead of rendering")
		scale      = flag.Float64("s", 0, "coordinate scale factor (0: use config/default)")
		jitter     = flag.Float64("j", 0, "vertex jitter amplitude")
		ruleName   = flag.String("r", "", "winding rule: odd, nonzero, positive, negative, abs_geq_two")
		workers    = flag.Int("workers", 0, "worker goroutines for parallel hatching (0: GOMAXPROCS, implies synchronous if -parallel is unset)")
		parallel   = flag.Bool("parallel", false, "hatch dash families concurrently")
		configFile = flag.String("config", "", "optional config file (overrides ./hatch.toml)")
	)
	flag.Usage = usage
	flag.Parse()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "hatch: config: %v\n", err)
			os.Exit(1)
		}
	}

	if *scale == 0 {
		*scale = v.GetFloat64(cfgScale)
	}
	if *jitter == 0 {
		*jitter = v.GetFloat64(cfgJitter)
	}
	if *ruleName == "" {
		*ruleName = v.GetString(cfgRule)
	}
	if *workers == 0 {
		*workers = v.GetInt(cfgWorkers)
	}

	args := flag.Args()
	if len(args) != 2 {
		usage()
	}
	patFile, segFile := args[0], args[1]

	rule, err := hatch.ParseWindingRule(*ruleName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hatch:", err)
		os.Exit(1)
	}

	hatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	pattern, err := hatch.LoadHatchPatternFile(patFile, *scale)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hatch:", err)
		os.Exit(1)
	}

	contours, err := hatch.LoadContoursFile(segFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hatch:", err)
		os.Exit(1)
	}
	segments := hatch.ContoursToSegments(contours, *jitter)
	if len(segments) == 0 {
		fmt.Fprintln(os.Stderr, "hatch:", hatch.ErrEmptySegments)
		os.Exit(1)
	}

	var collected []hatch.Segment
	sink := func(s hatch.Segment) { collected = append(collected, s) }

	if *parallel {
		opts := []hatch.ParallelOption{hatch.WithWorkers(*workers)}
		hatch.HatchParallel(context.Background(), pattern, segments, rule, sink, opts...)
	} else {
		hatch.Hatch(pattern, segments, rule, sink)
	}

	if *bench {
		fmt.Println(len(collected))
		return
	}

	if err := svg.Write(os.Stdout, segments, collected, svg.Options{}); err != nil {
		fmt.Fprintln(os.Stderr, "hatch:", err)
		os.Exit(1)
	}
}
