// Command bezier evaluates a curve job file and writes the sampled values as JSON.
//
// Usage:
//
//	bezier -config job.yaml
//	bezier -config job.toml -out samples.json -plot path.png
//	bezier -config job.json -samples 500 -rational
//
// A job file names the evaluator (linear, quadratic, cubic, ndegree,
// spherical or spline) and its control data. Diagnostics are logged to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	bezier "github.com/tphakala/go-bezier"
	"github.com/tphakala/go-bezier/internal/config"
	"github.com/tphakala/go-bezier/internal/simdops"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Job file (.yaml, .yml, .toml or .json)")
	outPath := flag.String("out", "", "Write JSON output to this file instead of stdout")
	plotPath := flag.String("plot", "", "Write a PNG plot of the result to this file")
	samples := flag.Int("samples", keepJobSamples, "Override the job sample count (negative keeps the job value)")
	rational := flag.Bool("rational", false, "Force rational evaluation for ndegree jobs")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -config job.yaml [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return errors.New("missing -config")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	job, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	n, err := job.SampleCount()
	if err != nil {
		return err
	}
	if *samples >= 0 {
		n = *samples
	}
	if *rational {
		job.Rational = true
	}

	logger.Info("job loaded", "path", *configPath, "kind", job.Kind, "samples", n, "rational", job.Rational)
	logger.Info("SIMD", "cpu", simdops.Info())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := evaluate(ctx, job, n, bezier.NewSlogReporter(logger))
	if err != nil {
		return err
	}

	if err := writeOutput(*outPath, res); err != nil {
		return err
	}
	if *outPath != "" {
		logger.Info("output written", "path", *outPath, "values", len(res.Values))
	}

	if *plotPath != "" {
		if err := savePlot(*plotPath, job, res); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		logger.Info("plot written", "path", *plotPath)
	}

	return nil
}

// writeOutput encodes res as indented JSON to path, or to stdout when path is empty.
func writeOutput(path string, res *result) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
