// Command cpusched runs the scheduler simulation over a process list and
// writes the event trace.
//
//	cpusched [-config config.yaml] [-out output.txt] [-expect golden.txt] [-trace spans.json] [-quiet] input.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/viant/cpusched"
	"github.com/viant/cpusched/service/ingest"
	"github.com/viant/cpusched/service/sink"
)

const (
	exitOK       = 0
	exitError    = 1
	exitMismatch = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configURL := flags.String("config", "", "YAML or JSON config location")
	outURL := flags.String("out", "output.txt", "event trace destination")
	expectURL := flags.String("expect", "", "golden trace to compare against")
	traceFile := flags.String("trace", "", "write OpenTelemetry spans to this file")
	quiet := flags.Bool("quiet", false, "do not print the queue summary")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: cpusched [flags] <input_file>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitError
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitError
	}

	config := cpusched.DefaultConfig()
	if *configURL != "" {
		var err error
		if config, err = cpusched.LoadConfig(ctx, *configURL); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}
	level, err := config.Log.SlogLevel()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	options := []cpusched.Option{cpusched.WithConfig(config), cpusched.WithLogger(logger)}
	if *traceFile != "" {
		options = append(options, cpusched.WithTracing("cpusched", "0.1.0", *traceFile))
	}
	srv, err := cpusched.New(options...)
	if err != nil {
		logger.Error("failed to create service", "error", err)
		return exitError
	}

	records, err := ingest.New(ingest.WithMaxRecords(config.Input.MaxRecords)).Load(ctx, flags.Arg(0))
	if err != nil {
		logger.Error("failed to load input", "error", err)
		return exitError
	}
	report, err := srv.Run(ctx, records)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return exitError
	}

	traces := sink.New(nil)
	if err = traces.Write(ctx, *outURL, report.Log); err != nil {
		logger.Error("failed to write trace", "error", err)
		return exitError
	}
	logger.Info("trace written", "run", report.RunID, "out", *outURL, "events", report.Log.Len())

	if !*quiet {
		if err = report.Summary(stdout); err != nil {
			logger.Error("failed to print summary", "error", err)
			return exitError
		}
	}

	if *expectURL != "" {
		diff, err := traces.Compare(ctx, *expectURL, report.Log)
		if err != nil {
			logger.Error("failed to compare trace", "error", err)
			return exitError
		}
		if diff != "" {
			fmt.Fprint(stderr, diff)
			if mismatch, err := sink.Inspect(diff); err == nil && mismatch != nil {
				fmt.Fprintln(stderr, mismatch)
			}
			return exitMismatch
		}
	}
	return exitOK
}
