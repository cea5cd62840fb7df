package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"designlab/internal/lessons"
	"designlab/pkg/logger"
)

const usage = "Usage: go run ./cmd/demo [list|all|<scenario>]"

func main() {
	log, err := logger.NewWithWriter(os.Getenv("LOG_LEVEL"), os.Stderr)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	code := run(context.Background(), os.Args[1:], os.Stdout, log)
	_ = log.Sync()
	os.Exit(code)
}

// run executes the demo command and returns the process exit code
func run(ctx context.Context, args []string, out io.Writer, log *logger.Logger) int {
	if len(args) < 1 {
		fmt.Fprintln(out, usage)
		return 1
	}

	opts := lessons.Options{Dir: os.Getenv("DEMO_OUTPUT_DIR")}

	switch name := args[0]; name {
	case "list":
		for _, s := range lessons.Catalog(opts) {
			fmt.Fprintf(out, "  %-14s %s\n", s.Name, s.Summary)
		}

	case "all":
		for _, s := range lessons.Catalog(opts) {
			fmt.Fprintf(out, "== %s ==\n", s.Name)
			if err := s.Run(ctx, out); err != nil {
				log.WithError(err).WithField("scenario", s.Name).Error("Scenario failed")
				return 1
			}
			fmt.Fprintln(out)
		}

	default:
		if err := lessons.Run(ctx, name, out, opts); err != nil {
			if errors.Is(err, lessons.ErrUnknownScenario) {
				fmt.Fprintf(out, "Unknown scenario: %s\n", name)
				fmt.Fprintln(out, usage)
				return 1
			}
			log.WithError(err).WithField("scenario", name).Error("Scenario failed")
			return 1
		}
	}
	return 0
}
