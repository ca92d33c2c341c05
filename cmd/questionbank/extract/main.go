package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	questionbank "github.com/skywallkee/kubestronaut-preparation-demo-platform"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/cmd/questionbank/internal/bootstrap"
	extractcmd "github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/commands/extract"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runExtract(os.Args[1:]); err != nil {
		log.Fatalf("questionbank extract: %v", err)
	}
}

func runExtract(args []string) error {
	defaults := questionbank.DefaultConfig()

	fs := flag.NewFlagSet("questionbank-extract", flag.ExitOnError)
	input := fs.String("input", defaults.Extractor.InputDir, "Directory holding markdown exercise files")
	output := fs.String("output", defaults.Extractor.OutputDir, "Directory receiving JSON question records")
	pattern := fs.String("pattern", defaults.Extractor.Pattern, "Glob pattern applied when discovering markdown files")
	recursive := fs.Bool("recursive", false, "Walk sub-directories of the input root")
	prefix := fs.String("prefix", defaults.Extractor.IDPrefix, "Prefix prepended to sequential question ids")
	startID := fs.Int("start-id", defaults.Extractor.StartID, "Number assigned to the first extracted question")
	points := fs.Int("points", defaults.Extractor.DefaultPoints, "Points awarded per question")
	timeLimit := fs.Int("time-limit", defaults.Extractor.DefaultTimeLimit, "Time limit in minutes per question")
	difficulty := fs.String("difficulty", defaults.Extractor.Difficulty, "Difficulty label stamped on every record")
	dryRun := fs.Bool("dry-run", false, "Report what would be written without creating files")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaults
	cfg.Extractor.InputDir = *input
	cfg.Extractor.OutputDir = *output
	cfg.Extractor.Pattern = *pattern
	cfg.Extractor.Recursive = *recursive
	cfg.Extractor.IDPrefix = *prefix
	cfg.Extractor.StartID = *startID
	cfg.Extractor.DefaultPoints = *points
	cfg.Extractor.DefaultTimeLimit = *timeLimit
	cfg.Extractor.Difficulty = *difficulty

	module, err := moduleBuilder(cfg, bootstrap.Options{
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := extractcmd.NewExtractDirectoryHandler(module.Module.Extractor(), module.Logger)
	cmd := extractcmd.ExtractDirectoryCommand{
		Directory: ".",
		DryRun:    *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute extract command: %w", err)
	}

	if *dryRun {
		fmt.Fprintf(os.Stdout, "dry run complete; no files written under %s\n", *output)
	} else {
		fmt.Fprintf(os.Stdout, "question records written to %s\n", *output)
	}
	return nil
}
