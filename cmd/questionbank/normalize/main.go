package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	questionbank "github.com/skywallkee/kubestronaut-preparation-demo-platform"
	"github.com/skywallkee/kubestronaut-preparation-demo-platform/cmd/questionbank/internal/bootstrap"
	normalizecmd "github.com/skywallkee/kubestronaut-preparation-demo-platform/internal/commands/normalize"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runNormalize(os.Args[1:]); err != nil {
		log.Fatalf("questionbank normalize: %v", err)
	}
}

func runNormalize(args []string) error {
	defaults := questionbank.DefaultConfig()

	fs := flag.NewFlagSet("questionbank-normalize", flag.ExitOnError)
	dir := fs.String("dir", defaults.Extractor.OutputDir, "Question bank directory to rewrite in place")
	dryRun := fs.Bool("dry-run", false, "Compute assignments without rewriting any file")
	showPattern := fs.Bool("show-pattern", false, "Print the question number to namespace table and exit")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showPattern {
		printAssignmentPattern(os.Stdout, defaults.Normalizer.Namespaces)
		return nil
	}

	module, err := moduleBuilder(defaults, bootstrap.Options{
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := normalizecmd.NewNormalizeDirectoryHandler(module.Module.Normalizer(), module.Logger)
	cmd := normalizecmd.NormalizeDirectoryCommand{
		Directory: *dir,
		DryRun:    *dryRun,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute normalize command: %w", err)
	}

	if *dryRun {
		fmt.Fprintf(os.Stdout, "dry run complete; %s left untouched\n", *dir)
	} else {
		fmt.Fprintf(os.Stdout, "namespaces normalized under %s\n", *dir)
	}
	printAssignmentPattern(os.Stdout, defaults.Normalizer.Namespaces)
	return nil
}

// printAssignmentPattern shows which question numbers each namespace
// receives, so authors can predict assignments before editing files.
func printAssignmentPattern(out *os.File, namespaces []string) {
	fmt.Fprintln(out, "namespace assignment pattern:")
	for i, ns := range namespaces {
		examples := make([]string, 0, 3)
		for j := 0; j < 3; j++ {
			examples = append(examples, fmt.Sprintf("%d", i+j*len(namespaces)))
		}
		fmt.Fprintf(out, "  %s: questions %s, ...\n", ns, strings.Join(examples, ", "))
	}
}
