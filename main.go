package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/statlang/statlang/internal/builder"
	"github.com/statlang/statlang/internal/config"
	"github.com/statlang/statlang/internal/emitter"
	"github.com/statlang/statlang/internal/errors"
	"github.com/statlang/statlang/internal/formatter"
	"github.com/statlang/statlang/internal/logger"
	"github.com/statlang/statlang/internal/parser"
	"github.com/statlang/statlang/internal/selector"
)

// CLI defines the command-line interface
var CLI struct {
	Dir      string `help:"Directory containing localization source files." short:"d" type:"path"`
	Lang     string `help:"Language identifier selecting the source file by base name." short:"l"`
	Output   string `help:"Path of the generated Go file. Use '-' for stdout. Defaults to <lang>_lang.gen.go." short:"o" type:"path"`
	Package  string `help:"Package name for generated code." short:"p" default:"main"`
	RootName string `help:"Name of the generated root variable." short:"r" default:"lang"`
	Config   string `help:"Path to a config file. Discovered automatically when not set." short:"c" type:"path"`
	Format   bool   `help:"Format the output code according to Go standards." short:"f" default:"true"`
	Debug    bool   `help:"Enable debug logging."`
	Version  bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	kongParser := kong.Must(&CLI,
		kong.Name("statlang"),
		kong.Description("Embed JSON localization files into your build as generated Go constants"),
		kong.UsageOnError(),
	)

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("statlang version %s\n", Version)
		return
	}

	if err := logger.Initialize(CLI.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		// Exactly one diagnostic line per failed invocation
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	if CLI.Dir == "" || CLI.Lang == "" {
		return errors.NewSelectorError("both --dir and --lang are required", nil)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return errors.NewSelectorError(fmt.Sprintf("invalid configuration: %v", err), nil)
	}

	// 1. Locate the source file for the language
	path, err := selector.Select(CLI.Dir, CLI.Lang)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("selected source file", "path", path)

	// 2. Parse JSON into the value tree
	doc, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	logger.Logger.Debugw("parsed document", "file", path)

	// 3. Build the namespace tree
	ns, err := builder.NewBuilderWithConfig(cfg).Build(doc, selector.BaseName(path))
	if err != nil {
		return err
	}

	// 4. Emit Go source
	code, err := emitter.NewEmitter().Emit(ns, cfg.Package, cfg.Output.FileHeader)
	if err != nil {
		return err
	}

	// 5. Format the code if requested
	if cfg.Formatting.Enabled {
		code, err = formatter.NewFormatter().Format(code)
		if err != nil {
			return err
		}
	}

	// 6. Persist the result
	return writeOutput(code)
}

// resolveConfig merges the discovered or given config file with CLI
// overrides.
func resolveConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	return config.LoadConfigWithCLI(configPath, CLI.Package, CLI.RootName, CLI.Format)
}

// outputPath is deterministic for a given language so repeated runs
// overwrite the same generated file.
func outputPath() string {
	if CLI.Output != "" {
		return CLI.Output
	}
	return CLI.Lang + "_lang.gen.go"
}

// writeOutput writes code to file or stdout
func writeOutput(code string) error {
	path := outputPath()
	if path == "-" {
		if _, err := fmt.Println(strings.TrimSpace(code)); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
	}
	fmt.Fprintf(os.Stderr, "Generated Go code written to %s\n", path)
	return nil
}
