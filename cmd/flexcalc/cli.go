// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/flexla/internal/calc"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Global carries state shared by every subcommand.
type Global struct {
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Eval EvalCmd `cmd:"" help:"Evaluate the ops of a document and print the results"`
	Show ShowCmd `cmd:"" help:"Print the vectors and matrices a document declares"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// writeResults prints results in the requested format.
func writeResults(w io.Writer, format string, results []calc.Result) error {
	switch format {
	case formatYAML:
		return calc.WriteYAML(w, results)
	case formatText, "":
		return calc.WriteText(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
