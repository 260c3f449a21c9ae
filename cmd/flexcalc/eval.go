// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/flexla/internal/calc"
)

// EvalCmd implements the 'eval' command.
type EvalCmd struct {
	File   string `arg:"" type:"existingfile" help:"Document to evaluate"`
	Format string `short:"f" enum:"text,yaml" default:"text" help:"Output format (text, yaml)"`
}

func (e *EvalCmd) Run(g *Global) error {
	doc, err := calc.Load(e.File)
	if err != nil {
		return fmt.Errorf("load %s: %w", e.File, err)
	}
	slog.Debug("Loaded document", "path", e.File,
		"vectors", len(doc.Vectors), "matrices", len(doc.Matrices), "ops", len(doc.Ops))

	results, err := calc.Evaluate(doc)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", e.File, err)
	}

	return writeResults(g.Out, e.Format, results)
}
