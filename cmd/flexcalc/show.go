// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/flexla/internal/calc"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	File   string `arg:"" type:"existingfile" help:"Document to read"`
	Format string `short:"f" enum:"text,yaml" default:"text" help:"Output format (text, yaml)"`
}

func (s *ShowCmd) Run(g *Global) error {
	doc, err := calc.Load(s.File)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.File, err)
	}
	inputs, err := calc.Inputs(doc)
	if err != nil {
		return fmt.Errorf("build inputs of %s: %w", s.File, err)
	}

	return writeResults(g.Out, s.Format, inputs)
}
