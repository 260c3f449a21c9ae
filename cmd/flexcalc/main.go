// SPDX-License-Identifier: MIT

// Command flexcalc evaluates YAML documents of keyed vectors and matrices.
//
//	flexcalc eval doc.yaml
//	flexcalc eval -f yaml doc.yaml
//	flexcalc show doc.yaml
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name("flexcalc"),
		kong.Description("Evaluate documents of keyed vectors and matrices with implicit zeros."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}

	return kong.New(cli, append(base, options...)...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(&Global{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
