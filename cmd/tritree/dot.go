package main

import (
	"os"

	"github.com/npillmayer/tritree"
	"github.com/urfave/cli/v2"
)

var cmdDot = &cli.Command{
	Name:      "dot",
	Usage:     "write the tree of a list of 0…N-1 in Graphviz DOT format",
	ArgsUsage: `<N>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "balanced",
			Usage: "use the bulk builder instead of pushing items one by one",
		},
	},
	Action: func(cctx *cli.Context) error {
		n, err := sizeArg(cctx)
		if err != nil {
			return err
		}
		return tritree.ListToDot(sequence(n, cctx.Bool("balanced"), false), os.Stdout)
	},
}
