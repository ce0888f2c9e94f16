/*
Command tritree inspects the layout of tritree lists.

It builds lists of integers or words and prints the shape of their trees,
which is useful for checking how pushes, bulk building and rebalancing
arrange the nodes.

	tritree layout 20
	tritree layout --balanced 20
	tritree grow --n 100 --left
	tritree words README.md
	tritree dot 12 | dot -Tsvg > list.svg

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "tritree",
		Usage: "inspect the tree layout of persistent lists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level (Error, Info, Debug)",
				Value:   "Error",
				EnvVars: []string{"TRITREE_TRACE"},
			},
		},
		Before: setupTracing,
	}
	app.Commands = []*cli.Command{
		cmdLayout,
		cmdGrow,
		cmdWords,
		cmdDot,
	}
	return app.Run(args)
}

// setupTracing installs a Go log tracer for all trace keys.
func setupTracing(cctx *cli.Context) error {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(cctx.String("trace")))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	return nil
}

// sizeArg reads the list size from the first positional argument.
func sizeArg(cctx *cli.Context) (int, error) {
	if cctx.Args().Len() < 1 {
		return 0, fmt.Errorf("missing list size")
	}
	n, err := strconv.Atoi(cctx.Args().First())
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid list size %q", cctx.Args().First())
	}
	return n, nil
}
