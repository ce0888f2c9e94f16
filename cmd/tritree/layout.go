package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/tritree"
	"github.com/urfave/cli/v2"
)

var cmdLayout = &cli.Command{
	Name:      "layout",
	Usage:     "print the tree layout of a list of 0…N-1",
	ArgsUsage: `<N>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "balanced",
			Usage: "use the bulk builder instead of pushing items one by one",
		},
		&cli.BoolFlag{
			Name:  "left",
			Usage: "push items to the front, in reverse order",
		},
		&cli.BoolFlag{
			Name:  "rebuild",
			Usage: "force an even rebuild before printing",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print an indented node hierarchy instead of the inline layout",
		},
	},
	Action: runLayout,
}

func runLayout(cctx *cli.Context) error {
	n, err := sizeArg(cctx)
	if err != nil {
		return err
	}
	list := sequence(n, cctx.Bool("balanced"), cctx.Bool("left"))
	if cctx.Bool("rebuild") {
		list.ForceRebalance()
	}
	if err := list.Check(); err != nil {
		return err
	}
	fmt.Printf("length %d, depth %d\n", list.Len(), list.Depth())
	if cctx.Bool("dump") {
		return list.Dump(os.Stdout)
	}
	printNested(os.Stdout, list.FormatInline(), lineWidth())
	return nil
}

// sequence creates a list of 0…n-1.
func sequence(n int, balanced, left bool) tritree.List[int] {
	if balanced {
		b := tritree.NewBuilder[int]()
		for i := range n {
			b.Append(i)
		}
		return b.List()
	}
	var list tritree.List[int]
	for i := range n {
		if left {
			list = list.PushLeft(n - 1 - i)
		} else {
			list = list.PushRight(i)
		}
	}
	return list
}
