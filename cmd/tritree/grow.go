package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/tritree"
	"github.com/urfave/cli/v2"
)

var cmdGrow = &cli.Command{
	Name:  "grow",
	Usage: "push items one by one and verify every version of the list concurrently",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of items to push",
			Value: 40,
		},
		&cli.BoolFlag{
			Name:  "left",
			Usage: "push to the front instead of the back",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "do not print the layout of every version",
		},
	},
	Action: runGrow,
}

// version is a snapshot of a growing list, published to all subscribers.
type version struct {
	step int
	list tritree.List[int]
}

func runGrow(cctx *cli.Context) error {
	n := cctx.Int("n")
	left := cctx.Bool("left")
	ctx, cancel := context.WithCancel(cctx.Context)
	defer cancel()
	cast := caster.New(ctx)
	verifyCh, ok := cast.Sub(ctx, 16)
	if !ok {
		return fmt.Errorf("cannot subscribe verifier")
	}
	printCh, ok := cast.Sub(ctx, 16)
	if !ok {
		return fmt.Errorf("cannot subscribe printer")
	}
	var wg sync.WaitGroup
	var verifyErr error
	wg.Add(2)
	go func() { // verifier: every version must hold 0…step in order
		defer wg.Done()
		for msg := range verifyCh {
			v := msg.(version)
			if err := verify(v, left); err != nil && verifyErr == nil {
				verifyErr = err
				cancel()
			}
		}
	}()
	go func() { // printer
		defer wg.Done()
		width := lineWidth()
		for msg := range printCh {
			v := msg.(version)
			if cctx.Bool("quiet") {
				continue
			}
			fmt.Printf("#%d depth=%d  ", v.step, v.list.Depth())
			printNested(os.Stdout, v.list.FormatInline(), width)
		}
	}()
	var list tritree.List[int]
	for i := range n {
		if left {
			list = list.PushLeft(i)
		} else {
			list = list.PushRight(i)
		}
		if !cast.Pub(version{step: i, list: list}) {
			break
		}
	}
	cast.Close()
	wg.Wait()
	if verifyErr != nil {
		return verifyErr
	}
	fmt.Printf("verified %d versions, final depth %d\n", n, list.Depth())
	return nil
}

func verify(v version, left bool) error {
	if err := v.list.Check(); err != nil {
		return fmt.Errorf("version %d: %w", v.step, err)
	}
	if v.list.Len() != v.step+1 {
		return fmt.Errorf("version %d has length %d", v.step, v.list.Len())
	}
	for i, x := range v.list.All() {
		want := i
		if left {
			want = v.step - i
		}
		if x != want {
			return fmt.Errorf("version %d: item %d is %d, expected %d", v.step, i, x, want)
		}
	}
	return nil
}
