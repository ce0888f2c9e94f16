package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/tritree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"github.com/urfave/cli/v2"
)

var cmdWords = &cli.Command{
	Name:      "words",
	Usage:     "split a text file into words at line break opportunities and list them",
	ArgsUsage: `<file | ->`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the node hierarchy of the word list",
		},
		&cli.BoolFlag{
			Name:  "reverse",
			Usage: "print the words in reverse order",
		},
	},
	Action: runWords,
}

func runWords(cctx *cli.Context) error {
	if cctx.Args().Len() < 1 {
		return fmt.Errorf("missing input file")
	}
	var r io.Reader = os.Stdin
	if name := cctx.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	words, err := segmentWords(r)
	if err != nil {
		return err
	}
	if cctx.Bool("reverse") {
		words = words.Reverse()
	}
	fmt.Printf("%d words, depth %d\n", words.Len(), words.Depth())
	if cctx.Bool("dump") {
		return words.Dump(os.Stdout)
	}
	fill(os.Stdout, words, lineWidth())
	return nil
}

// segmentWords breaks text into segments at UAX#14 line break opportunities
// and collects the trimmed, non-empty segments.
func segmentWords(r io.Reader) (tritree.List[string], error) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	b := tritree.NewBuilder[string]()
	for segmenter.Next() {
		word := strings.TrimSpace(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		if err := b.Append(word); err != nil {
			return tritree.List[string]{}, fmt.Errorf("collecting words: %w", err)
		}
	}
	return b.List(), nil
}

// fill prints words separated by spaces, first-fit into lines of width en.
func fill(w io.Writer, words tritree.List[string], width int) {
	grapheme.SetupGraphemeClasses()
	context := uax11.ContextFromEnvironment()
	spaceleft := width
	for word := range words.Values() {
		wlen := uax11.StringWidth(grapheme.StringFromString(word), context)
		switch {
		case spaceleft == width:
			spaceleft -= wlen
		case wlen+1 > spaceleft:
			io.WriteString(w, "\n")
			spaceleft = width - wlen
		default:
			io.WriteString(w, " ")
			spaceleft -= wlen + 1
		}
		io.WriteString(w, word)
	}
	io.WriteString(w, "\n")
}
