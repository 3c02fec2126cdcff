package main

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/ir"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	y1, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffDocs(cfg.MainConfig, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes a line diff of the pretty printed forms of a and b and
// reports whether there was a difference.
func diffDocs(cfg *MainConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	ta, err := render(cfg, a)
	if err != nil {
		return false, err
	}
	tb, err := render(cfg, b)
	if err != nil {
		return false, err
	}
	return writeDiff(w, lineDiff(ta, tb), cfg.colors(w))
}

func render(cfg *MainConfig, node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(node, buf, encode.EncodeFormat(cfg.outFormat()), encode.EncodePretty(true))
	return buf.String(), err
}

func lineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	return dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
}

// writeDiff prints deleted lines with "-", inserted lines with "+" and
// unchanged lines with a space. Nothing is printed when there is no
// difference.
func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff, colored bool) (bool, error) {
	if !slices.ContainsFunc(diffs, func(d diffmatchpatch.Diff) bool {
		return d.Type != diffmatchpatch.DiffEqual
	}) {
		return false, nil
	}
	del, ins := color.New(color.FgRed), color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	for _, d := range diffs {
		prefix, paint := " ", fmt.Sprint
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", del.Sprint
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", ins.Sprint
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			if _, err := io.WriteString(w, paint(prefix+line)+"\n"); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
