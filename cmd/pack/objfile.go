package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/ir"
	"github.com/signadot/pack/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDocs parses every document of path; "-" is standard input.
func getDocs(cfg *MainConfig, cc *cli.Context, path string) ([]*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.ParseAll(d, cfg.parseOpts(path)...)
}

func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// inputs returns the files to read, standard input when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// docWriter writes results, separating YAML documents with "---".
type docWriter struct {
	cfg *MainConfig
	w   io.Writer
	n   int
}

func (dw *docWriter) write(node *ir.Node) error {
	if dw.n > 0 && dw.cfg.outFormat().IsYAML() {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	dw.n++
	return encode.Encode(node, dw.w, dw.cfg.encOpts(dw.w)...)
}
