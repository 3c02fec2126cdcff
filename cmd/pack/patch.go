package main

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/pack/encode"
	"github.com/signadot/pack/format"
	"github.com/signadot/pack/ir"
	"github.com/signadot/pack/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument and optional files to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	apply, err := patchFunc(p, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	dw := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range docs {
			res, err := applyPatch(apply, doc)
			if err != nil {
				return fmt.Errorf("error patching document %d of %s: %w", i, file, err)
			}
			if err := dw.write(res); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}

// getPatch reads the patch from a file, or from the argument itself with
// -s, in the input format.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if cfg.String {
		res, err := parse.ParseString(arg, cfg.parseOpts("")...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return res, nil
	}
	res, err := getDoc(cfg.MainConfig, cc, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return res, nil
}

func toJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// patchFunc returns p as a function over JSON documents: an RFC 6902
// operation list, or an RFC 7386 merge patch when merge is set.
func patchFunc(p *ir.Node, merge bool) (func([]byte) ([]byte, error), error) {
	d, err := toJSON(p)
	if err != nil {
		return nil, err
	}
	if merge {
		return func(doc []byte) ([]byte, error) {
			return jsonpatch.MergePatch(doc, d)
		}, nil
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, err
	}
	return ops.Apply, nil
}

func applyPatch(apply func([]byte) ([]byte, error), doc *ir.Node) (*ir.Node, error) {
	d, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.ParseJSON())
}
