package main

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/pack/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	if cfg.File {
		d, err := readInput(cc, src)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		src = string(d)
	}
	prog, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	dw := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range docs {
			res, err := eval(prog, doc)
			if err != nil {
				return fmt.Errorf("error evaluating document %d of %s: %w", i, file, err)
			}
			if err := dw.write(res); err != nil {
				return err
			}
		}
	}
	return nil
}

// env binds doc to the whole document and, for objects, each field to
// its name.
func env(doc *ir.Node) map[string]any {
	v := ir.ToAny(doc)
	res := map[string]any{}
	if m, ok := v.(map[string]any); ok {
		maps.Copy(res, m)
	}
	res["doc"] = v
	return res
}

func eval(prog *vm.Program, doc *ir.Node) (*ir.Node, error) {
	out, err := expr.Run(prog, env(doc))
	if err != nil {
		return nil, err
	}
	return ir.FromAny(out)
}
