package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	dw := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args[1:]) {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for _, doc := range docs {
			res, err := doc.GetPath(path)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", file, path, err)
			}
			if err := dw.write(res); err != nil {
				return err
			}
		}
	}
	return nil
}
