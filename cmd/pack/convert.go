package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	dw := &docWriter{cfg: cfg.MainConfig, w: cc.Out}
	for _, file := range inputs(args) {
		docs, err := getDocs(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range docs {
			if err := dw.write(doc); err != nil {
				return fmt.Errorf("error encoding document %d of %s: %w", i, file, err)
			}
		}
	}
	return nil
}
