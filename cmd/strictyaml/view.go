package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, data []byte) error {
		docs, err := strictyaml.Load(data)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
		if err := strictyaml.DumpAllTo(cc.Out, docs, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		return nil
	})
}
