package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = eachInput(cc, args, func(name string, data []byte) error {
		docs, err := strictyaml.Load(data)
		if err != nil {
			bad++
			fmt.Fprintf(cc.Out, "%s: %v\n", name, err)
			return nil
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok (%d documents)\n", name, len(docs))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
