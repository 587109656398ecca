package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	return eachInput(cc, args, func(name string, data []byte) error {
		docs, err := strictyaml.Load(data)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
		out, err := strictyaml.DumpAll(docs, cfg.plainOpts()...)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		if cfg.Write {
			return os.WriteFile(name, []byte(out), 0644)
		}
		_, err = fmt.Fprint(cc.Out, out)
		return err
	})
}
