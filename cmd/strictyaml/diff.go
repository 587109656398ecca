package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	strictyaml "github.com/strictyaml/strictyaml-go"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := canonical(cc, cfg, args[0])
	if err != nil {
		return err
	}
	b, err := canonical(cc, cfg, args[1])
	if err != nil {
		return err
	}
	if a == b {
		return nil
	}
	if cfg.Quiet {
		fmt.Fprintf(cc.Out, "%s and %s differ\n", args[0], args[1])
		return cli.ExitCodeErr(1)
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	return cli.ExitCodeErr(1)
}

// canonical loads a file and renders it back in canonical form, so the
// diff ignores quoting and indentation differences.
func canonical(cc *cli.Context, cfg *DiffConfig, file string) (string, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return "", err
	}
	docs, err := strictyaml.Load(d)
	if err != nil {
		return "", fmt.Errorf("error loading %s: %w", file, err)
	}
	out, err := strictyaml.DumpAll(docs, cfg.plainOpts()...)
	if err != nil {
		return "", fmt.Errorf("error encoding %s: %w", file, err)
	}
	return out, nil
}
