package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
	"github.com/strictyaml/strictyaml-go/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	missed := false
	err = eachInput(cc, args, func(name string, data []byte) error {
		docs, err := strictyaml.Load(data)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
		for _, doc := range docs {
			v := navigate(doc, path)
			if v.IsBadValue() {
				missed = true
				fmt.Fprintf(cc.Out, "%s: no value at %q\n", name, path)
				continue
			}
			if s, ok := v.Str(); ok && cfg.Raw {
				fmt.Fprintln(cc.Out, s)
				continue
			}
			if err := strictyaml.DumpTo(cc.Out, v, cfg.plainOpts()...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if missed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// navigate walks a dotted path. Numeric segments index sequences;
// everything else is a mapping key. The path "." names the document
// itself.
func navigate(y *ir.Node, path string) *ir.Node {
	if path == "." {
		return y
	}
	for _, seg := range strings.Split(path, ".") {
		if y.IsSequence() {
			i, err := strconv.Atoi(seg)
			if err != nil {
				return ir.BadValue()
			}
			y = y.At(i)
			continue
		}
		y = y.Key(seg)
	}
	return y
}
