package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/strictyaml/strictyaml-go/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Indent   int
	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 || n > 9 {
		return nil, fmt.Errorf("%w: indent must be between 1 and 9", cli.ErrUsage)
	}
	cfg.Indent = n
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent != 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// plainOpts is encOpts without color, for output meant to be reloaded.
func (cfg *MainConfig) plainOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent != 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-file ok output'"`
	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the result back to source files'"`
	Fmt   *cli.Command
}

type GetConfig struct {
	*MainConfig

	Raw bool `cli:"name=r desc='print scalar results without quoting'"`
	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type JSONConfig struct {
	*MainConfig

	Pretty bool `cli:"name=p desc='indent the JSON output'"`
	JSON   *cli.Command
}

type FromYAMLConfig struct {
	*MainConfig

	FromYAML *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='report only whether documents differ'"`
	Diff  *cli.Command
}
