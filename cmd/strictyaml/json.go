package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
)

func jsonCmd(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, data []byte) error {
		docs, err := strictyaml.Load(data)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
		for _, doc := range docs {
			d, err := doc.MarshalJSON()
			if err != nil {
				return fmt.Errorf("error converting %s: %w", name, err)
			}
			if cfg.Pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, d, "", "  "); err != nil {
					return err
				}
				d = buf.Bytes()
			}
			fmt.Fprintf(cc.Out, "%s\n", d)
		}
		return nil
	})
}
