package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	strictyaml "github.com/strictyaml/strictyaml-go"
	"github.com/strictyaml/strictyaml-go/ir"
)

func fromYAML(cfg *FromYAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.FromYAML.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, data []byte) error {
		docs, err := yamlDocs(data)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		if err := strictyaml.DumpAllTo(cc.Out, docs, cfg.plainOpts()...); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		return nil
	})
}

func yamlDocs(data []byte) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data), yaml.UseOrderedMap())
	var docs []*ir.Node
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		y, err := yamlToIR(v)
		if err != nil {
			return nil, err
		}
		docs = append(docs, y)
	}
}

// yamlToIR stringifies scalars and keeps mapping order, rejecting what
// StrictYAML cannot represent.
func yamlToIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case string:
		return ir.FromString(x), nil
	case bool, int, int64, uint64, float64:
		return ir.FromString(fmt.Sprintf("%v", x)), nil
	case []any:
		res := ir.NewSequence()
		for _, e := range x {
			y, err := yamlToIR(e)
			if err != nil {
				return nil, err
			}
			if err := res.Append(y); err != nil {
				return nil, err
			}
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewMapping()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			y, err := yamlToIR(item.Value)
			if err != nil {
				return nil, err
			}
			if err := res.Set(key, y); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}
