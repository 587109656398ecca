package strictyaml

import (
	"fmt"

	"github.com/strictyaml/strictyaml-go/ir"
	"github.com/strictyaml/strictyaml-go/parse"
)

// Load parses d and returns one node per document. The first scan,
// parse, or duplicate key error aborts the load.
func Load(d []byte, opts ...parse.ParseOption) ([]*ir.Node, error) {
	p := parse.NewParser(d, opts...)
	b := &builder{}
	var docs []*ir.Node
	for {
		ev, err := p.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Type {
		case parse.EStreamEnd:
			return docs, nil
		case parse.EDocStart:
			b.reset()
		case parse.EDocEnd:
			docs = append(docs, b.root)
		default:
			if err := b.on(ev); err != nil {
				return nil, err
			}
		}
	}
}

// LoadString is Load on a string.
func LoadString(s string, opts ...parse.ParseOption) ([]*ir.Node, error) {
	return Load([]byte(s), opts...)
}

// LoadOne parses d, which must hold exactly one document.
func LoadOne(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	docs, err := Load(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected one document, got %d", len(docs))
	}
	return docs[0], nil
}

// builder folds a document's events into an ir tree.
type builder struct {
	root  *ir.Node
	stack []*frame
}

type frame struct {
	node *ir.Node
	// key is the pending mapping key, valid when hasKey is set.
	key    string
	hasKey bool
}

func (b *builder) reset() {
	b.root = nil
	b.stack = b.stack[:0]
}

func (b *builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *builder) on(ev *parse.Event) error {
	switch ev.Type {
	case parse.EScalar:
		t := b.top()
		if t != nil && t.node.IsMapping() && !t.hasKey {
			if t.node.HasKey(ev.Text) {
				return &DuplicateKeyError{Key: ev.Text, Pos: *ev.Pos}
			}
			t.key = ev.Text
			t.hasKey = true
			return nil
		}
		return b.place(ir.FromString(ev.Text))
	case parse.ENull:
		return b.place(ir.Null())
	case parse.ESeqStart:
		b.stack = append(b.stack, &frame{node: ir.NewSequence()})
		return nil
	case parse.EMapStart:
		b.stack = append(b.stack, &frame{node: ir.NewMapping()})
		return nil
	case parse.ESeqEnd, parse.EMapEnd:
		t := b.top()
		b.stack = b.stack[:len(b.stack)-1]
		return b.place(t.node)
	default:
		return fmt.Errorf("unexpected event %s", ev.Type)
	}
}

func (b *builder) place(y *ir.Node) error {
	t := b.top()
	if t == nil {
		b.root = y
		return nil
	}
	if t.node.IsMapping() {
		key := t.key
		t.hasKey = false
		return t.node.Set(key, y)
	}
	return t.node.Append(y)
}
