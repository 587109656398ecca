package parse

import (
	"github.com/strictyaml/strictyaml-go/debug"
	"github.com/strictyaml/strictyaml-go/token"
)

const defaultMaxDepth = 2048

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// WithMaxDepth caps how deeply mappings and sequences may nest before
// parsing fails with ErrTooDeep.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		o.maxDepth = n
	}
}

// Parser produces events from a document. It reads tokens with one
// token of lookahead; parsing stops at the first error, which every
// further Next call repeats.
type Parser struct {
	sc   *token.Scanner
	tok  *token.Token
	err  error
	opts parseOpts

	queue []*Event
	// needMarker is set after an explicit '...': the next document
	// must open with '---'.
	needMarker bool
	done       bool
	endPos     *token.Pos
}

func NewParser(src []byte, opts ...ParseOption) *Parser {
	pOpts := parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(&pOpts)
	}
	return &Parser{
		sc:   token.NewScanner(src),
		opts: pOpts,
	}
}

// Doc returns the position document shared by all events and errors
// this parser produces.
func (p *Parser) Doc() *token.PosDoc {
	return p.sc.Doc()
}

// Next returns the next event. At end of input it returns EStreamEnd,
// repeatedly.
func (p *Parser) Next() (*Event, error) {
	if p.err != nil {
		return nil, p.err
	}
	for len(p.queue) == 0 {
		if p.done {
			return &Event{Type: EStreamEnd, Pos: p.endPos}, nil
		}
		if err := p.parseDocument(); err != nil {
			p.err = err
			return nil, err
		}
	}
	ev := p.queue[0]
	p.queue = p.queue[1:]
	if debug.Parse() {
		debug.Printf("parse: %s\n", ev)
	}
	return ev, nil
}

func (p *Parser) peek() (*token.Token, error) {
	if p.tok == nil {
		t, err := p.sc.Next()
		if err != nil {
			return nil, err
		}
		p.tok = t
	}
	return p.tok, nil
}

func (p *Parser) advance() (*token.Token, error) {
	t, err := p.peek()
	p.tok = nil
	return t, err
}

func (p *Parser) emit(t EventType, pos *token.Pos) {
	p.queue = append(p.queue, &Event{Type: t, Pos: pos})
}

func (p *Parser) emitScalar(t *token.Token) {
	p.queue = append(p.queue, &Event{
		Type:  EScalar,
		Pos:   t.Pos,
		Text:  t.Text,
		Style: t.Style,
	})
}

// parseDocument appends the events of the next document to the queue,
// or marks the stream done.
func (p *Parser) parseDocument() error {
	t, err := p.peek()
	if err != nil {
		return err
	}
	if t.Type == token.TStreamEnd {
		p.done = true
		p.endPos = t.Pos
		return nil
	}
	if p.needMarker && t.Type != token.TDocStart {
		return perrf(t.Pos, "expected '---' or end of stream, got %s", t.Type)
	}
	p.needMarker = false
	start := t.Pos
	if t.Type == token.TDocStart {
		if _, err := p.advance(); err != nil {
			return err
		}
		t, err = p.peek()
		if err != nil {
			return err
		}
	}
	p.emit(EDocStart, start)
	switch t.Type {
	case token.TStreamEnd, token.TDocStart, token.TDocEnd:
		p.emit(ENull, start)
	default:
		if err := p.parseNode(1); err != nil {
			return err
		}
	}
	t, err = p.peek()
	if err != nil {
		return err
	}
	switch t.Type {
	case token.TDocEnd:
		if _, err := p.advance(); err != nil {
			return err
		}
		p.emit(EDocEnd, t.Pos)
		p.needMarker = true
	case token.TDocStart, token.TStreamEnd:
		p.emit(EDocEnd, t.Pos)
	default:
		return perrf(t.Pos, "expected document end, got %s", t.Type)
	}
	return nil
}

// parseNode parses one node starting at the lookahead token. A scalar
// followed by a same line colon opens a mapping whose keys sit at the
// scalar's column.
func (p *Parser) parseNode(depth int) error {
	if depth > p.opts.maxDepth {
		t, _ := p.peek()
		return perr(t.Pos, ErrTooDeep)
	}
	t, err := p.peek()
	if err != nil {
		return err
	}
	switch t.Type {
	case token.TScalar:
		key, err := p.advance()
		if err != nil {
			return err
		}
		n, err := p.peek()
		if err != nil {
			return err
		}
		if n.Type == token.TColon && n.Pos.Line() == key.Pos.Line() {
			return p.parseMapping(key, depth)
		}
		p.emitScalar(key)
		return nil
	case token.TDash:
		return p.parseSequence(t.Pos.Col(), depth)
	case token.TEmptyMapping:
		if _, err := p.advance(); err != nil {
			return err
		}
		p.emit(EMapStart, t.Pos)
		p.emit(EMapEnd, t.Pos)
		return nil
	case token.TEmptySequence:
		if _, err := p.advance(); err != nil {
			return err
		}
		p.emit(ESeqStart, t.Pos)
		p.emit(ESeqEnd, t.Pos)
		return nil
	default:
		return perrf(t.Pos, "unexpected %s", t.Type)
	}
}

// parseMapping parses a block mapping whose first key, already
// consumed, is key. The colon is the current lookahead. All keys sit
// at key's column.
func (p *Parser) parseMapping(key *token.Token, depth int) error {
	col := key.Pos.Col()
	p.emit(EMapStart, key.Pos)
	for {
		colon, err := p.peek()
		if err != nil {
			return err
		}
		if colon.Type != token.TColon || colon.Pos.Line() != key.Pos.Line() {
			return perrf(key.Pos, "expected ':' after mapping key")
		}
		p.emitScalar(key)
		if _, err := p.advance(); err != nil {
			return err
		}
		if err := p.parseMappingValue(key, colon, depth); err != nil {
			return err
		}

		n, err := p.peek()
		if err != nil {
			return err
		}
		switch n.Type {
		case token.TDocStart, token.TDocEnd, token.TStreamEnd:
			p.emit(EMapEnd, n.Pos)
			return nil
		}
		nCol := n.Pos.Col()
		switch {
		case nCol < col:
			p.emit(EMapEnd, n.Pos)
			return nil
		case nCol > col:
			return perrf(n.Pos, "bad indentation of a mapping entry")
		case n.Type != token.TScalar:
			return perrf(n.Pos, "unexpected %s in mapping", n.Type)
		}
		key, err = p.advance()
		if err != nil {
			return err
		}
	}
}

// parseMappingValue parses the value after a key's colon: inline on the
// key's line, nested on following deeper lines, an indentless sequence
// at the key's own column, or nothing at all.
func (p *Parser) parseMappingValue(key, colon *token.Token, depth int) error {
	col := key.Pos.Col()
	v, err := p.peek()
	if err != nil {
		return err
	}
	switch v.Type {
	case token.TDocStart, token.TDocEnd, token.TStreamEnd:
		p.emit(ENull, colon.Pos)
		return nil
	}
	if v.Pos.Line() == key.Pos.Line() {
		switch v.Type {
		case token.TScalar:
			if _, err := p.advance(); err != nil {
				return err
			}
			n, err := p.peek()
			if err != nil {
				return err
			}
			if n.Type == token.TColon && n.Pos.Line() == v.Pos.Line() {
				return perrf(n.Pos, "nested mapping on a single line")
			}
			p.emitScalar(v)
			return nil
		case token.TEmptyMapping:
			if _, err := p.advance(); err != nil {
				return err
			}
			p.emit(EMapStart, v.Pos)
			p.emit(EMapEnd, v.Pos)
			return nil
		case token.TEmptySequence:
			if _, err := p.advance(); err != nil {
				return err
			}
			p.emit(ESeqStart, v.Pos)
			p.emit(ESeqEnd, v.Pos)
			return nil
		default:
			return perrf(v.Pos, "unexpected %s after ':'", v.Type)
		}
	}
	// next line
	switch {
	case v.Type == token.TDash && v.Pos.Col() >= col:
		// >= col allows the indentless form, dashes under the key
		return p.parseSequence(v.Pos.Col(), depth+1)
	case v.Pos.Col() > col:
		return p.parseNode(depth + 1)
	default:
		p.emit(ENull, colon.Pos)
		return nil
	}
}

// parseSequence parses a block sequence whose dashes sit at col. The
// first dash is the current lookahead.
func (p *Parser) parseSequence(col, depth int) error {
	if depth > p.opts.maxDepth {
		t, _ := p.peek()
		return perr(t.Pos, ErrTooDeep)
	}
	first, err := p.peek()
	if err != nil {
		return err
	}
	p.emit(ESeqStart, first.Pos)
	for {
		dash, err := p.advance()
		if err != nil {
			return err
		}
		v, err := p.peek()
		if err != nil {
			return err
		}
		switch {
		case v.Type == token.TDocStart || v.Type == token.TDocEnd || v.Type == token.TStreamEnd:
			p.emit(ENull, dash.Pos)
		case v.Pos.Line() == dash.Pos.Line():
			if err := p.parseNode(depth + 1); err != nil {
				return err
			}
		case v.Pos.Col() > col:
			if err := p.parseNode(depth + 1); err != nil {
				return err
			}
		default:
			p.emit(ENull, dash.Pos)
		}

		n, err := p.peek()
		if err != nil {
			return err
		}
		switch n.Type {
		case token.TDocStart, token.TDocEnd, token.TStreamEnd:
			p.emit(ESeqEnd, n.Pos)
			return nil
		}
		nCol := n.Pos.Col()
		switch {
		case nCol == col && n.Type == token.TDash:
			// next entry
		case nCol < col:
			p.emit(ESeqEnd, n.Pos)
			return nil
		case nCol == col:
			p.emit(ESeqEnd, n.Pos)
			return nil
		default:
			return perrf(n.Pos, "bad indentation of a sequence entry")
		}
	}
}
