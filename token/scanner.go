package token

import (
	"unicode/utf8"

	"github.com/strictyaml/strictyaml-go/debug"
)

// Scanner produces tokens from a StrictYAML document one at a time.
// Scanning stops at the first lexical error; once an error is returned
// every further Next call returns the same error.
type Scanner struct {
	doc *PosDoc
	d   []byte
	i   int

	// bol is true when s.i sits at the first byte of a line whose
	// indentation has not been consumed yet.
	bol        bool
	lineIndent int

	err *ScanError
}

func NewScanner(src []byte) *Scanner {
	doc := NewPosDoc(src)
	return &Scanner{
		doc: doc,
		d:   doc.Bytes(),
		bol: true,
	}
}

// Doc returns the position document shared by all tokens and errors
// this scanner produces.
func (s *Scanner) Doc() *PosDoc {
	return s.doc
}

func isSep(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (s *Scanner) fail(err error, at int) *ScanError {
	s.err = NewScanError(err, s.doc.Pos(at))
	return s.err
}

func (s *Scanner) tok(t TokenType, at int) *Token {
	return &Token{Type: t, Pos: s.doc.Pos(at)}
}

// Next returns the next token. At end of input it returns TStreamEnd,
// repeatedly.
func (s *Scanner) Next() (*Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	tok, err := s.scan()
	if err != nil {
		return nil, err
	}
	if debug.Scan() {
		debug.Printf("scan: %s\n", tok.Info())
	}
	return tok, nil
}

func (s *Scanner) scan() (*Token, *ScanError) {
	n := len(s.d)
	for s.i < n {
		c := s.d[s.i]
		if c == '\n' {
			s.doc.nl(s.i)
			s.i++
			s.bol = true
			continue
		}
		if s.bol {
			if tok, err := s.scanLineStart(); tok != nil || err != nil {
				return tok, err
			}
			continue
		}

		switch c {
		case ' ', '\t', '\r':
			s.i++
		case '#':
			s.skipComment()
		case ':':
			if isSep(s.d[s.i+1]) {
				tok := s.tok(TColon, s.i)
				s.i++
				return tok, nil
			}
			return s.scanPlain()
		case '-':
			if isSep(s.d[s.i+1]) {
				tok := s.tok(TDash, s.i)
				s.i++
				if s.d[s.i] != '\n' {
					s.i++
				}
				return tok, nil
			}
			return s.scanPlain()
		case '\'':
			return s.scanSingle()
		case '"':
			return s.scanDouble()
		case '|':
			return s.scanBlock(Literal)
		case '>':
			return s.scanBlock(Folded)
		case '{':
			if s.d[s.i+1] == '}' {
				tok := s.tok(TEmptyMapping, s.i)
				s.i += 2
				return tok, nil
			}
			return nil, s.fail(ErrFlowMapping, s.i)
		case '}':
			return nil, s.fail(ErrFlowMapping, s.i)
		case '[':
			if s.d[s.i+1] == ']' {
				tok := s.tok(TEmptySequence, s.i)
				s.i += 2
				return tok, nil
			}
			return nil, s.fail(ErrFlowSequence, s.i)
		case ']':
			return nil, s.fail(ErrFlowSequence, s.i)
		case ',':
			return nil, s.fail(ErrFlowEntry, s.i)
		case '&':
			return nil, s.fail(ErrAnchor, s.i)
		case '*':
			return nil, s.fail(ErrAlias, s.i)
		case '!':
			return nil, s.fail(ErrTag, s.i)
		case '%':
			return nil, s.fail(ErrDirective, s.i)
		case '@', '`':
			return nil, s.fail(ErrReserved, s.i)
		case '?':
			if isSep(s.d[s.i+1]) {
				return nil, s.fail(ErrComplexKey, s.i)
			}
			return s.scanPlain()
		default:
			return s.scanPlain()
		}
	}
	return s.tok(TStreamEnd, n-1), nil
}

// scanLineStart consumes the indentation of the current line. It skips
// blank lines, rejects tabs in indentation, and recognizes the document
// markers at column 1. It returns (nil, nil) when scanning should
// continue with the line's first content byte.
func (s *Scanner) scanLineStart() (*Token, *ScanError) {
	j := s.i
	for s.d[j] == ' ' {
		j++
	}
	if s.d[j] == '\t' {
		t := j
		for s.d[t] == '\t' || s.d[t] == ' ' {
			t++
		}
		if s.d[t] == '\n' || s.d[t] == '\r' {
			// whitespace only line
			j = t
		} else {
			return nil, s.fail(ErrTabIndent, j)
		}
	}
	if s.d[j] == '\r' {
		j++
	}
	if s.d[j] == '\n' {
		s.doc.nl(j)
		s.i = j + 1
		return nil, nil
	}
	s.lineIndent = j - s.i
	s.i = j
	s.bol = false
	if s.lineIndent == 0 {
		if tok := s.marker("---", TDocStart); tok != nil {
			return tok, nil
		}
		if tok := s.marker("...", TDocEnd); tok != nil {
			return tok, nil
		}
	}
	return nil, nil
}

func (s *Scanner) marker(m string, t TokenType) *Token {
	if s.i+3 > len(s.d) {
		return nil
	}
	if string(s.d[s.i:s.i+3]) != m {
		return nil
	}
	if !isSep(s.d[s.i+3]) {
		return nil
	}
	tok := s.tok(t, s.i)
	s.i += 3
	return tok
}

func (s *Scanner) skipComment() {
	for s.d[s.i] != '\n' {
		s.i++
	}
}

// scanPlain scans an unquoted scalar running to end of line, to a ':'
// followed by whitespace, or to a comment. Trailing whitespace is not
// part of the content.
func (s *Scanner) scanPlain() (*Token, *ScanError) {
	start := s.i
	j := s.i
	end := s.i
	for {
		c := s.d[j]
		if c == '\n' {
			break
		}
		if c == ':' && isSep(s.d[j+1]) {
			break
		}
		if c == '#' && j > start && (s.d[j-1] == ' ' || s.d[j-1] == '\t') {
			break
		}
		if c == ' ' || c == '\t' || c == '\r' {
			j++
			continue
		}
		if c < utf8.RuneSelf {
			j++
			end = j
			continue
		}
		r, sz := utf8.DecodeRune(s.d[j:])
		if r == utf8.RuneError && sz == 1 {
			return nil, s.fail(ErrBadUTF8, j)
		}
		j += sz
		end = j
	}
	tok := &Token{
		Type: TScalar,
		Pos:  s.doc.Pos(start),
		Text: string(s.d[start:end]),
	}
	s.i = j
	return tok, nil
}
