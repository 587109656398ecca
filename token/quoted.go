package token

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// scanSingle scans a single quoted scalar. The only escape is '' for a
// literal quote; everything else is taken verbatim. The scalar must
// close on the line it opened on.
func (s *Scanner) scanSingle() (*Token, *ScanError) {
	start := s.i
	s.i++
	var b strings.Builder
	for {
		c := s.d[s.i]
		if c == '\n' {
			return nil, s.fail(ErrUnterminated, start)
		}
		if c == '\'' {
			if s.d[s.i+1] == '\'' {
				b.WriteByte('\'')
				s.i += 2
				continue
			}
			s.i++
			break
		}
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			s.i++
			continue
		}
		r, sz := utf8.DecodeRune(s.d[s.i:])
		if r == utf8.RuneError && sz == 1 {
			return nil, s.fail(ErrBadUTF8, s.i)
		}
		b.Write(s.d[s.i : s.i+sz])
		s.i += sz
	}
	if err := s.afterQuote(); err != nil {
		return nil, err
	}
	return &Token{
		Type:  TScalar,
		Pos:   s.doc.Pos(start),
		Text:  b.String(),
		Style: SingleQuoted,
	}, nil
}

// scanDouble scans a double quoted scalar with the usual backslash
// escapes.
func (s *Scanner) scanDouble() (*Token, *ScanError) {
	start := s.i
	s.i++
	var b strings.Builder
	for {
		c := s.d[s.i]
		if c == '\n' {
			return nil, s.fail(ErrUnterminated, start)
		}
		if c == '"' {
			s.i++
			break
		}
		if c == '\\' {
			if err := s.scanEscape(&b); err != nil {
				return nil, err
			}
			continue
		}
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			s.i++
			continue
		}
		r, sz := utf8.DecodeRune(s.d[s.i:])
		if r == utf8.RuneError && sz == 1 {
			return nil, s.fail(ErrBadUTF8, s.i)
		}
		b.Write(s.d[s.i : s.i+sz])
		s.i += sz
	}
	if err := s.afterQuote(); err != nil {
		return nil, err
	}
	return &Token{
		Type:  TScalar,
		Pos:   s.doc.Pos(start),
		Text:  b.String(),
		Style: DoubleQuoted,
	}, nil
}

func (s *Scanner) scanEscape(b *strings.Builder) *ScanError {
	at := s.i
	s.i++ // backslash
	c := s.d[s.i]
	s.i++
	switch c {
	case '0':
		b.WriteByte(0)
	case 'a':
		b.WriteByte(7)
	case 'b':
		b.WriteByte(8)
	case 't', '\t':
		b.WriteByte(9)
	case 'n':
		b.WriteByte(10)
	case 'v':
		b.WriteByte(11)
	case 'f':
		b.WriteByte(12)
	case 'r':
		b.WriteByte(13)
	case 'e':
		b.WriteByte(0x1b)
	case ' ':
		b.WriteByte(' ')
	case '"':
		b.WriteByte('"')
	case '/':
		b.WriteByte('/')
	case '\\':
		b.WriteByte('\\')
	case 'N':
		b.WriteRune(0x85)
	case '_':
		b.WriteRune(0xa0)
	case 'L':
		b.WriteRune(0x2028)
	case 'P':
		b.WriteRune(0x2029)
	case 'x':
		return s.hexEscape(b, at, 2)
	case 'u':
		return s.hexEscape(b, at, 4)
	case 'U':
		return s.hexEscape(b, at, 8)
	default:
		return s.fail(ErrBadEscape, at)
	}
	return nil
}

func (s *Scanner) hexEscape(b *strings.Builder, at, width int) *ScanError {
	var r rune
	for k := 0; k < width; k++ {
		c := s.d[s.i]
		var v rune
		switch {
		case c >= '0' && c <= '9':
			v = rune(c - '0')
		case c >= 'a' && c <= 'f':
			v = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = rune(c-'A') + 10
		default:
			return s.fail(ErrBadUnicode, at)
		}
		r = r<<4 | v
		s.i++
	}
	if !utf8.ValidRune(r) {
		return s.fail(ErrBadUnicode, at)
	}
	b.WriteRune(r)
	return nil
}

// afterQuote checks the byte following the closing quote: a quoted
// scalar can only be followed by whitespace, end of line, or a
// structural colon.
func (s *Scanner) afterQuote() *ScanError {
	c := s.d[s.i]
	if isSep(c) {
		return nil
	}
	if c == ':' && isSep(s.d[s.i+1]) {
		return nil
	}
	return s.fail(ErrAfterQuote, s.i)
}

// NeedsQuote reports whether s cannot be written as a plain scalar
// without changing its meaning.
func NeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s[0] {
	case ' ', '\t', '#', '\'', '"', '{', '}', '[', ']', ',',
		'!', '&', '*', '%', '@', '`', '|', '>':
		return true
	case '-', '?', ':':
		if len(s) == 1 || s[1] == ' ' || s[1] == '\t' {
			return true
		}
	}
	last := s[len(s)-1]
	if last == ' ' || last == '\t' || last == ':' {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") {
		return true
	}
	if strings.HasPrefix(s, "---") || strings.HasPrefix(s, "...") {
		return true
	}
	return false
}

// Quote renders s as a quoted scalar literal. Single quotes are used
// unless s contains characters that need escapes.
func Quote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return quoteDouble(s)
		}
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteDouble(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Unquote parses a standalone quoted scalar literal, the inverse of
// Quote.
func Unquote(s string) (string, error) {
	sc := NewScanner([]byte(s))
	tok, err := sc.Next()
	if err != nil {
		return "", err
	}
	if tok.Type != TScalar || (tok.Style != SingleQuoted && tok.Style != DoubleQuoted) {
		return "", NewScanError(ErrUnterminated, sc.doc.Pos(0))
	}
	return tok.Text, nil
}
