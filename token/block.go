package token

import (
	"strings"
	"unicode/utf8"
)

type chomping int

const (
	chompClip chomping = iota
	chompStrip
	chompKeep
)

// scanBlock scans a literal '|' or folded '>' block scalar. The header
// may carry an explicit indentation indicator [1-9] and a chomping
// indicator '-' or '+', in either order, followed by nothing but an
// optional comment. Content indentation is either parent indent plus
// the explicit indicator, or auto detected from the first non blank
// line.
func (s *Scanner) scanBlock(style Style) (*Token, *ScanError) {
	start := s.i
	parent := s.lineIndent
	s.i++

	explicit := 0
	ch := chompClip
	indSet, chSet := false, false
	for {
		c := s.d[s.i]
		if c >= '1' && c <= '9' && !indSet {
			explicit = int(c - '0')
			indSet = true
			s.i++
			continue
		}
		if (c == '-' || c == '+') && !chSet {
			if c == '-' {
				ch = chompStrip
			} else {
				ch = chompKeep
			}
			chSet = true
			s.i++
			continue
		}
		break
	}
	for s.d[s.i] == ' ' || s.d[s.i] == '\t' {
		s.i++
	}
	if s.d[s.i] == '#' {
		s.skipComment()
	}
	if s.d[s.i] == '\r' {
		s.i++
	}
	if s.d[s.i] != '\n' {
		return nil, s.fail(ErrBlockHeader, s.i)
	}
	s.doc.nl(s.i)
	s.i++

	contentIndent := 0
	if indSet {
		contentIndent = parent + explicit
	}
	var lines []string
	gotContent := false
	n := len(s.d)
	for s.i < n {
		lineStart := s.i
		j := s.i
		for s.d[j] == ' ' {
			j++
		}
		w := j - lineStart
		t := j
		for s.d[t] == ' ' || s.d[t] == '\t' || s.d[t] == '\r' {
			t++
		}
		if s.d[t] == '\n' {
			lines = append(lines, "")
			s.doc.nl(t)
			s.i = t + 1
			continue
		}
		if contentIndent == 0 {
			if w <= parent {
				break
			}
			contentIndent = w
		}
		if w < contentIndent {
			if s.d[j] == '\t' {
				return nil, s.fail(ErrTabIndent, j)
			}
			if !gotContent && indSet && w > parent {
				return nil, s.fail(ErrBlockScalar, j)
			}
			break
		}
		k := j
		for s.d[k] != '\n' {
			if s.d[k] < utf8.RuneSelf {
				k++
				continue
			}
			r, sz := utf8.DecodeRune(s.d[k:])
			if r == utf8.RuneError && sz == 1 {
				return nil, s.fail(ErrBadUTF8, k)
			}
			k += sz
		}
		end := k
		if s.d[end-1] == '\r' {
			end--
		}
		lines = append(lines, string(s.d[lineStart+contentIndent:end]))
		gotContent = true
		s.doc.nl(k)
		s.i = k + 1
	}
	s.bol = true

	var body string
	if style == Literal {
		body = strings.Join(lines, "\n")
	} else {
		body = foldLines(lines)
	}
	var text string
	if len(lines) > 0 {
		raw := body + "\n"
		switch ch {
		case chompStrip:
			text = strings.TrimRight(raw, "\n")
		case chompKeep:
			text = raw
		default:
			text = strings.TrimRight(raw, "\n")
			if text != "" {
				text += "\n"
			}
		}
	}
	return &Token{
		Type:  TScalar,
		Pos:   s.doc.Pos(start),
		Text:  text,
		Style: style,
	}, nil
}

// foldLines joins block lines with folded semantics: adjacent content
// lines join with a single space, blank lines become line breaks, and
// more indented lines are kept literal.
func foldLines(lines []string) string {
	var b strings.Builder
	prevEmpty := false
	prevMore := false
	for i, ln := range lines {
		more := len(ln) > 0 && (ln[0] == ' ' || ln[0] == '\t')
		switch {
		case i == 0:
		case ln == "":
			b.WriteByte('\n')
		case prevEmpty:
			// the blank line already supplied the break
		case prevMore || more:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(ln)
		if ln == "" {
			prevEmpty = true
		} else {
			prevEmpty = false
			prevMore = more
		}
	}
	return b.String()
}
