package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc holds a scanned document together with the byte offsets of the
// newlines seen so far, so that positions can be resolved to line/column
// pairs lazily.
type PosDoc struct {
	d []byte
	n []int
}

// NewPosDoc copies src, terminating the last line with a newline if it
// has none, so every line in the document is newline terminated.
func NewPosDoc(src []byte) *PosDoc {
	d := make([]byte, len(src), len(src)+1)
	copy(d, src)
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	return &PosDoc{d: d}
}

// Bytes returns the scanned document, including the appended newline.
func (p *PosDoc) Bytes() []byte {
	return p.d
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] >= i {
		return
	}
	p.n = append(p.n, i)
}

// LineCol resolves a byte offset to a 1-based (line, column) pair.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 1, off + 1
	}
	return di + 1, off - p.n[di-1]
}

// Pos returns a position for offset i in the document.
func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

// Pos is a byte offset into a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

// LineCol returns the 1-based line and column of p.
func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("line %d, column %d (`...%s...`)", p.Line(), p.Col(), sample)
}
