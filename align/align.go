// Package align shows which parts of the original survive in the
// candidate. It is a reading aid; the ratio itself comes from package lcs.
package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

var opPrefix = map[Op]string{
	Equal:  "=",
	Delete: "-",
	Insert: "+",
}

type Segment struct {
	Op   Op
	Text string
}

func Segments(original, candidate []rune) []Segment {
	dmp := diffmatchpatch.New()
	// No timeout: the alignment must cover the whole of both documents.
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(original, candidate, false)
	diffs = dmp.DiffCleanupMerge(diffs)
	segs := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op = Equal
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		segs = append(segs, Segment{op, d.Text})
	}
	return segs
}

// Shared counts the runes of the original covered by Equal segments.
func Shared(segs []Segment) int {
	n := 0
	for _, s := range segs {
		if s.Op == Equal {
			n += len([]rune(s.Text))
		}
	}
	return n
}

var formatter = map[string]func(*bufio.Writer, []Segment){
	"raw": func(w *bufio.Writer, segs []Segment) {
		for _, s := range segs {
			fmt.Fprintf(w, "%s %q\n", opPrefix[s.Op], s.Text)
		}
	},
	"marked": func(w *bufio.Writer, segs []Segment) {
		last := ""
		for _, s := range segs {
			switch s.Op {
			case Equal:
				last = s.Text
			case Delete:
				last = "[-" + s.Text + "-]"
			case Insert:
				last = "{+" + s.Text + "+}"
			}
			w.WriteString(last)
		}
		if last != "" && !strings.HasSuffix(last, "\n") {
			w.WriteByte('\n')
		}
	},
}

func Render(w io.Writer, segs []Segment, format string) error {
	f, ok := formatter[format]
	if !ok {
		return fmt.Errorf("unsupported format %q", format)
	}
	bw := bufio.NewWriter(w)
	f(bw, segs)
	return bw.Flush()
}
