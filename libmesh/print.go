package libmesh

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fine-structures/cubemesh/gomesh"
)

var (
	space   = []byte(" ")
	newline = []byte("\n")
)

func (X *Graph) String() string {
	b := strings.Builder{}
	b.Grow(96)
	X.WriteAsString(&b, gomesh.PrintOpts{})
	return b.String()
}

func (X *Graph) Println(prefix string) {
	b := strings.Builder{}
	b.Grow(192)
	b.WriteString(prefix)
	X.WriteAsString(&b, gomesh.DefaultPrintOpts)
	fmt.Print(b.String())
}

// WriteAsString writes a summary line of entity counts followed by whatever opts asks for, one item per line.
func (X *Graph) WriteAsString(out io.Writer, opts gomesh.PrintOpts) {
	if opts.Label != "" {
		io.WriteString(out, opts.Label)
		out.Write(space)
	}
	fmt.Fprintf(out, "v=%d,e=%d,f=%d,tris=%d", len(X.vtx), len(X.edges), len(X.facets), X.triCount)
	out.Write(newline)

	var buf [16]byte
	writeIdx := func(prefix string, idx int32) {
		io.WriteString(out, prefix)
		out.Write(strconv.AppendInt(buf[:0], int64(idx), 10))
	}

	if opts.Edges {
		for _, e := range X.edges {
			writeIdx("  e", e.index)
			writeIdx(": ", e.v1.index)
			writeIdx("->", e.v2.index)
			for _, f := range [2]*Facet{e.f1, e.f2} {
				if f == nil {
					io.WriteString(out, " -")
				} else {
					writeIdx(" f", f.index)
				}
			}
			out.Write(newline)
		}
	}

	if opts.Facets {
		for _, f := range X.facets {
			writeIdx("  f", f.index)
			io.WriteString(out, ":")
			for _, v := range f.verts {
				writeIdx(" ", v.index)
			}
			out.Write(newline)
		}
	}

	if opts.Selection {
		io.WriteString(out, "  sel v:")
		for _, v := range X.SelectedVertices() {
			writeIdx(" ", v.index)
		}
		io.WriteString(out, " e:")
		for _, e := range X.SelectedEdges() {
			writeIdx(" ", e.index)
		}
		io.WriteString(out, " f:")
		for _, f := range X.SelectedFacets() {
			writeIdx(" ", f.index)
		}
		out.Write(newline)
	}
}
