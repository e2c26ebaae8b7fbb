// Package wavefront reads and writes mesh graphs in the Wavefront OBJ format (vertices and faces only).
package wavefront

import (
	"bufio"
	"io"
	"strconv"

	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/ungerik/go3d/float64/vec3"
)

// ImportStats summarizes what an Import added.
type ImportStats struct {
	Verts    int
	Facets   int
	Reversed int // facets added with their winding reversed
}

// Import reads OBJ text from r and adds its vertices (in file order) and faces onto X.
//
// Face indices are 1-based; negative indices count back from the most recently read vertex.  A face whose
// winding collides with an existing facet is retried reversed.  On error, everything read before the
// offending statement remains in X.
func Import(r io.Reader, X *libmesh.Graph) (ImportStats, error) {
	var stats ImportStats

	obj, err := parseOBJ.Parse("", r)
	if err != nil {
		return stats, errors.Wrap(gomesh.ErrInvalidArgument, err.Error())
	}

	var verts []*libmesh.Vertex
	cycle := make([]*libmesh.Vertex, 0, 8)

	for _, st := range obj.Statements {
		switch {
		case st.Vertex != nil:
			c := st.Vertex.Coords
			v := X.AddVertex(vec3.T{c[0], c[1], c[2]})
			verts = append(verts, v)
			stats.Verts++

		case st.Face != nil:
			cycle = cycle[:0]
			for _, fv := range st.Face.Verts {
				idx := fv.Vertex
				if idx < 0 {
					idx += len(verts) + 1
				}
				if idx < 1 || idx > len(verts) {
					return stats, errors.Wrapf(gomesh.ErrInvalidArgument, "line %d: vertex reference %d out of range", st.Face.Pos.Line, fv.Vertex)
				}
				cycle = append(cycle, verts[idx-1])
			}

			_, err = X.AddFacet(cycle...)
			if errors.Is(err, gomesh.ErrSlotOccupied) {
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				if _, err = X.AddFacet(cycle...); err == nil {
					klog.Warningf("wavefront: line %d: face winding reversed", st.Face.Pos.Line)
					stats.Reversed++
				}
			}
			if err != nil {
				return stats, errors.Wrapf(err, "line %d", st.Face.Pos.Line)
			}
			stats.Facets++
		}
	}

	return stats, nil
}

// Export writes X as OBJ text: a "v" line per vertex in index order followed by an "f" line per facet.
func Export(w io.Writer, X *libmesh.Graph) error {
	out := bufio.NewWriter(w)

	var buf [64]byte
	for _, v := range X.Vertices() {
		pos := v.Position()
		line := append(buf[:0], 'v')
		for _, c := range pos {
			line = append(line, ' ')
			line = strconv.AppendFloat(line, c, 'g', -1, 64)
		}
		line = append(line, '\n')
		out.Write(line)
	}

	for _, f := range X.Facets() {
		line := append(buf[:0], 'f')
		for _, v := range f.Vertices() {
			line = append(line, ' ')
			line = strconv.AppendInt(line, int64(v.Index()+1), 10)
		}
		line = append(line, '\n')
		out.Write(line)
	}

	return out.Flush()
}
