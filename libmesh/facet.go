package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/ungerik/go3d/float64/vec3"
)

// Facet is a polygon defined by an ordered cycle of three or more vertices.
//
// The i-th boundary edge connects vertex i to vertex (i+1) % n, traversed in that direction.
type Facet struct {
	index int32
	verts []*Vertex
}

func (f *Facet) setIndex(idx int32) {
	f.index = idx
}

// Index returns this facet's position in its graph's facet collection (or -1 once removed).
func (f *Facet) Index() int {
	return int(f.index)
}

func (f *Facet) Kind() gomesh.ObjectKind {
	return gomesh.KindFacet
}

// Vertices returns this facet's vertex cycle.  The returned slice must not be modified.
func (f *Facet) Vertices() []*Vertex {
	return f.verts
}

func (f *Facet) NumVerts() int {
	return len(f.verts)
}

// TrianglesCount is the number of triangles in this facet's fan triangulation.
func (f *Facet) TrianglesCount() int {
	return len(f.verts) - 2
}

// Edges returns this facet's boundary edges in traversal order.
// A nil entry means the graph no longer has an edge between the two consecutive vertices (never the case for a live facet).
func (f *Facet) Edges() []*Edge {
	n := len(f.verts)
	edges := make([]*Edge, n)
	for i, v := range f.verts {
		edges[i] = v.EdgeConnecting(f.verts[(i+1)%n])
	}
	return edges
}

// Contains returns true if v is one of this facet's vertices.
func (f *Facet) Contains(v *Vertex) bool {
	return f.indexOf(v) >= 0
}

func (f *Facet) indexOf(v *Vertex) int {
	for i, vi := range f.verts {
		if vi == v {
			return i
		}
	}
	return -1
}

// Normal returns the facet's unit normal (right-hand rule over its winding), summed over its fan triangles.
func (f *Facet) Normal() vec3.T {
	var n vec3.T
	p0 := &f.verts[0].pos
	for i := 1; i+1 < len(f.verts); i++ {
		ni := triangleNormal(p0, &f.verts[i].pos, &f.verts[i+1].pos)
		n.Add(&ni)
	}
	if n.LengthSqr() > 0 {
		n.Normalize()
	}
	return n
}

// insertBetween returns a copy of this facet's cycle with v inserted between each consecutive occurrence of a and b (either order).
func (f *Facet) insertBetween(a, b, v *Vertex) []*Vertex {
	n := len(f.verts)
	cycle := make([]*Vertex, 0, n+2)
	for i, vi := range f.verts {
		cycle = append(cycle, vi)
		next := f.verts[(i+1)%n]
		if (vi == a && next == b) || (vi == b && next == a) {
			cycle = append(cycle, v)
		}
	}
	return cycle
}
