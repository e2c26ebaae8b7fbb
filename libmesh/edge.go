package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
)

// Edge connects two vertices, stored with a fixed orientation V1 -> V2.
//
// An edge has at most two adjacent facets, one per orientation:
//
//	F1 is the facet whose boundary traverses V1 -> V2
//	F2 is the facet whose boundary traverses V2 -> V1
//
// An edge with both slots empty is a free (dangling) edge.
type Edge struct {
	index  int32
	v1, v2 *Vertex
	f1, f2 *Facet
}

func (e *Edge) setIndex(idx int32) {
	e.index = idx
}

// Index returns this edge's position in its graph's edge collection (or -1 once removed).
func (e *Edge) Index() int {
	return int(e.index)
}

func (e *Edge) Kind() gomesh.ObjectKind {
	return gomesh.KindEdge
}

func (e *Edge) V1() *Vertex { return e.v1 }
func (e *Edge) V2() *Vertex { return e.v2 }
func (e *Edge) F1() *Facet  { return e.f1 }
func (e *Edge) F2() *Facet  { return e.f2 }

func (e *Edge) Endpoints() [2]*Vertex {
	return [2]*Vertex{e.v1, e.v2}
}

// AdjacentFacets returns the F1 and F2 slots (either may be nil).
func (e *Edge) AdjacentFacets() [2]*Facet {
	return [2]*Facet{e.f1, e.f2}
}

// IsBoundary returns true if at least one orientation slot is unoccupied.
func (e *Edge) IsBoundary() bool {
	return e.f1 == nil || e.f2 == nil
}

// OppositeVertex returns the endpoint that is not v, or nil if v is not an endpoint.
func (e *Edge) OppositeVertex(v *Vertex) *Vertex {
	switch v {
	case e.v1:
		return e.v2
	case e.v2:
		return e.v1
	}
	return nil
}

// VerticesInFacet returns this edge's endpoints in the order f traverses them.
// ok is false if f occupies neither slot.
func (e *Edge) VerticesInFacet(f *Facet) (from, to *Vertex, ok bool) {
	switch {
	case f == nil:
		return nil, nil, false
	case e.f1 == f:
		return e.v1, e.v2, true
	case e.f2 == f:
		return e.v2, e.v1, true
	}
	return nil, nil, false
}

// slotFor returns the slot a facet traversing from -> to occupies on this edge.
func (e *Edge) slotFor(from *Vertex) **Facet {
	if e.v1 == from {
		return &e.f1
	}
	return &e.f2
}
