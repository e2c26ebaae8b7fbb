package libmesh

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/ungerik/go3d/float64/vec3"
)

// Graph is a polygon mesh connectivity graph: vertices, edges and facets held in dense index-addressed
// collections, plus a selection set per entity kind.
//
// Removal is O(1) swap-remove: the last element of a collection moves into the vacated slot, so an index
// is stable only until the next removal of the same kind.  Removing an entity that is not present is a no-op.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	vtx      []*Vertex
	edges    []*Edge
	facets   []*Facet
	triCount int

	selVtx    *hashset.Set
	selEdges  *hashset.Set
	selFacets *hashset.Set
}

func NewGraph() *Graph {
	X := &Graph{}
	X.Reset()
	return X
}

// Reset empties this graph.
func (X *Graph) Reset() {
	for _, v := range X.vtx {
		v.index = -1
	}
	for _, e := range X.edges {
		e.index = -1
	}
	for _, f := range X.facets {
		f.index = -1
	}
	X.vtx = X.vtx[:0]
	X.edges = X.edges[:0]
	X.facets = X.facets[:0]
	X.triCount = 0
	X.selVtx = hashset.New()
	X.selEdges = hashset.New()
	X.selFacets = hashset.New()
}

func (X *Graph) NumVerts() int  { return len(X.vtx) }
func (X *Graph) NumEdges() int  { return len(X.edges) }
func (X *Graph) NumFacets() int { return len(X.facets) }

// TrianglesCount is the sum over all facets of (vertex count - 2).
func (X *Graph) TrianglesCount() int {
	return X.triCount
}

// Vertices returns this graph's vertex collection in index order.  The returned slice must not be modified.
func (X *Graph) Vertices() []*Vertex { return X.vtx }
func (X *Graph) Edges() []*Edge      { return X.edges }
func (X *Graph) Facets() []*Facet    { return X.facets }

// Vertex returns the vertex at the given index, or nil if the index is out of range.
func (X *Graph) Vertex(idx int) *Vertex {
	if idx < 0 || idx >= len(X.vtx) {
		return nil
	}
	return X.vtx[idx]
}

func (X *Graph) Edge(idx int) *Edge {
	if idx < 0 || idx >= len(X.edges) {
		return nil
	}
	return X.edges[idx]
}

func (X *Graph) Facet(idx int) *Facet {
	if idx < 0 || idx >= len(X.facets) {
		return nil
	}
	return X.facets[idx]
}

// Lookup resolves an entity by kind and index (e.g. a decoded pick).
func (X *Graph) Lookup(kind gomesh.ObjectKind, idx int) (Entity, error) {
	var ent Entity
	switch kind {
	case gomesh.KindVertex:
		if v := X.Vertex(idx); v != nil {
			ent = v
		}
	case gomesh.KindEdge:
		if e := X.Edge(idx); e != nil {
			ent = e
		}
	case gomesh.KindFacet:
		if f := X.Facet(idx); f != nil {
			ent = f
		}
	default:
		return nil, errors.Wrapf(gomesh.ErrInvalidArgument, "unknown object kind %d", kind)
	}
	if ent == nil {
		return nil, errors.Wrapf(gomesh.ErrStaleReference, "no %v at index %d", kind, idx)
	}
	return ent, nil
}

// HasVertex returns true if v is currently present in this graph.
func (X *Graph) HasVertex(v *Vertex) bool {
	return v != nil && v.index >= 0 && int(v.index) < len(X.vtx) && X.vtx[v.index] == v
}

func (X *Graph) HasEdge(e *Edge) bool {
	return e != nil && e.index >= 0 && int(e.index) < len(X.edges) && X.edges[e.index] == e
}

func (X *Graph) HasFacet(f *Facet) bool {
	return f != nil && f.index >= 0 && int(f.index) < len(X.facets) && X.facets[f.index] == f
}

// Contains returns true if the given entity is currently present in this graph.
func (X *Graph) Contains(ent Entity) bool {
	switch ent := ent.(type) {
	case *Vertex:
		return X.HasVertex(ent)
	case *Edge:
		return X.HasEdge(ent)
	case *Facet:
		return X.HasFacet(ent)
	}
	return false
}

// AddVertex appends a new vertex at the given position.
func (X *Graph) AddVertex(pos vec3.T) *Vertex {
	v := newVertex(pos)
	v.index = int32(len(X.vtx))
	X.vtx = append(X.vtx, v)
	return v
}

// SetPosition moves a vertex.
func (X *Graph) SetPosition(v *Vertex, pos vec3.T) {
	if X.HasVertex(v) {
		v.pos = pos
	}
}

// RemoveVertex removes v, its incident edges, and every facet bounded by those edges.
func (X *Graph) RemoveVertex(v *Vertex) {
	if !X.HasVertex(v) {
		return
	}

	X.vtx = swapRemove(X.vtx, v.index)
	X.selVtx.Remove(v)

	for _, e := range v.Edges() {
		X.RemoveEdge(e)
	}
}

// AddEdge returns the edge connecting p1 and p2, creating it (oriented p1 -> p2) if needed.
//
// If checkFacet is set and a new edge is created between two vertices of the same facet, that facet is split
// into two facets along the new edge.  When several facets qualify, the one with the lowest index is split.
func (X *Graph) AddEdge(p1, p2 *Vertex, checkFacet bool) (*Edge, error) {
	if !X.HasVertex(p1) || !X.HasVertex(p2) {
		return nil, errors.Wrap(gomesh.ErrInvalidArgument, "AddEdge: endpoint is not in this graph")
	}
	if p1 == p2 {
		return nil, errors.Wrapf(gomesh.ErrInvalidArgument, "AddEdge: degenerate edge at vertex %d", p1.index)
	}
	if e := p1.EdgeConnecting(p2); e != nil {
		return e, nil
	}

	var shared *Facet
	if checkFacet {
		for _, f := range p1.AdjacentFacets() {
			if f.Contains(p2) {
				shared = f
				break
			}
		}
	}

	e := X.addEdge(p1, p2)
	if shared != nil {
		if err := X.splitFacet(shared, p1, p2); err != nil {
			return e, err
		}
	}
	return e, nil
}

func (X *Graph) addEdge(p1, p2 *Vertex) *Edge {
	if e := p1.EdgeConnecting(p2); e != nil {
		return e
	}
	e := &Edge{
		index: int32(len(X.edges)),
		v1:    p1,
		v2:    p2,
	}
	X.edges = append(X.edges, e)
	p1.adjacency[p2] = e
	p2.adjacency[p1] = e
	return e
}

// splitFacet replaces f with the two facets formed by cutting its cycle at p1 and p2.
func (X *Graph) splitFacet(f *Facet, p1, p2 *Vertex) error {
	i1, i2 := f.indexOf(p1), f.indexOf(p2)
	n := len(f.verts)

	var A, B []*Vertex
	for i := i1; ; i = (i + 1) % n {
		A = append(A, f.verts[i])
		if i == i2 {
			break
		}
	}
	for i := i2; ; i = (i + 1) % n {
		B = append(B, f.verts[i])
		if i == i1 {
			break
		}
	}

	selected := X.selFacets.Contains(f)
	X.RemoveFacet(f)

	for _, cycle := range [][]*Vertex{A, B} {
		fi, err := X.AddFacet(cycle...)
		if err != nil {
			return errors.Wrap(err, "splitFacet")
		}
		if selected {
			X.selFacets.Add(fi)
		}
	}
	return nil
}

// RemoveEdge removes e and the facets occupying either of its slots.
func (X *Graph) RemoveEdge(e *Edge) {
	if !X.HasEdge(e) {
		return
	}

	X.edges = swapRemove(X.edges, e.index)
	X.selEdges.Remove(e)

	// Facets are found via their vertices' adjacency, so drop them before unlinking e.
	if e.f1 != nil {
		X.RemoveFacet(e.f1)
	}
	if e.f2 != nil {
		X.RemoveFacet(e.f2)
	}

	delete(e.v1.adjacency, e.v2)
	delete(e.v2.adjacency, e.v1)
}

// AddFacet adds a facet with the given vertex cycle, creating any missing boundary edges.
//
// Fails with ErrInvalidArgument if fewer than 3 vertices are given, a vertex is not in this graph, or two
// consecutive vertices are the same.  Fails with ErrSlotOccupied if a boundary edge already has a facet
// traversing it in the same direction.  On failure the graph is left unchanged.
func (X *Graph) AddFacet(vs ...*Vertex) (*Facet, error) {
	n := len(vs)
	if n < 3 {
		return nil, errors.Wrapf(gomesh.ErrInvalidArgument, "AddFacet: need at least 3 vertices, got %d", n)
	}
	for _, v := range vs {
		if !X.HasVertex(v) {
			return nil, errors.Wrap(gomesh.ErrInvalidArgument, "AddFacet: vertex is not in this graph")
		}
	}

	traversed := make(map[[2]*Vertex]struct{}, n)
	for i, p1 := range vs {
		p2 := vs[(i+1)%n]
		if p1 == p2 {
			return nil, errors.Wrapf(gomesh.ErrInvalidArgument, "AddFacet: repeated vertex %d", p1.index)
		}
		if e := p1.EdgeConnecting(p2); e != nil && *e.slotFor(p1) != nil {
			return nil, errors.Wrapf(gomesh.ErrSlotOccupied, "AddFacet: edge %d (%d -> %d)", e.index, p1.index, p2.index)
		}
		key := [2]*Vertex{p1, p2}
		if _, dupe := traversed[key]; dupe {
			return nil, errors.Wrapf(gomesh.ErrSlotOccupied, "AddFacet: %d -> %d traversed twice", p1.index, p2.index)
		}
		traversed[key] = struct{}{}
	}

	f := &Facet{
		index: int32(len(X.facets)),
		verts: append([]*Vertex(nil), vs...),
	}
	for i, p1 := range vs {
		e := X.addEdge(p1, vs[(i+1)%n])
		*e.slotFor(p1) = f
	}

	X.facets = append(X.facets, f)
	X.triCount += f.TrianglesCount()
	return f, nil
}

// RemoveFacet removes f, vacating its slot on each of its boundary edges.  The edges themselves remain.
func (X *Graph) RemoveFacet(f *Facet) {
	if !X.HasFacet(f) {
		return
	}

	X.facets = swapRemove(X.facets, f.index)
	X.selFacets.Remove(f)
	X.triCount -= f.TrianglesCount()

	n := len(f.verts)
	for i, p1 := range f.verts {
		p2 := f.verts[(i+1)%n]
		e := p1.EdgeConnecting(p2)
		if e == nil {
			panic(errors.Wrapf(gomesh.ErrInconsistent, "facet boundary %d -> %d has no edge", p1.index, p2.index))
		}
		switch slot := e.slotFor(p1); {
		case *slot == f:
			*slot = nil
		case e.f1 == f:
			e.f1 = nil
		case e.f2 == f:
			e.f2 = nil
		default:
			panic(errors.Wrapf(gomesh.ErrInconsistent, "edge %d does not reference its facet", e.index))
		}
	}
}

// Clone returns an index-isomorphic deep copy of this graph, selection included.
func (X *Graph) Clone() *Graph {
	Y := &Graph{
		vtx:       make([]*Vertex, len(X.vtx)),
		edges:     make([]*Edge, len(X.edges)),
		facets:    make([]*Facet, len(X.facets)),
		triCount:  X.triCount,
		selVtx:    hashset.New(),
		selEdges:  hashset.New(),
		selFacets: hashset.New(),
	}

	for i, v := range X.vtx {
		Y.vtx[i] = &Vertex{
			index:     int32(i),
			pos:       v.pos,
			adjacency: make(map[*Vertex]*Edge, len(v.adjacency)),
		}
	}
	for i, f := range X.facets {
		fi := &Facet{
			index: int32(i),
			verts: make([]*Vertex, len(f.verts)),
		}
		for j, v := range f.verts {
			fi.verts[j] = Y.vtx[v.index]
		}
		Y.facets[i] = fi
	}
	for i, e := range X.edges {
		Y.edges[i] = &Edge{
			index: int32(i),
			v1:    Y.vtx[e.v1.index],
			v2:    Y.vtx[e.v2.index],
			f1:    Y.EqvFacet(e.f1),
			f2:    Y.EqvFacet(e.f2),
		}
	}
	for i, v := range X.vtx {
		adj := Y.vtx[i].adjacency
		for vi, e := range v.adjacency {
			adj[Y.vtx[vi.index]] = Y.edges[e.index]
		}
	}

	for _, v := range X.SelectedVertices() {
		Y.selVtx.Add(Y.vtx[v.index])
	}
	for _, e := range X.SelectedEdges() {
		Y.selEdges.Add(Y.edges[e.index])
	}
	for _, f := range X.SelectedFacets() {
		Y.selFacets.Add(Y.facets[f.index])
	}

	klog.V(3).Infof("cloned graph: %d verts, %d edges, %d facets", len(Y.vtx), len(Y.edges), len(Y.facets))
	return Y
}

// EqvVertex returns the vertex in this graph with the same index as v (typically v is from a clone source).
func (X *Graph) EqvVertex(v *Vertex) *Vertex {
	if v == nil {
		return nil
	}
	return X.Vertex(int(v.index))
}

func (X *Graph) EqvEdge(e *Edge) *Edge {
	if e == nil {
		return nil
	}
	return X.Edge(int(e.index))
}

func (X *Graph) EqvFacet(f *Facet) *Facet {
	if f == nil {
		return nil
	}
	return X.Facet(int(f.index))
}
