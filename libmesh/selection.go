package libmesh

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/fine-structures/cubemesh/gomesh"
)

// Select adds or removes an entity from its kind's selection set.
// Returns false (and does nothing) if the entity is not present in this graph.
func (X *Graph) Select(ent Entity, selected bool) bool {
	set := X.selectionFor(ent)
	if set == nil {
		return false
	}
	if selected {
		set.Add(ent)
	} else {
		set.Remove(ent)
	}
	return true
}

// ToggleSelected flips an entity's selection state and returns the new state.
func (X *Graph) ToggleSelected(ent Entity) bool {
	set := X.selectionFor(ent)
	if set == nil {
		return false
	}
	on := !set.Contains(ent)
	if on {
		set.Add(ent)
	} else {
		set.Remove(ent)
	}
	return on
}

func (X *Graph) IsSelected(ent Entity) bool {
	set := X.selectionFor(ent)
	return set != nil && set.Contains(ent)
}

func (X *Graph) selectionFor(ent Entity) *hashset.Set {
	switch ent := ent.(type) {
	case *Vertex:
		if X.HasVertex(ent) {
			return X.selVtx
		}
	case *Edge:
		if X.HasEdge(ent) {
			return X.selEdges
		}
	case *Facet:
		if X.HasFacet(ent) {
			return X.selFacets
		}
	}
	return nil
}

// NumSelected returns the size of the given kind's selection set.
func (X *Graph) NumSelected(kind gomesh.ObjectKind) int {
	switch kind {
	case gomesh.KindVertex:
		return X.selVtx.Size()
	case gomesh.KindEdge:
		return X.selEdges.Size()
	case gomesh.KindFacet:
		return X.selFacets.Size()
	}
	return 0
}

// DeselectAll empties all three selection sets.
func (X *Graph) DeselectAll() {
	X.selVtx.Clear()
	X.selEdges.Clear()
	X.selFacets.Clear()
}

// SelectAll selects every vertex, edge and facet.
func (X *Graph) SelectAll() {
	for _, v := range X.vtx {
		X.selVtx.Add(v)
	}
	for _, e := range X.edges {
		X.selEdges.Add(e)
	}
	for _, f := range X.facets {
		X.selFacets.Add(f)
	}
}

// SelectedVertices returns the selected vertices ordered by index.
func (X *Graph) SelectedVertices() []*Vertex {
	verts := make([]*Vertex, 0, X.selVtx.Size())
	for _, item := range X.selVtx.Values() {
		verts = append(verts, item.(*Vertex))
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i].index < verts[j].index })
	return verts
}

// SelectedEdges returns the selected edges ordered by index.
func (X *Graph) SelectedEdges() []*Edge {
	edges := make([]*Edge, 0, X.selEdges.Size())
	for _, item := range X.selEdges.Values() {
		edges = append(edges, item.(*Edge))
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].index < edges[j].index })
	return edges
}

// SelectedFacets returns the selected facets ordered by index.
func (X *Graph) SelectedFacets() []*Facet {
	facets := make([]*Facet, 0, X.selFacets.Size())
	for _, item := range X.selFacets.Values() {
		facets = append(facets, item.(*Facet))
	}
	sort.Slice(facets, func(i, j int) bool { return facets[i].index < facets[j].index })
	return facets
}

// selectWithAdjacency selects v along with its incident edges and their facets.
func (X *Graph) selectWithAdjacency(v *Vertex) {
	X.selVtx.Add(v)
	for _, e := range v.adjacency {
		X.selEdges.Add(e)
		if e.f1 != nil {
			X.selFacets.Add(e.f1)
		}
		if e.f2 != nil {
			X.selFacets.Add(e.f2)
		}
	}
}

// SelectFacetAdjacency selects f along with its boundary edges and vertices.
func (X *Graph) SelectFacetAdjacency(f *Facet) {
	if !X.HasFacet(f) {
		return
	}
	X.selFacets.Add(f)
	for i, e := range f.Edges() {
		X.selVtx.Add(f.verts[i])
		if e != nil {
			X.selEdges.Add(e)
		}
	}
}

// SelectEdgeAdjacency selects e along with its endpoints.
func (X *Graph) SelectEdgeAdjacency(e *Edge) {
	if !X.HasEdge(e) {
		return
	}
	X.selEdges.Add(e)
	X.selVtx.Add(e.v1)
	X.selVtx.Add(e.v2)
}

// SelectNeighbours grows the vertex selection by one ring: every vertex adjacent to a selected vertex is selected
// along with the connecting edge.
func (X *Graph) SelectNeighbours() {
	for _, v := range X.SelectedVertices() {
		for vi, e := range v.adjacency {
			X.selVtx.Add(vi)
			X.selEdges.Add(e)
		}
	}
}

// selectedVertexClosure returns the selected vertices, the endpoints of selected edges and the vertices of
// selected facets, ordered by index.
func (X *Graph) selectedVertexClosure() []*Vertex {
	closure := hashset.New()
	for _, item := range X.selVtx.Values() {
		closure.Add(item)
	}
	for _, e := range X.SelectedEdges() {
		closure.Add(e.v1, e.v2)
	}
	for _, f := range X.SelectedFacets() {
		for _, v := range f.verts {
			closure.Add(v)
		}
	}
	verts := make([]*Vertex, 0, closure.Size())
	for _, item := range closure.Values() {
		verts = append(verts, item.(*Vertex))
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i].index < verts[j].index })
	return verts
}
