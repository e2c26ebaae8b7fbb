package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// TranslateSelected moves every selected vertex (including the vertices of selected edges and facets) by delta.
func (X *Graph) TranslateSelected(delta vec3.T) {
	for _, v := range X.selectedVertexClosure() {
		v.pos.Add(&delta)
	}
}

// ScaleSelected scales every selected vertex (including the vertices of selected edges and facets) about center.
func (X *Graph) ScaleSelected(center vec3.T, factor float64) {
	for _, v := range X.selectedVertexClosure() {
		d := vec3.Sub(&v.pos, &center)
		d.Scale(factor)
		v.pos = vec3.Add(&center, &d)
	}
}

// SelectionCenter returns the centroid of the selected vertex closure; ok is false if nothing is selected.
func (X *Graph) SelectionCenter() (center vec3.T, ok bool) {
	verts := X.selectedVertexClosure()
	if len(verts) == 0 {
		return center, false
	}
	for _, v := range verts {
		center.Add(&v.pos)
	}
	center.Scale(1 / float64(len(verts)))
	return center, true
}

func (X *Graph) DeleteSelectedVertices() int {
	verts := X.SelectedVertices()
	for _, v := range verts {
		X.RemoveVertex(v)
	}
	return len(verts)
}

func (X *Graph) DeleteSelectedEdges() int {
	edges := X.SelectedEdges()
	for _, e := range edges {
		X.RemoveEdge(e)
	}
	return len(edges)
}

func (X *Graph) DeleteSelectedFacets() int {
	facets := X.SelectedFacets()
	for _, f := range facets {
		X.RemoveFacet(f)
	}
	return len(facets)
}

// SplitSelectedEdges splits each selected edge at its midpoint.
func (X *Graph) SplitSelectedEdges() ([]*Vertex, error) {
	edges := X.SelectedEdges()
	added := make([]*Vertex, 0, len(edges))
	for _, e := range edges {
		mid := vec3.Add(&e.v1.pos, &e.v2.pos)
		mid.Scale(0.5)
		v, err := X.SplitEdgeAt(e, mid)
		if err != nil {
			return added, err
		}
		added = append(added, v)
	}
	return added, nil
}

// Connect joins the selected vertices: two become an edge (splitting a facet they share), three become a
// triangle facing along hint.
func (X *Graph) Connect(hint vec3.T) (Entity, error) {
	verts := X.SelectedVertices()
	switch len(verts) {
	case 2:
		e, err := X.AddEdge(verts[0], verts[1], true)
		if err != nil {
			return nil, err
		}
		return e, nil
	case 3:
		f, err := X.AddTriangle(hint, verts[0], verts[1], verts[2])
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, errors.Wrapf(gomesh.ErrInvalidArgument, "Connect: need 2 or 3 selected vertices, have %d", len(verts))
}
