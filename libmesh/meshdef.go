package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// ExportDef returns the serializable form of this graph, selection included.
func (X *Graph) ExportDef() *gomesh.MeshDef {
	def := &gomesh.MeshDef{
		Positions: make([]float64, 0, 3*len(X.vtx)),
		EdgeVerts: make([]uint32, 0, 2*len(X.edges)),
	}
	for _, v := range X.vtx {
		def.Positions = append(def.Positions, v.pos[0], v.pos[1], v.pos[2])
	}
	for _, e := range X.edges {
		def.EdgeVerts = append(def.EdgeVerts, uint32(e.v1.index), uint32(e.v2.index))
	}
	for _, f := range X.facets {
		def.FacetSizes = append(def.FacetSizes, uint32(len(f.verts)))
		for _, v := range f.verts {
			def.FacetVerts = append(def.FacetVerts, uint32(v.index))
		}
	}
	for _, v := range X.SelectedVertices() {
		def.SelVerts = append(def.SelVerts, uint32(v.index))
	}
	for _, e := range X.SelectedEdges() {
		def.SelEdges = append(def.SelEdges, uint32(e.index))
	}
	for _, f := range X.SelectedFacets() {
		def.SelFacets = append(def.SelFacets, uint32(f.index))
	}
	return def
}

// NewGraphFromDef rebuilds the graph encoded by def.  The result is index-isomorphic to the exported graph.
func NewGraphFromDef(def *gomesh.MeshDef) (*Graph, error) {
	X := NewGraph()
	if err := X.ImportDef(def); err != nil {
		return nil, err
	}
	return X, nil
}

// ImportDef appends the entities encoded by def onto this graph (replacing the current selection if def has one).
func (X *Graph) ImportDef(def *gomesh.MeshDef) error {
	if len(def.Positions)%3 != 0 || len(def.EdgeVerts)%2 != 0 {
		return errors.Wrap(gomesh.ErrUnmarshal, "truncated MeshDef arrays")
	}

	v0 := len(X.vtx)
	e0 := len(X.edges)
	f0 := len(X.facets)
	nv := def.NumVerts()

	vertexAt := func(idx uint32) (*Vertex, error) {
		if int(idx) >= nv {
			return nil, errors.Wrapf(gomesh.ErrUnmarshal, "vertex index %d out of range", idx)
		}
		return X.vtx[v0+int(idx)], nil
	}

	for i := 0; i < nv; i++ {
		X.AddVertex(vec3.T{def.Positions[3*i], def.Positions[3*i+1], def.Positions[3*i+2]})
	}

	for i := 0; i < len(def.EdgeVerts); i += 2 {
		p1, err := vertexAt(def.EdgeVerts[i])
		if err != nil {
			return err
		}
		p2, err := vertexAt(def.EdgeVerts[i+1])
		if err != nil {
			return err
		}
		if p1 == p2 || p1.EdgeConnecting(p2) != nil {
			return errors.Wrapf(gomesh.ErrUnmarshal, "bad edge %d", i/2)
		}
		X.addEdge(p1, p2)
	}

	pos := 0
	cycle := make([]*Vertex, 0, 8)
	for fi, size := range def.FacetSizes {
		if pos+int(size) > len(def.FacetVerts) {
			return errors.Wrapf(gomesh.ErrUnmarshal, "facet %d overruns vertex list", fi)
		}
		cycle = cycle[:0]
		for _, idx := range def.FacetVerts[pos : pos+int(size)] {
			v, err := vertexAt(idx)
			if err != nil {
				return err
			}
			cycle = append(cycle, v)
		}
		pos += int(size)
		if _, err := X.AddFacet(cycle...); err != nil {
			return errors.Wrapf(err, "facet %d", fi)
		}
	}
	if len(X.edges)-e0 != len(def.EdgeVerts)/2 {
		return errors.Wrap(gomesh.ErrUnmarshal, "facet boundary edge missing from edge list")
	}

	if len(def.SelVerts)+len(def.SelEdges)+len(def.SelFacets) > 0 {
		X.DeselectAll()
	}
	for _, idx := range def.SelVerts {
		X.Select(X.Vertex(v0+int(idx)), true)
	}
	for _, idx := range def.SelEdges {
		X.Select(X.Edge(e0+int(idx)), true)
	}
	for _, idx := range def.SelFacets {
		X.Select(X.Facet(f0+int(idx)), true)
	}
	return nil
}
