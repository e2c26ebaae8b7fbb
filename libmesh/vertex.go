package libmesh

import (
	"sort"

	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/ungerik/go3d/float64/vec3"
)

// Vertex is a point of a mesh graph.
//
// Its adjacency maps each neighboring vertex to the edge connecting the two.
type Vertex struct {
	index     int32
	pos       vec3.T
	adjacency map[*Vertex]*Edge
}

func newVertex(pos vec3.T) *Vertex {
	return &Vertex{
		pos:       pos,
		adjacency: make(map[*Vertex]*Edge),
	}
}

func (v *Vertex) setIndex(idx int32) {
	v.index = idx
}

// Index returns this vertex's position in its graph's vertex collection (or -1 once removed).
func (v *Vertex) Index() int {
	return int(v.index)
}

func (v *Vertex) Kind() gomesh.ObjectKind {
	return gomesh.KindVertex
}

func (v *Vertex) Position() vec3.T {
	return v.pos
}

// NumEdges returns the number of edges incident to this vertex.
func (v *Vertex) NumEdges() int {
	return len(v.adjacency)
}

// EdgeConnecting returns the edge connecting v and other, or nil if there is none.
func (v *Vertex) EdgeConnecting(other *Vertex) *Edge {
	return v.adjacency[other]
}

// Edges returns the edges incident to this vertex, ordered by edge index.
func (v *Vertex) Edges() []*Edge {
	edges := make([]*Edge, 0, len(v.adjacency))
	for _, e := range v.adjacency {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].index < edges[j].index
	})
	return edges
}

// AdjacentVertices returns the neighbors of this vertex, ordered by vertex index.
func (v *Vertex) AdjacentVertices() []*Vertex {
	verts := make([]*Vertex, 0, len(v.adjacency))
	for vi := range v.adjacency {
		verts = append(verts, vi)
	}
	sort.Slice(verts, func(i, j int) bool {
		return verts[i].index < verts[j].index
	})
	return verts
}

// AdjacentFacets returns the facets touching any edge incident to this vertex, ordered by facet index.
func (v *Vertex) AdjacentFacets() []*Facet {
	var facets []*Facet
	seen := make(map[*Facet]struct{})
	for _, e := range v.adjacency {
		for _, f := range [2]*Facet{e.f1, e.f2} {
			if f == nil {
				continue
			}
			if _, dupe := seen[f]; !dupe {
				seen[f] = struct{}{}
				facets = append(facets, f)
			}
		}
	}
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].index < facets[j].index
	})
	return facets
}
