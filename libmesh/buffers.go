package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
)

// Buffers holds the flat, fixed-stride float32 records a renderer uploads to the GPU.
//
//	Vertex: gomesh.VertexStride floats per vertex: x, y, z, vertexIndex, selected
//	Edge:   2 records per edge, gomesh.EdgeStride floats each: x, y, z, edgeIndex, edgeSelected, endpointSelected
//	Facet:  3 records per fan triangle, gomesh.FacetStride floats each: x, y, z, facetIndex, selected
type Buffers struct {
	Vertex []float32
	Edge   []float32
	Facet  []float32
}

// NumRecords returns the number of records in each buffer.
func (buf *Buffers) NumRecords() (verts, edges, facets int) {
	return len(buf.Vertex) / gomesh.VertexStride, len(buf.Edge) / gomesh.EdgeStride, len(buf.Facet) / gomesh.FacetStride
}

// UpdateAll regenerates all three buffers from X, reusing their capacity.
func (buf *Buffers) UpdateAll(X *Graph) {
	buf.UpdateVertexData(X)
	buf.UpdateEdgeData(X)
	buf.UpdateFacetData(X)
}

func flag(on bool) float32 {
	if on {
		return 1
	}
	return 0
}

func (buf *Buffers) UpdateVertexData(X *Graph) {
	data := buf.Vertex[:0]
	for i, v := range X.vtx {
		data = append(data,
			float32(v.pos[0]), float32(v.pos[1]), float32(v.pos[2]),
			float32(i),
			flag(X.selVtx.Contains(v)))
	}
	buf.Vertex = data
}

func (buf *Buffers) UpdateEdgeData(X *Graph) {
	data := buf.Edge[:0]
	for i, e := range X.edges {
		sel := flag(X.selEdges.Contains(e))
		for _, v := range [2]*Vertex{e.v1, e.v2} {
			data = append(data,
				float32(v.pos[0]), float32(v.pos[1]), float32(v.pos[2]),
				float32(i),
				sel,
				flag(X.selVtx.Contains(v)))
		}
	}
	buf.Edge = data
}

func (buf *Buffers) UpdateFacetData(X *Graph) {
	data := buf.Facet[:0]
	for i, f := range X.facets {
		sel := flag(X.selFacets.Contains(f))
		for t := 0; t < f.TrianglesCount(); t++ {
			for _, v := range [3]*Vertex{f.verts[0], f.verts[t+1], f.verts[t+2]} {
				data = append(data,
					float32(v.pos[0]), float32(v.pos[1]), float32(v.pos[2]),
					float32(i),
					sel)
			}
		}
	}
	buf.Facet = data
}
