package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/ungerik/go3d/float64/vec3"
)

// Entity is implemented by *Vertex, *Edge and *Facet.
//
// An entity's index is only meaningful while the entity is present in its graph: any removal of an entity of
// the same kind may move the former last element into the vacated slot and rewrite that element's index.
type Entity interface {
	Index() int
	Kind() gomesh.ObjectKind
}

// MeshFactory adds a parametric shape onto a graph.
type MeshFactory interface {

	// AddTo adds this shape's vertices and facets onto X.
	// If selected is set, every new vertex and its incident edges and facets are selected.
	AddTo(X *Graph, selected bool) error
}

// Generate builds a new graph holding only the given factory's shape (nothing selected).
func Generate(fac MeshFactory) (*Graph, error) {
	X := NewGraph()
	if err := fac.AddTo(X, false); err != nil {
		return nil, err
	}
	return X, nil
}

// slotted is implemented by the entity kinds that live in a dense, index-addressed collection.
type slotted interface {
	setIndex(idx int32)
}

// swapRemove removes list[i] by moving the last element into slot i and rewriting its index.
// The removed element is marked as detached (index -1).
func swapRemove[T slotted](list []T, i int32) []T {
	last := int32(len(list) - 1)
	removed := list[i]
	if i != last {
		list[i] = list[last]
		list[i].setIndex(i)
	}
	var nilT T
	list[last] = nilT
	removed.setIndex(-1)
	return list[:last]
}

// triangleNormal returns the (unnormalized) right-hand normal of the triangle p0, p1, p2.
func triangleNormal(p0, p1, p2 *vec3.T) vec3.T {
	d1 := vec3.Sub(p1, p0)
	d2 := vec3.Sub(p2, p0)
	return vec3.Cross(&d1, &d2)
}
