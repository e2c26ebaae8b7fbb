package libmesh

import (
	"math"

	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// BoxFactory generates an axis-aligned box centered at the origin: 8 vertices, 6 quads, closed.
type BoxFactory struct {
	Length float64 // along x
	Width  float64 // along z
	Height float64 // along y
}

// PlaneFactory generates a square grid of quads in the y=0 plane, facing +y.
type PlaneFactory struct {
	Size         float64
	USubdivision int
	VSubdivision int
}

// UVSphereFactory generates a closed latitude/longitude sphere with triangle fans at the poles.
type UVSphereFactory struct {
	Radius       float64
	USubdivision int
	VSubdivision int
}

// CylinderFactory generates a closed cylinder along y with n-gon caps.
type CylinderFactory struct {
	Height      float64
	Radius      float64
	Subdivision int
}

// ArrowFactory generates a free shaft edge along +z capped with an open four-sided pyramid.
type ArrowFactory struct {
	Length   float64
	HeadSize float64
}

func DefaultBox() BoxFactory           { return BoxFactory{2, 2, 2} }
func DefaultPlane() PlaneFactory       { return PlaneFactory{2, 10, 10} }
func DefaultUVSphere() UVSphereFactory { return UVSphereFactory{2, 32, 16} }
func DefaultCylinder() CylinderFactory { return CylinderFactory{2, 1, 32} }
func DefaultArrow() ArrowFactory       { return ArrowFactory{3, 0.5} }

// shapeBuilder accumulates a factory's new vertices and the first AddFacet error.
type shapeBuilder struct {
	X     *Graph
	verts []*Vertex
	err   error
}

func (b *shapeBuilder) vertex(x, y, z float64) *Vertex {
	v := b.X.AddVertex(vec3.T{x, y, z})
	b.verts = append(b.verts, v)
	return v
}

func (b *shapeBuilder) facet(vs ...*Vertex) {
	if b.err != nil {
		return
	}
	_, b.err = b.X.AddFacet(vs...)
}

func (b *shapeBuilder) finish(selected bool) error {
	if b.err != nil {
		return errors.Wrap(b.err, "mesh factory")
	}
	if selected {
		for _, v := range b.verts {
			b.X.selectWithAdjacency(v)
		}
	}
	return nil
}

func (fac BoxFactory) AddTo(X *Graph, selected bool) error {
	l, w, h := fac.Length/2, fac.Width/2, fac.Height/2
	b := shapeBuilder{X: X}

	vs := [8]*Vertex{
		b.vertex(l, h, w),
		b.vertex(l, h, -w),
		b.vertex(l, -h, w),
		b.vertex(l, -h, -w),
		b.vertex(-l, h, w),
		b.vertex(-l, h, -w),
		b.vertex(-l, -h, w),
		b.vertex(-l, -h, -w),
	}

	b.facet(vs[2], vs[3], vs[1], vs[0])
	b.facet(vs[4], vs[5], vs[7], vs[6])
	b.facet(vs[1], vs[5], vs[4], vs[0])
	b.facet(vs[2], vs[6], vs[7], vs[3])
	b.facet(vs[0], vs[4], vs[6], vs[2])
	b.facet(vs[3], vs[7], vs[5], vs[1])
	return b.finish(selected)
}

func (fac PlaneFactory) AddTo(X *Graph, selected bool) error {
	nu, nv := fac.USubdivision, fac.VSubdivision
	if nu < 1 || nv < 1 {
		return errors.Wrapf(gomesh.ErrInvalidArgument, "plane subdivisions %dx%d", nu, nv)
	}
	b := shapeBuilder{X: X}

	grid := make([][]*Vertex, nv+1)
	for i := range grid {
		grid[i] = make([]*Vertex, nu+1)
		for j := range grid[i] {
			grid[i][j] = b.vertex(
				fac.Size*float64(j)/float64(nu)-fac.Size/2,
				0,
				fac.Size/2-fac.Size*float64(i)/float64(nv))
		}
	}
	for i := 0; i < nv; i++ {
		for j := 0; j < nu; j++ {
			b.facet(grid[i][j], grid[i][j+1], grid[i+1][j+1], grid[i+1][j])
		}
	}
	return b.finish(selected)
}

func (fac UVSphereFactory) AddTo(X *Graph, selected bool) error {
	nu, nv := fac.USubdivision, fac.VSubdivision
	if nu < 3 || nv < 2 {
		return errors.Wrapf(gomesh.ErrInvalidArgument, "sphere subdivisions %dx%d", nu, nv)
	}
	b := shapeBuilder{X: X}
	r := fac.Radius

	// rings[0] is the ring nearest the top pole
	rings := make([][]*Vertex, nv-1)
	for v := range rings {
		rings[v] = make([]*Vertex, nu)
		lat := math.Pi/2 - math.Pi*float64(v+1)/float64(nv)
		for u := range rings[v] {
			lon := 2 * math.Pi * float64(u) / float64(nu)
			rings[v][u] = b.vertex(
				r*math.Cos(lon)*math.Cos(lat),
				r*math.Sin(lat),
				-r*math.Sin(lon)*math.Cos(lat))
		}
	}
	for v := 0; v+1 < len(rings); v++ {
		for u := 0; u < nu; u++ {
			u1 := (u + 1) % nu
			b.facet(rings[v][u], rings[v+1][u], rings[v+1][u1], rings[v][u1])
		}
	}

	top := b.vertex(0, r, 0)
	btm := b.vertex(0, -r, 0)
	last := rings[len(rings)-1]
	for u := 0; u < nu; u++ {
		u1 := (u + 1) % nu
		b.facet(top, rings[0][u], rings[0][u1])
		b.facet(last[u1], last[u], btm)
	}
	return b.finish(selected)
}

func (fac CylinderFactory) AddTo(X *Graph, selected bool) error {
	n := fac.Subdivision
	if n < 3 {
		return errors.Wrapf(gomesh.ErrInvalidArgument, "cylinder subdivision %d", n)
	}
	b := shapeBuilder{X: X}

	top := make([]*Vertex, n)
	btm := make([]*Vertex, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x, z := fac.Radius*math.Cos(a), -fac.Radius*math.Sin(a)
		top[i] = b.vertex(x, fac.Height/2, z)
		btm[i] = b.vertex(x, -fac.Height/2, z)
	}

	btmRev := make([]*Vertex, n)
	for i, v := range btm {
		btmRev[n-1-i] = v
	}
	b.facet(top...)
	b.facet(btmRev...)

	for i := 0; i < n; i++ {
		i1 := (i + 1) % n
		b.facet(top[i], btm[i], btm[i1], top[i1])
	}
	return b.finish(selected)
}

func (fac ArrowFactory) AddTo(X *Graph, selected bool) error {
	b := shapeBuilder{X: X}
	s := fac.HeadSize / 8
	z := fac.Length - fac.HeadSize

	org := b.vertex(0, 0, 0)
	head := b.vertex(0, 0, fac.Length)
	h1 := b.vertex(s, s, z)
	h2 := b.vertex(-s, s, z)
	h3 := b.vertex(-s, -s, z)
	h4 := b.vertex(s, -s, z)

	X.addEdge(org, head)
	b.facet(h1, h2, head)
	b.facet(h2, h3, head)
	b.facet(h3, h4, head)
	b.facet(h4, h1, head)
	return b.finish(selected)
}
