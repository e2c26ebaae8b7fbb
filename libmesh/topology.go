package libmesh

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/ungerik/go3d/float64/vec3"
)

// SplitEdgeAt inserts a new vertex at pos into edge e.
//
// Each facet adjacent to e is rebuilt with the new vertex inserted between e's endpoints, keeping its winding
// and selection state.  A free edge is replaced by two edges through the new vertex.
func (X *Graph) SplitEdgeAt(e *Edge, pos vec3.T) (*Vertex, error) {
	if !X.HasEdge(e) {
		return nil, errors.Wrap(gomesh.ErrStaleReference, "SplitEdgeAt")
	}

	v1, v2 := e.v1, e.v2
	edgeSelected := X.selEdges.Contains(e)
	nv := X.AddVertex(pos)

	type rebuild struct {
		cycle    []*Vertex
		selected bool
	}
	var facets []rebuild
	for _, f := range [2]*Facet{e.f1, e.f2} {
		if f == nil || (len(facets) > 0 && e.f1 == e.f2) {
			continue
		}
		facets = append(facets, rebuild{
			cycle:    f.insertBetween(v1, v2, nv),
			selected: X.selFacets.Contains(f),
		})
	}

	X.RemoveEdge(e)

	if len(facets) == 0 {
		X.addEdge(v1, nv)
		X.addEdge(nv, v2)
	}
	for _, re := range facets {
		f, err := X.AddFacet(re.cycle...)
		if err != nil {
			return nv, errors.Wrap(err, "SplitEdgeAt")
		}
		if re.selected {
			X.selFacets.Add(f)
		}
	}

	if edgeSelected {
		X.selVtx.Add(nv)
		X.selEdges.Add(v1.EdgeConnecting(nv))
		X.selEdges.Add(nv.EdgeConnecting(v2))
	}
	return nv, nil
}

// AddTriangle adds a triangular facet over three vertices, choosing its winding.
//
// If one of the triangle's edges already has exactly one adjacent facet, the triangle is wound opposite to
// that facet so the two agree.  Otherwise the triangle is wound so its normal points along hint, the
// direction the new facet should face (e.g. toward the viewer).
func (X *Graph) AddTriangle(hint vec3.T, v0, v1, v2 *Vertex) (*Facet, error) {
	tri := [3]*Vertex{v0, v1, v2}

	reverse, constrained := false, false
	for i := 0; i < 3 && !constrained; i++ {
		a, b := tri[i], tri[(i+1)%3]
		e := a.EdgeConnecting(b)
		if e == nil || (e.f1 == nil) == (e.f2 == nil) {
			continue
		}
		from := e.v1
		if e.f1 == nil {
			from = e.v2
		}
		reverse = from == a
		constrained = true
	}

	if !constrained {
		n := triangleNormal(&v0.pos, &v1.pos, &v2.pos)
		reverse = vec3.Dot(&n, &hint) < 0
	}

	if reverse {
		return X.AddFacet(v0, v2, v1)
	}
	return X.AddFacet(v0, v1, v2)
}

// halfEdge is a boundary edge of a facet region, directed as the region traverses it.
type halfEdge struct {
	edge       *Edge
	tail, head *Vertex
}

// region is a set of facets along with their shared (internal) edges and their boundary half-edges.
type region struct {
	facets   []*Facet
	internal []*Edge
	boundary *treemap.Map // edge index => halfEdge
}

// regionOf dedupes the given facets (dropping any not in this graph) and classifies their edges.
// An edge traversed by two facets of the region is internal; an edge traversed once is on the boundary.
func (X *Graph) regionOf(facets []*Facet) *region {
	R := &region{
		boundary: treemap.NewWith(utils.IntComparator),
	}
	seen := make(map[*Facet]struct{}, len(facets))
	for _, f := range facets {
		if !X.HasFacet(f) {
			continue
		}
		if _, dupe := seen[f]; dupe {
			continue
		}
		seen[f] = struct{}{}
		R.facets = append(R.facets, f)
	}

	for _, f := range R.facets {
		n := len(f.verts)
		for i, e := range f.Edges() {
			key := e.Index()
			if _, found := R.boundary.Get(key); found {
				R.boundary.Remove(key)
				R.internal = append(R.internal, e)
				continue
			}
			positive := e.v1 == f.verts[i] && e.v2 == f.verts[(i+1)%n]
			he := halfEdge{edge: e, tail: e.v2, head: e.v1}
			if positive {
				he.tail, he.head = e.v1, e.v2
			}
			R.boundary.Put(key, he)
		}
	}
	return R
}

func (R *region) halfEdges() []halfEdge {
	hes := make([]halfEdge, 0, R.boundary.Size())
	for itr := R.boundary.Iterator(); itr.Next(); {
		hes = append(hes, itr.Value().(halfEdge))
	}
	return hes
}

// outgoing maps each boundary vertex to the boundary half-edge leaving it.
// Fails if a vertex has more than one (the boundary is pinched there).
func (R *region) outgoing() (map[*Vertex]halfEdge, error) {
	out := make(map[*Vertex]halfEdge, R.boundary.Size())
	for _, he := range R.halfEdges() {
		if _, dupe := out[he.tail]; dupe {
			return nil, errors.Wrapf(gomesh.ErrAmbiguousBoundary, "boundary branches at vertex %d", he.tail.index)
		}
		out[he.tail] = he
	}
	return out, nil
}

// loop walks the region's boundary starting at its lowest-index boundary edge.
// Fails unless the boundary is exactly one closed loop.
func (R *region) loop() ([]*Vertex, error) {
	if R.boundary.Empty() {
		return nil, errors.Wrap(gomesh.ErrAmbiguousBoundary, "region has no boundary")
	}
	out, err := R.outgoing()
	if err != nil {
		return nil, err
	}

	_, first := R.boundary.Min()
	start := first.(halfEdge).tail
	var loop []*Vertex
	for v := start; ; {
		he, ok := out[v]
		if !ok {
			return nil, errors.Wrapf(gomesh.ErrAmbiguousBoundary, "boundary is not closed at vertex %d", v.index)
		}
		delete(out, v)
		loop = append(loop, v)
		v = he.head
		if v == start {
			break
		}
	}
	if len(out) > 0 {
		return nil, errors.Wrapf(gomesh.ErrAmbiguousBoundary, "boundary has %d edges outside the first loop", len(out))
	}
	return loop, nil
}

// Join merges a contiguous set of facets into a single facet bounded by their outer boundary.
//
// Edges shared by two of the given facets are removed; vertices left interior to the region are kept.
// Fails with ErrAmbiguousBoundary (leaving the graph unchanged) unless the boundary is a single loop.
// The new facet is selected if any of the given facets was.
func (X *Graph) Join(facets []*Facet) (*Facet, error) {
	R := X.regionOf(facets)
	if len(R.facets) == 0 {
		return nil, errors.Wrap(gomesh.ErrInvalidArgument, "Join: no facets given")
	}
	loop, err := R.loop()
	if err != nil {
		return nil, errors.Wrap(err, "Join")
	}

	selected := false
	for _, f := range R.facets {
		selected = selected || X.selFacets.Contains(f)
		X.RemoveFacet(f)
	}
	for _, e := range R.internal {
		X.RemoveEdge(e)
	}

	f, err := X.AddFacet(loop...)
	if err != nil {
		return nil, errors.Wrap(err, "Join")
	}
	if selected {
		X.selFacets.Add(f)
	}

	klog.V(2).Infof("joined %d facets into facet %d (%d verts)", len(R.facets), f.index, len(loop))
	return f, nil
}

// Extrude lifts a set of facets off the mesh.
//
// Each given facet is replaced by a cap facet over duplicated vertices (same positions, same winding), and
// each boundary edge a -> b of the region gets a quad wall (a, b, b', a') joining it to its duplicate.
// Edges internal to the region are removed.  Afterwards the selection holds exactly the caps along with
// their edges and vertices.  Returns the caps in the order the facets were given.
func (X *Graph) Extrude(facets []*Facet) ([]*Facet, error) {
	R := X.regionOf(facets)
	if len(R.facets) == 0 {
		return nil, errors.Wrap(gomesh.ErrInvalidArgument, "Extrude: no facets given")
	}
	if _, err := R.outgoing(); err != nil {
		return nil, errors.Wrap(err, "Extrude")
	}
	walls := R.halfEdges()

	dupes := make(map[*Vertex]*Vertex)
	caps := make([][]*Vertex, len(R.facets))
	for i, f := range R.facets {
		cycle := make([]*Vertex, len(f.verts))
		for j, v := range f.verts {
			dupe := dupes[v]
			if dupe == nil {
				dupe = X.AddVertex(v.pos)
				dupes[v] = dupe
			}
			cycle[j] = dupe
		}
		caps[i] = cycle
	}

	for _, f := range R.facets {
		X.RemoveFacet(f)
	}
	for _, e := range R.internal {
		X.RemoveEdge(e)
	}
	X.DeselectAll()

	capFacets := make([]*Facet, 0, len(caps))
	for _, cycle := range caps {
		f, err := X.AddFacet(cycle...)
		if err != nil {
			return capFacets, errors.Wrap(err, "Extrude: cap")
		}
		capFacets = append(capFacets, f)
	}
	for _, he := range walls {
		if _, err := X.AddFacet(he.tail, he.head, dupes[he.head], dupes[he.tail]); err != nil {
			return capFacets, errors.Wrap(err, "Extrude: wall")
		}
	}

	for _, f := range capFacets {
		X.SelectFacetAdjacency(f)
	}

	klog.V(2).Infof("extruded %d facets (%d walls)", len(capFacets), len(walls))
	return capFacets, nil
}
