package libmesh_test

import (
	"strings"
	"testing"

	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// checkInvariants fails t if any structural invariant of X does not hold.
func checkInvariants(t *testing.T, X *libmesh.Graph) {
	t.Helper()

	for i, v := range X.Vertices() {
		if v.Index() != i {
			t.Fatalf("vertex at %d has index %d", i, v.Index())
		}
		for _, e := range v.Edges() {
			if !X.HasEdge(e) {
				t.Fatalf("vertex %d adjacent to missing edge", i)
			}
			if e.OppositeVertex(v).EdgeConnecting(v) != e {
				t.Fatalf("vertex %d adjacency not symmetric", i)
			}
		}
	}

	for i, e := range X.Edges() {
		if e.Index() != i {
			t.Fatalf("edge at %d has index %d", i, e.Index())
		}
		if !X.HasVertex(e.V1()) || !X.HasVertex(e.V2()) {
			t.Fatalf("edge %d has missing endpoint", i)
		}
		if e.V1().EdgeConnecting(e.V2()) != e || e.V2().EdgeConnecting(e.V1()) != e {
			t.Fatalf("edge %d not in endpoint adjacency", i)
		}
		for _, f := range e.AdjacentFacets() {
			if f != nil && !X.HasFacet(f) {
				t.Fatalf("edge %d references missing facet", i)
			}
		}
	}

	tris := 0
	for i, f := range X.Facets() {
		if f.Index() != i {
			t.Fatalf("facet at %d has index %d", i, f.Index())
		}
		vs := f.Vertices()
		if len(vs) < 3 {
			t.Fatalf("facet %d has %d verts", i, len(vs))
		}
		for j, a := range vs {
			b := vs[(j+1)%len(vs)]
			e := a.EdgeConnecting(b)
			if e == nil {
				t.Fatalf("facet %d: no edge %d -> %d", i, a.Index(), b.Index())
			}
			slot := e.F2()
			if e.V1() == a {
				slot = e.F1()
			}
			if slot != f {
				t.Fatalf("facet %d: edge %d slot does not match winding", i, e.Index())
			}
		}
		tris += f.TrianglesCount()
	}
	if tris != X.TrianglesCount() {
		t.Fatalf("triangle count %d, expected %d", X.TrianglesCount(), tris)
	}

	for _, v := range X.SelectedVertices() {
		if !X.HasVertex(v) {
			t.Fatal("stale vertex selected")
		}
	}
	for _, e := range X.SelectedEdges() {
		if !X.HasEdge(e) {
			t.Fatal("stale edge selected")
		}
	}
	for _, f := range X.SelectedFacets() {
		if !X.HasFacet(f) {
			t.Fatal("stale facet selected")
		}
	}
}

func newTriangle(t *testing.T) (X *libmesh.Graph, v1, v2, v3 *libmesh.Vertex, f *libmesh.Facet) {
	X = libmesh.NewGraph()
	v1 = X.AddVertex(vec3.T{0, 0, 0})
	v2 = X.AddVertex(vec3.T{1, 0, 0})
	v3 = X.AddVertex(vec3.T{0, 1, 0})
	f, err := X.AddFacet(v1, v2, v3)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestAddFacet(t *testing.T) {
	X, _, _, _, f := newTriangle(t)
	checkInvariants(t, X)

	if X.NumEdges() != 3 {
		t.Fatalf("expected 3 edges, got %d", X.NumEdges())
	}
	if f.TrianglesCount() != 1 || X.TrianglesCount() != 1 {
		t.Fatalf("expected 1 triangle, got facet %d graph %d", f.TrianglesCount(), X.TrianglesCount())
	}

	edges := f.Edges()
	if len(edges) != 3 {
		t.Fatalf("expected 3 facet edges, got %d", len(edges))
	}
	for _, e := range edges {
		if e == nil || !X.HasEdge(e) {
			t.Fatal("facet edge missing")
		}
		if (e.F1() == f) == (e.F2() == f) {
			t.Fatalf("edge %d should have exactly one slot on the facet", e.Index())
		}
	}
}

func TestRemoveFacet(t *testing.T) {
	X, _, _, _, f := newTriangle(t)

	X.RemoveFacet(f)
	checkInvariants(t, X)

	if X.NumFacets() != 0 || X.HasFacet(f) {
		t.Fatal("facet not removed")
	}
	if X.NumEdges() != 3 {
		t.Fatal("edges should remain")
	}
	for _, e := range X.Edges() {
		if e.F1() != nil || e.F2() != nil {
			t.Fatal("slot not cleared")
		}
	}
	if X.TrianglesCount() != 0 {
		t.Fatalf("expected no triangles after RemoveFacet, got %d", X.TrianglesCount())
	}

	X.RemoveFacet(f)
	checkInvariants(t, X)
}

func TestRemoveEdge(t *testing.T) {
	X, v1, v2, _, f := newTriangle(t)

	X.RemoveEdge(v1.EdgeConnecting(v2))
	checkInvariants(t, X)

	if X.HasFacet(f) || X.NumFacets() != 0 {
		t.Fatal("facet should be removed with its edge")
	}
	if X.NumEdges() != 2 {
		t.Fatalf("expected 2 remaining edges, got %d", X.NumEdges())
	}
	for _, e := range X.Edges() {
		if e.F1() != nil || e.F2() != nil {
			t.Fatal("slot not cleared")
		}
	}
	if v1.EdgeConnecting(v2) != nil || v2.EdgeConnecting(v1) != nil {
		t.Fatal("adjacency not cleared")
	}
}

func TestRemoveVertex(t *testing.T) {
	X, v1, v2, v3, f := newTriangle(t)

	X.RemoveVertex(v2)
	checkInvariants(t, X)

	if X.HasVertex(v2) || v2.Index() != -1 {
		t.Fatal("vertex not removed")
	}
	if X.HasFacet(f) {
		t.Fatal("facet should be removed")
	}
	if v2.NumEdges() != 0 {
		t.Fatal("removed vertex still has edges")
	}
	if X.NumEdges() != 1 || v1.NumEdges() != 1 || v3.NumEdges() != 1 {
		t.Fatal("only the edge not touching v2 should remain")
	}

	// second removal is a no-op
	X.RemoveVertex(v2)
	checkInvariants(t, X)
	if X.NumVerts() != 2 {
		t.Fatalf("expected 2 vertices after a repeated RemoveVertex, got %d", X.NumVerts())
	}
}

func TestSwapRemove(t *testing.T) {
	X := libmesh.NewGraph()
	var vs []*libmesh.Vertex
	for i := 0; i < 4; i++ {
		vs = append(vs, X.AddVertex(vec3.T{float64(i), 0, 0}))
	}

	X.RemoveVertex(vs[0])
	checkInvariants(t, X)

	if X.Vertex(0) != vs[3] || vs[3].Index() != 0 {
		t.Fatal("last vertex should move into the vacated slot")
	}
	if vs[1].Index() != 1 || vs[2].Index() != 2 {
		t.Fatal("other indices should be untouched")
	}
	if X.Vertex(3) != nil {
		t.Fatal("index 3 should be empty after swap-remove")
	}
}

func TestAddEdgeIdempotent(t *testing.T) {
	X := libmesh.NewGraph()
	a := X.AddVertex(vec3.T{0, 0, 0})
	b := X.AddVertex(vec3.T{1, 0, 0})

	e1, err := X.AddEdge(a, b, false)
	if err != nil {
		t.Fatal(err)
	}
	e2, _ := X.AddEdge(a, b, false)
	e3, _ := X.AddEdge(b, a, true)
	if e1 != e2 || e1 != e3 || X.NumEdges() != 1 {
		t.Fatal("AddEdge should return the existing edge")
	}
	if e1.V1() != a || e1.V2() != b {
		t.Fatal("edge orientation should follow the first call")
	}

	if _, err = X.AddEdge(a, a, false); !errors.Is(err, gomesh.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	X.RemoveVertex(b)
	if _, err = X.AddEdge(a, b, false); !errors.Is(err, gomesh.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	checkInvariants(t, X)
}

func TestAddFacetErrors(t *testing.T) {
	X, v1, v2, v3, _ := newTriangle(t)
	v4 := X.AddVertex(vec3.T{1, 1, 0})

	if _, err := X.AddFacet(v1, v2); !errors.Is(err, gomesh.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := X.AddFacet(v1, v1, v2); !errors.Is(err, gomesh.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// v1 -> v2 is already traversed by the triangle
	_, err := X.AddFacet(v1, v2, v4)
	if !errors.Is(err, gomesh.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	checkInvariants(t, X)
	if X.NumFacets() != 1 || X.NumEdges() != 3 {
		t.Fatal("failed AddFacet should leave the graph unchanged")
	}

	f2, err := X.AddFacet(v2, v1, v4)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, X)
	e := v1.EdgeConnecting(v2)
	if e.F1() == nil || e.F2() != f2 {
		t.Fatal("shared edge should have both slots occupied")
	}
	if X.NumEdges() != 5 {
		t.Fatalf("expected 5 edges, got %d", X.NumEdges())
	}

	_, err = X.AddFacet(v3, v2, v4)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, X)
}

func TestAddEdgeSplitsFacet(t *testing.T) {
	X := libmesh.NewGraph()
	a := X.AddVertex(vec3.T{0, 0, 0})
	b := X.AddVertex(vec3.T{1, 0, 0})
	c := X.AddVertex(vec3.T{1, 1, 0})
	d := X.AddVertex(vec3.T{0, 1, 0})
	quad, err := X.AddFacet(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	X.Select(quad, true)

	e, err := X.AddEdge(a, c, true)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, X)

	if X.HasFacet(quad) || X.NumFacets() != 2 || X.TrianglesCount() != 2 {
		t.Fatal("quad should be split into two triangles")
	}
	if e.F1() == nil || e.F2() == nil {
		t.Fatal("new edge should separate the two halves")
	}
	if vs := X.Facet(0).Vertices(); vs[0] != a || vs[1] != b || vs[2] != c {
		t.Fatal("first half should run a..c")
	}
	if vs := X.Facet(1).Vertices(); vs[0] != c || vs[1] != d || vs[2] != a {
		t.Fatal("second half should run c..a")
	}
	if X.NumSelected(gomesh.KindFacet) != 2 {
		t.Fatal("split halves should keep the selection")
	}

	// without the facet check nothing is split
	Y := libmesh.NewGraph()
	for _, v := range []*libmesh.Vertex{a, b, c, d} {
		Y.AddVertex(v.Position())
	}
	Y.AddFacet(Y.Vertex(0), Y.Vertex(1), Y.Vertex(2), Y.Vertex(3))
	Y.AddEdge(Y.Vertex(0), Y.Vertex(2), false)
	if Y.NumFacets() != 1 {
		t.Fatalf("unchecked AddEdge should not split, got %d facets", Y.NumFacets())
	}
}

func TestBox(t *testing.T) {
	X, err := libmesh.Generate(libmesh.DefaultBox())
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, X)

	if X.NumVerts() != 8 || X.NumEdges() != 12 || X.NumFacets() != 6 {
		t.Fatalf("unexpected box counts v=%d e=%d f=%d", X.NumVerts(), X.NumEdges(), X.NumFacets())
	}
	if X.TrianglesCount() != 12 {
		t.Fatalf("expected 12 triangles, got %d", X.TrianglesCount())
	}
	checkClosed(t, X)
}

func checkClosed(t *testing.T, X *libmesh.Graph) {
	t.Helper()
	for _, e := range X.Edges() {
		if e.IsBoundary() {
			t.Fatalf("edge %d is on a boundary", e.Index())
		}
	}
}

func TestFactories(t *testing.T) {
	sphere, err := libmesh.Generate(libmesh.UVSphereFactory{Radius: 1, USubdivision: 8, VSubdivision: 4})
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, sphere)
	checkClosed(t, sphere)
	if sphere.NumVerts() != 8*3+2 || sphere.NumFacets() != 8*2+8*2 {
		t.Fatalf("unexpected sphere counts v=%d f=%d", sphere.NumVerts(), sphere.NumFacets())
	}

	cyl, err := libmesh.Generate(libmesh.CylinderFactory{Height: 2, Radius: 1, Subdivision: 6})
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, cyl)
	checkClosed(t, cyl)
	if cyl.NumFacets() != 8 || cyl.TrianglesCount() != 2*4+6*2 {
		t.Fatalf("unexpected cylinder counts f=%d tris=%d", cyl.NumFacets(), cyl.TrianglesCount())
	}

	plane, err := libmesh.Generate(libmesh.PlaneFactory{Size: 2, USubdivision: 3, VSubdivision: 2})
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, plane)
	if plane.NumVerts() != 12 || plane.NumFacets() != 6 || plane.NumEdges() != 17 {
		t.Fatalf("unexpected plane counts v=%d e=%d f=%d", plane.NumVerts(), plane.NumEdges(), plane.NumFacets())
	}
	for _, f := range plane.Facets() {
		if n := f.Normal(); n[1] < 0.99 {
			t.Fatal("plane should face +y")
		}
	}

	arrow, err := libmesh.Generate(libmesh.DefaultArrow())
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, arrow)
	free := 0
	for _, e := range arrow.Edges() {
		if e.F1() == nil && e.F2() == nil {
			free++
		}
	}
	if free != 1 || arrow.NumFacets() != 4 {
		t.Fatalf("expected 1 free edge and 4 facets, got %d and %d", free, arrow.NumFacets())
	}

	// adding onto an existing graph with selection
	X := libmesh.NewGraph()
	X.AddVertex(vec3.T{5, 5, 5})
	if err := libmesh.DefaultBox().AddTo(X, true); err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, X)
	if X.NumSelected(gomesh.KindVertex) != 8 || X.NumSelected(gomesh.KindEdge) != 12 || X.NumSelected(gomesh.KindFacet) != 6 {
		t.Fatal("new shape should be selected")
	}
	if X.IsSelected(X.Vertex(0)) {
		t.Fatal("existing vertex should not be selected")
	}
}

func TestClone(t *testing.T) {
	X, _ := libmesh.Generate(libmesh.DefaultBox())
	X.Select(X.Vertex(2), true)
	X.Select(X.Edge(5), true)
	X.Select(X.Facet(3), true)

	Y := X.Clone()
	checkInvariants(t, Y)

	if Y.NumVerts() != X.NumVerts() || Y.NumEdges() != X.NumEdges() || Y.NumFacets() != X.NumFacets() {
		t.Fatal("clone counts differ")
	}
	for i, v := range X.Vertices() {
		if Y.Vertex(i) == v || Y.Vertex(i).Position() != v.Position() {
			t.Fatal("vertex not cloned")
		}
		if Y.IsSelected(Y.Vertex(i)) != X.IsSelected(v) {
			t.Fatal("vertex selection differs")
		}
	}
	for i, e := range X.Edges() {
		ei := Y.Edge(i)
		if ei.V1().Index() != e.V1().Index() || ei.V2().Index() != e.V2().Index() {
			t.Fatal("edge orientation differs")
		}
		if ei.F1().Index() != e.F1().Index() || ei.F2().Index() != e.F2().Index() {
			t.Fatal("edge slots differ")
		}
		if Y.IsSelected(ei) != X.IsSelected(e) {
			t.Fatal("edge selection differs")
		}
	}
	for i, f := range X.Facets() {
		fi := Y.Facet(i)
		for j, v := range f.Vertices() {
			if fi.Vertices()[j].Index() != v.Index() {
				t.Fatal("facet cycle differs")
			}
		}
		if Y.IsSelected(fi) != X.IsSelected(f) {
			t.Fatal("facet selection differs")
		}
	}
	if Y.EqvVertex(X.Vertex(4)) != Y.Vertex(4) {
		t.Fatal("EqvVertex should map to the same index")
	}

	// clones are independent
	Y.RemoveVertex(Y.Vertex(0))
	checkInvariants(t, Y)
	checkInvariants(t, X)
	if X.NumVerts() != 8 || X.NumFacets() != 6 {
		t.Fatal("source graph modified")
	}
}

func TestSelection(t *testing.T) {
	X, v1, v2, v3, f := newTriangle(t)

	X.Select(v3, true)
	X.Select(v1, true)
	X.Select(f, true)
	if sel := X.SelectedVertices(); len(sel) != 2 || sel[0] != v1 || sel[1] != v3 {
		t.Fatal("selection should enumerate by index")
	}
	if !X.ToggleSelected(v2) || X.ToggleSelected(v2) {
		t.Fatal("ToggleSelected should report the new state")
	}

	X.RemoveVertex(v1)
	checkInvariants(t, X)
	if X.NumSelected(gomesh.KindVertex) != 1 || X.NumSelected(gomesh.KindFacet) != 0 {
		t.Fatal("removed entities should leave the selection")
	}
	if X.Select(v1, true) {
		t.Fatal("stale entity should not be selectable")
	}

	X.SelectAll()
	if X.NumSelected(gomesh.KindVertex) != 2 || X.NumSelected(gomesh.KindEdge) != 1 {
		t.Fatalf("SelectAll: expected 2 verts and 1 edge, got %d and %d", X.NumSelected(gomesh.KindVertex), X.NumSelected(gomesh.KindEdge))
	}
	X.DeselectAll()
	if X.NumSelected(gomesh.KindVertex)+X.NumSelected(gomesh.KindEdge)+X.NumSelected(gomesh.KindFacet) != 0 {
		t.Fatal("DeselectAll left a selection")
	}
}

func TestEditing(t *testing.T) {
	X, _ := libmesh.Generate(libmesh.DefaultBox())

	X.Select(X.Facet(0), true)
	X.TranslateSelected(vec3.T{1, 0, 0})
	for _, v := range X.Facet(0).Vertices() {
		if v.Position()[0] != 2 {
			t.Fatal("facet vertices should move")
		}
	}
	if X.Vertex(4).Position()[0] != -1 {
		t.Fatal("unselected vertex moved")
	}

	center, ok := X.SelectionCenter()
	if !ok || center[0] != 2 {
		t.Fatalf("unexpected selection center %v (ok=%v)", center, ok)
	}
	X.ScaleSelected(center, 0)
	for _, v := range X.Facet(0).Vertices() {
		if v.Position() != center {
			t.Fatal("facet should collapse onto its center")
		}
	}

	X.DeselectAll()
	X.Select(X.Vertex(0), true)
	X.SelectNeighbours()
	if X.NumSelected(gomesh.KindVertex) != 4 || X.NumSelected(gomesh.KindEdge) != 3 {
		t.Fatal("box corner has three neighbours")
	}
	if n := X.DeleteSelectedEdges(); n != 3 {
		t.Fatalf("expected 3 deleted edges, got %d", n)
	}
	checkInvariants(t, X)
	if X.NumFacets() != 3 {
		t.Fatal("the three facets at the corner should be gone")
	}

	X.DeselectAll()
	X.Select(X.Vertex(0), true)
	X.Select(X.Vertex(1), true)
	if _, err := X.Connect(vec3.T{0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	X.Select(X.Vertex(2), true)
	X.Select(X.Vertex(3), true)
	if _, err := X.Connect(vec3.T{0, 0, 1}); !errors.Is(err, gomesh.ErrInvalidArgument) {
		t.Fatal("connecting four vertices should fail")
	}
	checkInvariants(t, X)
}

func TestLookupAndPick(t *testing.T) {
	X, _ := libmesh.Generate(libmesh.DefaultBox())

	px := libmesh.EncodePick(gomesh.KindEdge, 4)
	if px[0] != 5 || px[1] != float32(gomesh.KindEdge) {
		t.Fatalf("unexpected pick encoding %v", px)
	}
	if kind, idx := libmesh.DecodePick(px); kind != gomesh.KindEdge || idx != 4 {
		t.Fatalf("pick decoded to %v %d", kind, idx)
	}
	if kind, _ := libmesh.DecodePick([2]float32{}); kind != gomesh.KindNone {
		t.Fatal("empty pixel should decode to nothing")
	}
	if X.Pick(libmesh.EncodePick(gomesh.KindFacet, 2)) != X.Facet(2) {
		t.Fatal("facet pick should resolve to facet 2")
	}
	if X.Pick([2]float32{}) != nil {
		t.Fatal("empty pixel should pick nothing")
	}
	if _, err := X.Lookup(gomesh.KindVertex, 8); !errors.Is(err, gomesh.ErrStaleReference) {
		t.Fatal("out of range lookup should fail")
	}
}

func TestBuffers(t *testing.T) {
	X, _ := libmesh.Generate(libmesh.DefaultBox())
	X.Select(X.Vertex(3), true)
	X.Select(X.Facet(1), true)

	var buf libmesh.Buffers
	buf.UpdateAll(X)

	nv, ne, nf := buf.NumRecords()
	if nv != 8 || ne != 24 || nf != 36 {
		t.Fatalf("unexpected record counts %d %d %d", nv, ne, nf)
	}
	if buf.Vertex[3*gomesh.VertexStride+3] != 3 || buf.Vertex[3*gomesh.VertexStride+4] != 1 {
		t.Fatal("vertex record")
	}
	if buf.Vertex[2*gomesh.VertexStride+4] != 0 {
		t.Fatal("unselected vertex should have a zero flag")
	}

	// facet 1 starts after the 2 triangles of facet 0
	rec := buf.Facet[6*gomesh.FacetStride:]
	if rec[3] != 1 || rec[4] != 1 {
		t.Fatal("facet record")
	}
	v0 := X.Facet(1).Vertices()[0].Position()
	if rec[0] != float32(v0[0]) || rec[1] != float32(v0[1]) || rec[2] != float32(v0[2]) {
		t.Fatal("fan should start at the facet's first vertex")
	}

	for i := 0; i < X.NumEdges(); i++ {
		for end := 0; end < 2; end++ {
			r := buf.Edge[(2*i+end)*gomesh.EdgeStride:]
			v := X.Edge(i).Endpoints()[end]
			want := float32(0)
			if X.IsSelected(v) {
				want = 1
			}
			if r[3] != float32(i) || r[5] != want {
				t.Fatal("edge record")
			}
		}
	}

	X.RemoveFacet(X.Facet(0))
	buf.UpdateAll(X)
	if _, _, nf = buf.NumRecords(); nf != 30 {
		t.Fatal("buffers should track removals")
	}
}

func TestExportDef(t *testing.T) {
	X, _ := libmesh.Generate(libmesh.UVSphereFactory{Radius: 1, USubdivision: 6, VSubdivision: 4})
	X.RemoveFacet(X.Facet(3))
	X.AddEdge(X.Vertex(0), X.Vertex(9), false)
	X.Select(X.Vertex(5), true)
	X.Select(X.Edge(7), true)
	X.Select(X.Facet(2), true)

	buf, err := X.ExportDef().Encode()
	if err != nil {
		t.Fatal(err)
	}
	var def gomesh.MeshDef
	if err = def.Decode(buf); err != nil {
		t.Fatal(err)
	}
	Y, err := libmesh.NewGraphFromDef(&def)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, Y)

	var bx, by strings.Builder
	opts := gomesh.PrintOpts{Facets: true, Edges: true, Selection: true}
	X.WriteAsString(&bx, opts)
	Y.WriteAsString(&by, opts)
	if bx.String() != by.String() {
		t.Fatalf("decoded graph differs:\n%s\n%s", bx.String(), by.String())
	}
	for i, v := range X.Vertices() {
		if Y.Vertex(i).Position() != v.Position() {
			t.Fatalf("vertex %d position differs", i)
		}
	}

	def.FacetVerts[0] = 1000
	if _, err = libmesh.NewGraphFromDef(&def); !errors.Is(err, gomesh.ErrUnmarshal) {
		t.Fatal("bad vertex index should fail")
	}
}

func TestWriteAsString(t *testing.T) {
	X, v1, _, _, _ := newTriangle(t)
	X.Select(v1, true)

	b := strings.Builder{}
	X.WriteAsString(&b, gomesh.PrintOpts{Label: "tri", Facets: true, Selection: true})
	expect := "tri v=3,e=3,f=1,tris=1\n  f0: 0 1 2\n  sel v: 0 e: f:\n"
	if b.String() != expect {
		t.Fatalf("got %q", b.String())
	}
}
