package pymesh

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fine-structures/cubemesh/editor"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/go-python/gpython/py"
	"github.com/ungerik/go3d/float64/vec3"
)

func call(t *testing.T, fn func(py.Object, py.Tuple) (py.Object, error), self py.Object, args ...py.Object) py.Object {
	t.Helper()
	out, err := fn(self, py.Tuple(args))
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func quadMesh(t *testing.T) pyMesh {
	X := call(t, py_NewMesh, nil).(pyMesh)
	call(t, py_Mesh_AddVertex, X, py.Int(0), py.Int(0), py.Int(0))
	call(t, py_Mesh_AddVertex, X, py.Float(1), py.Float(0), py.Float(0))
	call(t, py_Mesh_AddVertex, X, py.Float(1), py.Float(1), py.Float(0))
	call(t, py_Mesh_AddVertex, X, py.Float(0), py.Float(1), py.Float(0))
	f := call(t, py_Mesh_AddFacet, X, py.Int(0), py.Int(1), py.Int(2), py.Int(3))
	if f != py.Int(0) {
		t.Fatalf("facet index %v", f)
	}
	return X
}

func TestMesh(t *testing.T) {
	X := quadMesh(t)

	counts := call(t, py_Mesh_Counts, X).(py.Tuple)
	if counts[0] != py.Int(4) || counts[1] != py.Int(4) || counts[2] != py.Int(1) {
		t.Fatalf("counts %v", counts)
	}

	// splits the quad
	e := call(t, py_Mesh_AddEdge, X, py.Int(0), py.Int(2), py.True)
	if e != py.Int(4) || X.NumFacets() != 2 {
		t.Fatalf("AddEdge gave %v with %d facets", e, X.NumFacets())
	}

	if _, err := py_Mesh_AddFacet(X, py.Tuple{py.Int(0), py.Int(1), py.Int(9)}); err == nil {
		t.Fatal("expected stale vertex error")
	}
	if _, err := py_Mesh_AddFacet(X, py.Tuple{py.Int(0), py.Int(1), py.Int(2)}); err == nil {
		t.Fatal("expected occupied slot error")
	}

	if sel := call(t, py_Mesh_Select, X, py.Int(gomesh.KindVertex), py.Int(3)); sel != py.True {
		t.Fatal("vertex not selected")
	}
	sel := call(t, py_Mesh_Selection, X).(py.Tuple)
	if verts := sel[0].(py.Tuple); len(verts) != 1 || verts[0] != py.Int(3) {
		t.Fatalf("selection %v", sel)
	}

	call(t, py_Mesh_RemoveVertex, X, py.Int(3))
	if X.NumVerts() != 3 || X.NumSelected(gomesh.KindVertex) != 0 {
		t.Fatalf("RemoveVertex left v=%d sel=%d", X.NumVerts(), X.NumSelected(gomesh.KindVertex))
	}
	call(t, py_Mesh_RemoveFacet, X, py.Int(0))
	if X.NumFacets() != 0 {
		t.Fatal("RemoveFacet failed")
	}
	if _, err := py_Mesh_RemoveEdge(X, py.Tuple{py.Int(99)}); err == nil {
		t.Fatal("expected stale edge error")
	}
}

func TestEditor(t *testing.T) {
	if names := call(t, py_Funcs, nil, py.String("Create")).(py.Tuple); len(names) == 0 {
		t.Fatal("no Create funcs")
	}

	ed := pyEditor{editor.NewEditor(nil)}
	call(t, py_Editor_Invoke, ed, py.String("Cube"))
	X := call(t, py_Editor_Mesh, ed).(pyMesh)
	if X.NumVerts() != 8 || X.NumFacets() != 6 {
		t.Fatalf("Cube gave v=%d f=%d", X.NumVerts(), X.NumFacets())
	}

	picked := call(t, py_Editor_Click, ed, py.Int(gomesh.KindVertex), py.Int(2))
	if tup, ok := picked.(py.Tuple); !ok || tup[1] != py.Int(2) {
		t.Fatalf("Click gave %v", picked)
	}
	if X.NumSelected(gomesh.KindVertex) != 1 {
		t.Fatal("click did not select")
	}
	if _, err := py_Editor_Invoke(ed, py.Tuple{py.String("No Such Func")}); err == nil {
		t.Fatal("expected unknown func error")
	}
}

func TestCatalog(t *testing.T) {
	ws := &Workspace{}
	defer ws.Close()

	catObj := call(t, py_Workspace_OpenCatalog, ws, py.String(""))
	X := quadMesh(t)
	call(t, py_Catalog_Put, catObj, py.String("quad"), X)

	names := call(t, py_Catalog_Names, catObj).(py.Tuple)
	if len(names) != 1 || names[0] != py.String("quad") {
		t.Fatalf("names %v", names)
	}
	Y := call(t, py_Catalog_Get, catObj, py.String("quad")).(pyMesh)
	if Y.NumVerts() != 4 || Y.NumFacets() != 1 {
		t.Fatalf("Get gave %v", Y.String())
	}
	if _, err := py_Catalog_Get(catObj, py.Tuple{py.String("missing")}); err == nil {
		t.Fatal("expected missing mesh error")
	}
	if _, err := py_Workspace_OpenCatalog(ws, py.Tuple{py.String(""), py.Int(READ_ONLY)}); err == nil {
		t.Fatal("expected read-only in-memory catalog to be refused")
	}
}

func TestOBJFiles(t *testing.T) {
	X := quadMesh(t)
	pathname := filepath.Join(t.TempDir(), "quad.obj")
	call(t, py_Mesh_ExportOBJ, X, py.String(pathname))
	if _, err := os.Stat(pathname); err != nil {
		t.Fatal(err)
	}

	Y := call(t, py_NewMesh, nil).(pyMesh)
	facets := call(t, py_Mesh_ImportOBJ, Y, py.String(pathname))
	if facets != py.Int(1) || Y.NumVerts() != 4 {
		t.Fatalf("ImportOBJ gave %v facets, %d verts", facets, Y.NumVerts())
	}
	if _, err := py_Mesh_ImportOBJ(Y, py.Tuple{py.String(pathname + ".missing")}); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestTransform(t *testing.T) {
	X := quadMesh(t)

	if _, err := py_Mesh_Scale(X, py.Tuple{py.Float(2)}); err == nil {
		t.Fatal("Scale with nothing selected should fail")
	}

	call(t, py_Mesh_Select, X, py.Int(gomesh.KindFacet), py.Int(0))
	call(t, py_Mesh_Translate, X, py.Int(0), py.Int(0), py.Float(1))
	for _, v := range X.Vertices() {
		if v.Position()[2] != 1 {
			t.Fatalf("vertex %d not translated: %v", v.Index(), v.Position())
		}
	}

	// about the center (0.5, 0.5, 1)
	call(t, py_Mesh_Scale, X, py.Float(2))
	if p := X.Vertex(0).Position(); p != (vec3.T{-0.5, -0.5, 1}) {
		t.Fatalf("scaled vertex 0 at %v", p)
	}

	call(t, py_Mesh_SetPosition, X, py.Int(1), py.Int(5), py.Int(5), py.Float(5))
	if p := X.Vertex(1).Position(); p != (vec3.T{5, 5, 5}) {
		t.Fatalf("SetPosition left vertex 1 at %v", p)
	}
	if _, err := py_Mesh_SetPosition(X, py.Tuple{py.Int(7), py.Int(0), py.Int(0), py.Int(0)}); err == nil {
		t.Fatal("expected stale vertex error")
	}
}

func TestEditorExtrudeLift(t *testing.T) {
	ed := pyEditor{editor.NewEditor(nil)}
	call(t, py_Editor_Invoke, ed, py.String("Cube"))
	call(t, py_Editor_Click, ed, py.Int(gomesh.KindFacet), py.Int(0))
	call(t, py_Editor_Invoke, ed, py.String("Extrude"))

	X := ed.Model
	before, ok := X.SelectionCenter()
	if !ok {
		t.Fatal("extruded cap should be selected")
	}
	call(t, py_Editor_Translate, ed, py.Int(0), py.Int(0), py.Int(1))
	after, _ := X.SelectionCenter()
	if after[2]-before[2] != 1 || after[0] != before[0] || after[1] != before[1] {
		t.Fatalf("cap center moved from %v to %v", before, after)
	}

	// the walls now have height: no vertex of the cap sits on an original vertex
	for _, f := range X.SelectedFacets() {
		for _, v := range f.Vertices() {
			for _, u := range X.Vertices() {
				if u != v && u.Position() == v.Position() {
					t.Fatalf("cap vertex %d still coincides with vertex %d", v.Index(), u.Index())
				}
			}
		}
	}

	call(t, py_Editor_Scale, ed, py.Float(0.5))
	X.DeselectAll()
	if _, err := py_Editor_Scale(ed, py.Tuple{py.Float(0.5)}); err == nil {
		t.Fatal("Scale with nothing selected should fail")
	}
}

func TestCatalogClosed(t *testing.T) {
	ws := &Workspace{}
	defer ws.Close()

	catObj := call(t, py_Workspace_OpenCatalog, ws, py.String(""))
	call(t, py_Catalog_Close, catObj)
	if _, err := py_Catalog_Names(catObj, nil); err == nil {
		t.Fatal("Names on a closed catalog should raise")
	}
	if _, err := py_Catalog_Put(catObj, py.Tuple{py.String("quad"), quadMesh(t)}); err == nil {
		t.Fatal("Put on a closed catalog should raise")
	}
}
