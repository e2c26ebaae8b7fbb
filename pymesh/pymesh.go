// Package pymesh registers the gpython module "_pymesh", exposing mesh graphs, the editor session and
// mesh catalogs to python scripts.
package pymesh

import (
	"os"
	"strings"

	"github.com/fine-structures/cubemesh/config"
	"github.com/fine-structures/cubemesh/editor"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/fine-structures/cubemesh/libmesh/catalog"
	"github.com/go-python/gpython/py"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	LIB_VERSION = "v1.2024.1"

	// SessionConfig configures the shared editor returned by Editor().  Nil means defaults.
	SessionConfig *config.Config
)

var (
	pyMeshType      = py.NewType("Mesh", "a polygon mesh connectivity graph")
	pyEditorType    = py.NewType("Editor", "an editing session: model mesh, selection and editor functions")
	pyCatalogType   = py.NewType("Catalog", "a named store of meshes")
	pyWorkspaceType = py.NewType("Workspace", "collects active session resources and catalogs")
)

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
	kEditorAttr    = "_Editor"
)

// pyErr maps a mesh error onto the closest python exception.
func pyErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gomesh.ErrStaleReference):
		return py.ExceptionNewf(py.IndexError, "%v", err)
	case errors.Is(err, gomesh.ErrNotFound), errors.Is(err, gomesh.ErrUnknownFunc):
		return py.ExceptionNewf(py.KeyError, "%v", err)
	case errors.Is(err, gomesh.ErrReadOnly):
		return py.ExceptionNewf(py.PermissionError, "%v", err)
	case errors.Is(err, gomesh.ErrInvalidArgument),
		errors.Is(err, gomesh.ErrSlotOccupied),
		errors.Is(err, gomesh.ErrAmbiguousBoundary),
		errors.Is(err, gomesh.ErrBadCatalogParam):
		return py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.ExceptionNewf(py.RuntimeError, "%v", err)
}

func argInt(args py.Tuple, i int) (int, error) {
	if i >= len(args) {
		return 0, py.ExceptionNewf(py.TypeError, "missing argument %d", i+1)
	}
	val, err := py.GetInt(args[i])
	if err != nil {
		return 0, err
	}
	return int(val), nil
}

func argFloat(args py.Tuple, i int) (float64, error) {
	if i >= len(args) {
		return 0, py.ExceptionNewf(py.TypeError, "missing argument %d", i+1)
	}
	switch v := args[i].(type) {
	case py.Float:
		return float64(v), nil
	case py.Int:
		return float64(v), nil
	}
	return 0, py.ExceptionNewf(py.TypeError, "argument %d: expected a number (got %v)", i+1, args[i].Type().Name)
}

func argString(args py.Tuple, i int) (string, error) {
	if i >= len(args) {
		return "", py.ExceptionNewf(py.TypeError, "missing argument %d", i+1)
	}
	str, ok := args[i].(py.String)
	if !ok {
		return "", py.ExceptionNewf(py.TypeError, "argument %d: expected str (got %v)", i+1, args[i].Type().Name)
	}
	return string(str), nil
}

func argVec3(args py.Tuple, start int) (pos vec3.T, err error) {
	for j := 0; j < 3; j++ {
		if pos[j], err = argFloat(args, start+j); err != nil {
			return
		}
	}
	return
}

func argFlag(args py.Tuple, i int) bool {
	if i >= len(args) {
		return false
	}
	switch v := args[i].(type) {
	case py.Bool:
		return bool(v)
	case py.Int:
		return v != 0
	}
	return false
}

/////////////////////////////////
// Mesh

type pyMesh struct {
	*libmesh.Graph
}

func (X pyMesh) Type() *py.Type {
	return pyMeshType
}

func (X pyMesh) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	X.WriteAsString(&writer, gomesh.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (X pyMesh) M__repr__() (py.Object, error) {
	return X.M__str__()
}

func getMeshFromObj(obj py.Object) (X pyMesh, err error) {
	X, ok := obj.(pyMesh)
	if !ok {
		err = py.ExceptionNewf(py.TypeError, "expected Mesh object (got %v)", obj.Type().Name)
	}
	return
}

func (X pyMesh) lookup(kind gomesh.ObjectKind, args py.Tuple, i int) (libmesh.Entity, error) {
	idx, err := argInt(args, i)
	if err != nil {
		return nil, err
	}
	ent, err := X.Lookup(kind, idx)
	return ent, pyErr(err)
}

func (X pyMesh) vertexArgs(args py.Tuple) ([]*libmesh.Vertex, error) {
	if len(args) == 1 {
		if list, ok := args[0].(py.Tuple); ok {
			args = list
		}
	}
	vs := make([]*libmesh.Vertex, len(args))
	for i := range args {
		ent, err := X.lookup(gomesh.KindVertex, args, i)
		if err != nil {
			return nil, err
		}
		vs[i] = ent.(*libmesh.Vertex)
	}
	return vs, nil
}

func py_NewMesh(module py.Object, args py.Tuple) (py.Object, error) {
	return py.Object(pyMesh{libmesh.NewGraph()}), nil
}

// Args: x, y, z.  Returns the new vertex index.
func py_Mesh_AddVertex(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	pos, err := argVec3(args, 0)
	if err != nil {
		return nil, err
	}
	v := X.AddVertex(pos)
	return py.Int(v.Index()), nil
}

// Args: vertex indices (or a single tuple of them) in facet order.  Returns the new facet index.
func py_Mesh_AddFacet(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	vs, err := X.vertexArgs(args)
	if err != nil {
		return nil, err
	}
	f, err := X.AddFacet(vs...)
	if err != nil {
		return nil, pyErr(err)
	}
	return py.Int(f.Index()), nil
}

// Args: v1, v2 [, checkFacet].  Returns the edge index.
func py_Mesh_AddEdge(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	if len(args) < 2 {
		return nil, py.ExceptionNewf(py.TypeError, "AddEdge takes two vertex indices")
	}
	vs, err := X.vertexArgs(args[:2])
	if err != nil {
		return nil, err
	}
	e, err := X.AddEdge(vs[0], vs[1], argFlag(args, 2))
	if err != nil {
		return nil, pyErr(err)
	}
	return py.Int(e.Index()), nil
}

func py_Mesh_RemoveVertex(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	ent, err := X.lookup(gomesh.KindVertex, args, 0)
	if err != nil {
		return nil, err
	}
	X.RemoveVertex(ent.(*libmesh.Vertex))
	return py.None, nil
}

func py_Mesh_RemoveEdge(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	ent, err := X.lookup(gomesh.KindEdge, args, 0)
	if err != nil {
		return nil, err
	}
	X.RemoveEdge(ent.(*libmesh.Edge))
	return py.None, nil
}

func py_Mesh_RemoveFacet(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	ent, err := X.lookup(gomesh.KindFacet, args, 0)
	if err != nil {
		return nil, err
	}
	X.RemoveFacet(ent.(*libmesh.Facet))
	return py.None, nil
}

// Returns (verts, edges, facets).
func py_Mesh_Counts(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	return py.Tuple{
		py.Int(X.NumVerts()),
		py.Int(X.NumEdges()),
		py.Int(X.NumFacets()),
	}, nil
}

// Args: kind (VERTEX, EDGE, FACET), index [, selected].  Returns True if the entity is now selected.
func py_Mesh_Select(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	kind, err := argInt(args, 0)
	if err != nil {
		return nil, err
	}
	ent, err := X.lookup(gomesh.ObjectKind(kind), args, 1)
	if err != nil {
		return nil, err
	}
	selected := true
	if len(args) > 2 {
		selected = argFlag(args, 2)
	}
	X.Select(ent, selected)
	if X.IsSelected(ent) {
		return py.True, nil
	}
	return py.False, nil
}

// Returns (vertex indices, edge indices, facet indices) of the selection.
func py_Mesh_Selection(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	verts := X.SelectedVertices()
	edges := X.SelectedEdges()
	facets := X.SelectedFacets()

	sel := py.Tuple{
		make(py.Tuple, len(verts)),
		make(py.Tuple, len(edges)),
		make(py.Tuple, len(facets)),
	}
	for i, v := range verts {
		sel[0].(py.Tuple)[i] = py.Int(v.Index())
	}
	for i, e := range edges {
		sel[1].(py.Tuple)[i] = py.Int(e.Index())
	}
	for i, f := range facets {
		sel[2].(py.Tuple)[i] = py.Int(f.Index())
	}
	return sel, nil
}

// Args: index, x, y, z.
func py_Mesh_SetPosition(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	ent, err := X.lookup(gomesh.KindVertex, args, 0)
	if err != nil {
		return nil, err
	}
	pos, err := argVec3(args, 1)
	if err != nil {
		return nil, err
	}
	X.SetPosition(ent.(*libmesh.Vertex), pos)
	return py.None, nil
}

// Args: dx, dy, dz.  Moves the selection.
func py_Mesh_Translate(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	delta, err := argVec3(args, 0)
	if err != nil {
		return nil, err
	}
	X.TranslateSelected(delta)
	return py.None, nil
}

// Args: factor.  Scales the selection about its center.
func py_Mesh_Scale(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	factor, err := argFloat(args, 0)
	if err != nil {
		return nil, err
	}
	center, ok := X.SelectionCenter()
	if !ok {
		return nil, py.ExceptionNewf(py.ValueError, "nothing selected to scale")
	}
	X.ScaleSelected(center, factor)
	return py.None, nil
}

func py_Mesh_Clone(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	return pyMesh{X.Clone()}, nil
}

// Args: pathname of a Wavefront OBJ file to add onto this mesh.
func py_Mesh_ImportOBJ(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	pathname, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	stats, err := importOBJ(pathname, X.Graph)
	if err != nil {
		return nil, err
	}
	return py.Int(stats.Facets), nil
}

// Args: pathname to write a Wavefront OBJ file to.
func py_Mesh_ExportOBJ(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	pathname, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return py.None, exportOBJ(pathname, X.Graph)
}

// Args: [label [, edges [, selection]]].  Prints to stdout.
func py_Mesh_Print(self py.Object, args py.Tuple) (py.Object, error) {
	X := self.(pyMesh)
	opts := gomesh.DefaultPrintOpts
	if len(args) > 0 {
		label, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		opts.Label = label
	}
	opts.Edges = argFlag(args, 1)
	opts.Selection = argFlag(args, 2)
	X.WriteAsString(os.Stdout, opts)
	return py.None, nil
}

/////////////////////////////////
// Editor

type pyEditor struct {
	*editor.Editor
}

func (ed pyEditor) Type() *py.Type {
	return pyEditorType
}

func py_GetEditor(module py.Object, args py.Tuple) (py.Object, error) {
	edObj, _ := py.GetAttrString(module, kEditorAttr)
	if edObj == nil {
		edObj = pyEditor{editor.NewEditor(SessionConfig)}
		py.SetAttrString(module, kEditorAttr, edObj)
	}
	return edObj, nil
}

// Args: [group].  Returns the names of the registered editor functions.
func py_Funcs(module py.Object, args py.Tuple) (py.Object, error) {
	group := ""
	if len(args) > 0 {
		var err error
		if group, err = argString(args, 0); err != nil {
			return nil, err
		}
	}
	names := editor.FuncNames(group)
	out := make(py.Tuple, len(names))
	for i, name := range names {
		out[i] = py.String(name)
	}
	return out, nil
}

func py_Editor_Invoke(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	name, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(ed.Invoke(name))
}

// Args: dx, dy, dz.
func py_Editor_Translate(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	delta, err := argVec3(args, 0)
	if err != nil {
		return nil, err
	}
	ed.Translate(delta)
	return py.None, nil
}

// Args: factor.
func py_Editor_Scale(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	factor, err := argFloat(args, 0)
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(ed.Scale(factor))
}

// Returns the editor's model.  The model object changes when Load or an atomic Invoke replaces it.
func py_Editor_Mesh(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	return pyMesh{ed.Model}, nil
}

// Args: kind, index [, additive].  Returns the picked (kind, index) or None.
func py_Editor_Click(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	kind, err := argInt(args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := argInt(args, 1)
	if err != nil {
		return nil, err
	}
	ent := ed.Click(libmesh.EncodePick(gomesh.ObjectKind(kind), idx), argFlag(args, 2))
	if ent == nil {
		return py.None, nil
	}
	return py.Tuple{py.Int(ent.Kind()), py.Int(ent.Index())}, nil
}

// Args: catalog, name.
func py_Editor_Store(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	cat, name, err := catalogArgs(args)
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(ed.Store(cat, name))
}

// Args: catalog, name.
func py_Editor_Load(self py.Object, args py.Tuple) (py.Object, error) {
	ed := self.(pyEditor)
	cat, name, err := catalogArgs(args)
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(ed.Load(cat, name))
}

func catalogArgs(args py.Tuple) (gomesh.Catalog, string, error) {
	if len(args) < 2 {
		return nil, "", py.ExceptionNewf(py.TypeError, "expected (Catalog, name)")
	}
	cat, ok := args[0].(pyCatalog)
	if !ok || cat.Catalog == nil {
		return nil, "", py.ExceptionNewf(py.TypeError, "expected Catalog object (got %v)", args[0].Type().Name)
	}
	name, err := argString(args, 1)
	return cat.Catalog, name, err
}

/////////////////////////////////
// Workspace

type Workspace struct {
	catalogs []gomesh.Catalog
}

func (ws *Workspace) Close() {
	for _, cat := range ws.catalogs {
		cat.Close()
	}
	ws.catalogs = nil
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		wsObj = &Workspace{}
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

// Args: [pathname (empty for in-memory) [, flags]].  With no args, the configured catalog is opened.
func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var opts gomesh.CatalogOpts
	if len(args) == 0 {
		if SessionConfig != nil {
			opts.DbPathName = SessionConfig.Catalog.Path
			opts.ReadOnly = SessionConfig.Catalog.ReadOnly
		}
	} else {
		pathname, err := argString(args, 0)
		if err != nil {
			return nil, err
		}
		flags := 0
		if len(args) > 1 {
			if flags, err = argInt(args, 1); err != nil {
				return nil, err
			}
		}
		opts.DbPathName = pathname
		opts.ReadOnly = (flags & READ_ONLY) != 0
	}

	cat, err := catalog.OpenCatalog(opts)
	if err != nil {
		return nil, pyErr(err)
	}
	ws.catalogs = append(ws.catalogs, cat)
	return pyCatalog{cat}, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	pathname, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(pathname); os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

/////////////////////////////////
// Catalog

type pyCatalog struct {
	gomesh.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

// Args: name, Mesh.
func py_Catalog_Put(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	name, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) < 2 {
		return nil, py.ExceptionNewf(py.TypeError, "Put takes (name, Mesh)")
	}
	X, err := getMeshFromObj(args[1])
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(catalog.PutGraph(cat, name, X.Graph))
}

// Args: name.  Returns a new Mesh.
func py_Catalog_Get(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	name, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	X, err := catalog.GetGraph(cat, name)
	if err != nil {
		return nil, pyErr(err)
	}
	return pyMesh{X}, nil
}

func py_Catalog_Delete(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	name, err := argString(args, 0)
	if err != nil {
		return nil, err
	}
	return py.None, pyErr(cat.Delete(name))
}

func py_Catalog_Names(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	names, err := cat.Names()
	if err != nil {
		return nil, pyErr(err)
	}
	out := make(py.Tuple, len(names))
	for i, name := range names {
		out[i] = py.String(name)
	}
	return out, nil
}

func py_Catalog_NumMeshes(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	return py.Int(cat.NumMeshes()), nil
}

// Closing is idempotent; the workspace closes every catalog again when the context closes.
func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Close()
	}
	return py.None, nil
}

func init() {

	/////////////////////////////////
	// Mesh
	{
		pyMeshType.Dict["AddVertex"] = py.MustNewMethod("AddVertex", py_Mesh_AddVertex, 0, "adds a vertex at (x, y, z) and returns its index")
		pyMeshType.Dict["AddFacet"] = py.MustNewMethod("AddFacet", py_Mesh_AddFacet, 0, "adds a facet over the given vertex cycle and returns its index")
		pyMeshType.Dict["AddEdge"] = py.MustNewMethod("AddEdge", py_Mesh_AddEdge, 0, "")
		pyMeshType.Dict["RemoveVertex"] = py.MustNewMethod("RemoveVertex", py_Mesh_RemoveVertex, 0, "")
		pyMeshType.Dict["RemoveEdge"] = py.MustNewMethod("RemoveEdge", py_Mesh_RemoveEdge, 0, "")
		pyMeshType.Dict["RemoveFacet"] = py.MustNewMethod("RemoveFacet", py_Mesh_RemoveFacet, 0, "")
		pyMeshType.Dict["Counts"] = py.MustNewMethod("Counts", py_Mesh_Counts, 0, "returns (verts, edges, facets)")
		pyMeshType.Dict["Select"] = py.MustNewMethod("Select", py_Mesh_Select, 0, "")
		pyMeshType.Dict["Selection"] = py.MustNewMethod("Selection", py_Mesh_Selection, 0, "")
		pyMeshType.Dict["SetPosition"] = py.MustNewMethod("SetPosition", py_Mesh_SetPosition, 0, "")
		pyMeshType.Dict["Translate"] = py.MustNewMethod("Translate", py_Mesh_Translate, 0, "moves the selection by (dx, dy, dz)")
		pyMeshType.Dict["Scale"] = py.MustNewMethod("Scale", py_Mesh_Scale, 0, "scales the selection about its center")
		pyMeshType.Dict["Clone"] = py.MustNewMethod("Clone", py_Mesh_Clone, 0, "")
		pyMeshType.Dict["ImportOBJ"] = py.MustNewMethod("ImportOBJ", py_Mesh_ImportOBJ, 0, "")
		pyMeshType.Dict["ExportOBJ"] = py.MustNewMethod("ExportOBJ", py_Mesh_ExportOBJ, 0, "")
		pyMeshType.Dict["Print"] = py.MustNewMethod("Print", py_Mesh_Print, 0, "")
	}

	/////////////////////////////////
	// Editor
	{
		pyEditorType.Dict["Invoke"] = py.MustNewMethod("Invoke", py_Editor_Invoke, 0, "runs the named editor function on the current selection")
		pyEditorType.Dict["Translate"] = py.MustNewMethod("Translate", py_Editor_Translate, 0, "")
		pyEditorType.Dict["Scale"] = py.MustNewMethod("Scale", py_Editor_Scale, 0, "")
		pyEditorType.Dict["Mesh"] = py.MustNewMethod("Mesh", py_Editor_Mesh, 0, "")
		pyEditorType.Dict["Click"] = py.MustNewMethod("Click", py_Editor_Click, 0, "")
		pyEditorType.Dict["Store"] = py.MustNewMethod("Store", py_Editor_Store, 0, "")
		pyEditorType.Dict["Load"] = py.MustNewMethod("Load", py_Editor_Load, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Put"] = py.MustNewMethod("Put", py_Catalog_Put, 0, "")
		pyCatalogType.Dict["Get"] = py.MustNewMethod("Get", py_Catalog_Get, 0, "")
		pyCatalogType.Dict["Delete"] = py.MustNewMethod("Delete", py_Catalog_Delete, 0, "")
		pyCatalogType.Dict["Names"] = py.MustNewMethod("Names", py_Catalog_Names, 0, "")
		pyCatalogType.Dict["NumMeshes"] = py.MustNewMethod("NumMeshes", py_Catalog_NumMeshes, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("NewMesh", py_NewMesh, 0, ""),
			py.MustNewMethod("Editor", py_GetEditor, 0, "returns the shared editor session"),
			py.MustNewMethod("Funcs", py_Funcs, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"READ_ONLY":   py.Int(READ_ONLY),
			"FACET":       py.Int(gomesh.KindFacet),
			"EDGE":        py.Int(gomesh.KindEdge),
			"VERTEX":      py.Int(gomesh.KindVertex),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pymesh",
				Doc:  "cubemesh polygon mesh gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})
	}
}
