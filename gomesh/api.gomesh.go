package gomesh

// ObjectKind identifies which entity collection an index refers to.
//
// The numeric values are what the object-map render target stores per pixel, so they must not change.
type ObjectKind int32

const (
	KindNone   ObjectKind = 0
	KindFacet  ObjectKind = 1
	KindEdge   ObjectKind = 2
	KindVertex ObjectKind = 3
)

func (k ObjectKind) String() string {
	switch k {
	case KindFacet:
		return "facet"
	case KindEdge:
		return "edge"
	case KindVertex:
		return "vertex"
	}
	return "none"
}

// Record strides (in float32 units) of the buffers produced for the renderer.
const (
	VertexStride = 5 // x, y, z, vertex index, selected
	EdgeStride   = 6 // x, y, z, edge index, edge selected, endpoint selected
	FacetStride  = 5 // x, y, z, facet index, selected
)

// PrintOpts specifies what is printed when printing a mesh graph
type PrintOpts struct {
	Label     string // Prefix label
	Facets    bool   // If set, prints each facet's vertex cycle
	Edges     bool   // If set, prints each edge with its facet slots
	Selection bool   // If set, prints the selected entity indices
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Facets: true,
}

// CatalogOpts specifies params for opening a mesh Catalog
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

// Catalog is a named store of mesh encodings.
type Catalog interface {

	// Put stores (or replaces) the given mesh encoding under the given name.
	Put(name string, def *MeshDef) error

	// Get returns the mesh encoding stored under the given name or ErrNotFound.
	Get(name string) (*MeshDef, error)

	// Delete removes the named entry.  Deleting an absent name is not an error.
	Delete(name string) error

	// Names returns all stored names in ascending order.
	Names() ([]string, error)

	// NumMeshes returns the number of stored entries.
	NumMeshes() int

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	Close() error
}
