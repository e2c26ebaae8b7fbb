// Package editor holds an interactive editing session: the model graph, its GPU buffers and the table of
// editor functions that operate on the current selection.
package editor

import (
	"io"

	"github.com/fine-structures/cubemesh/config"
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/fine-structures/cubemesh/libmesh/catalog"
	"github.com/fine-structures/cubemesh/libmesh/wavefront"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/ungerik/go3d/float64/vec3"
)

// Editor is a single editing session.  Buffers are regenerated after every Invoke and Click.
type Editor struct {
	Model    *libmesh.Graph
	Buffers  libmesh.Buffers
	ViewHint vec3.T // direction newly connected triangles face
	Atomic   bool   // if set, a failed Invoke restores the model as it was before the call

	shapes config.EditorConfig
}

// NewEditor returns an editor with an empty model configured by cfg (or defaults if cfg is nil).
func NewEditor(cfg *config.Config) *Editor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ed := &Editor{
		Model:    libmesh.NewGraph(),
		ViewHint: cfg.ViewHint(),
		Atomic:   cfg.Editor.Atomic,
		shapes:   cfg.Editor,
	}
	ed.UpdateAll()
	return ed
}

// UpdateAll regenerates the GPU buffers from the model.
func (ed *Editor) UpdateAll() {
	ed.Buffers.UpdateAll(ed.Model)
}

// Invoke runs the named editor function on the model.
func (ed *Editor) Invoke(name string) error {
	fn, err := LookupFunc(name)
	if err != nil {
		return err
	}

	var snapshot *libmesh.Graph
	if ed.Atomic {
		snapshot = ed.Model.Clone()
	}

	err = fn.Run(ed)
	if err != nil {
		klog.Errorf("editor: %s/%s failed: %v", fn.Group, fn.Name, err)
		if snapshot != nil {
			ed.Model = snapshot
		}
	} else {
		klog.V(2).Infof("editor: %s/%s: v=%d,e=%d,f=%d", fn.Group, fn.Name, ed.Model.NumVerts(), ed.Model.NumEdges(), ed.Model.NumFacets())
	}

	ed.UpdateAll()
	return err
}

// Click applies a pick from the render target to the selection.
//
// A vertex click selects the vertex, an edge click selects the edge and its endpoints, and a facet click
// selects the facet with its edges and vertices.  Unless additive, the selection is cleared first (so
// clicking on nothing deselects all).  Returns the picked entity, if any.
func (ed *Editor) Click(px [2]float32, additive bool) libmesh.Entity {
	X := ed.Model
	if !additive {
		X.DeselectAll()
	}

	ent := X.Pick(px)
	switch ent := ent.(type) {
	case *libmesh.Vertex:
		X.Select(ent, true)
	case *libmesh.Edge:
		X.SelectEdgeAdjacency(ent)
	case *libmesh.Facet:
		X.SelectFacetAdjacency(ent)
	}

	ed.UpdateAll()
	return ent
}

// Translate moves the selection by delta.
func (ed *Editor) Translate(delta vec3.T) {
	ed.Model.TranslateSelected(delta)
	ed.UpdateAll()
}

// Scale scales the selection about its center.
func (ed *Editor) Scale(factor float64) error {
	center, ok := ed.Model.SelectionCenter()
	if !ok {
		return errors.Wrap(gomesh.ErrInvalidArgument, "nothing selected to scale")
	}
	ed.Model.ScaleSelected(center, factor)
	ed.UpdateAll()
	return nil
}

// ImportOBJ adds the vertices and faces read from r onto the model.
func (ed *Editor) ImportOBJ(r io.Reader) error {
	stats, err := wavefront.Import(r, ed.Model)
	ed.UpdateAll()
	if err != nil {
		return err
	}
	klog.V(2).Infof("editor: imported %d verts, %d facets", stats.Verts, stats.Facets)
	return nil
}

func (ed *Editor) ExportOBJ(w io.Writer) error {
	return wavefront.Export(w, ed.Model)
}

// Store saves the model into cat under the given name.
func (ed *Editor) Store(cat gomesh.Catalog, name string) error {
	return catalog.PutGraph(cat, name, ed.Model)
}

// Load replaces the model with the named mesh from cat.
func (ed *Editor) Load(cat gomesh.Catalog, name string) error {
	X, err := catalog.GetGraph(cat, name)
	if err != nil {
		return errors.Wrapf(err, "load %q", name)
	}
	ed.Model = X
	ed.UpdateAll()
	return nil
}
