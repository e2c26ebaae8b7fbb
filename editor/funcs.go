package editor

import (
	"github.com/fine-structures/cubemesh/gomesh"
	"github.com/fine-structures/cubemesh/libmesh"
	"github.com/pkg/errors"
	"github.com/ungerik/go3d/float64/vec3"
)

// Func is an editor function operating on an Editor's model and selection.
type Func struct {
	Group string
	Name  string
	Run   func(ed *Editor) error
}

// Funcs is the table of editor functions, in presentation order.
var Funcs = []Func{
	{"Edit", "Delete Vertices", func(ed *Editor) error {
		ed.Model.DeleteSelectedVertices()
		return nil
	}},
	{"Edit", "Delete Edges", func(ed *Editor) error {
		ed.Model.DeleteSelectedEdges()
		return nil
	}},
	{"Edit", "Delete Facets", func(ed *Editor) error {
		ed.Model.DeleteSelectedFacets()
		return nil
	}},
	{"Edit", "Connect", func(ed *Editor) error {
		_, err := ed.Model.Connect(ed.ViewHint)
		return err
	}},
	{"Edit", "Split Edges", func(ed *Editor) error {
		_, err := ed.Model.SplitSelectedEdges()
		return err
	}},
	{"Edit", "Join", func(ed *Editor) error {
		_, err := ed.Model.Join(ed.Model.SelectedFacets())
		return err
	}},
	{"Edit", "Extrude", func(ed *Editor) error {
		_, err := ed.Model.Extrude(ed.Model.SelectedFacets())
		return err
	}},

	{"Selection", "Select All", func(ed *Editor) error {
		ed.Model.SelectAll()
		return nil
	}},
	{"Selection", "Select Neighbours", func(ed *Editor) error {
		ed.Model.SelectNeighbours()
		return nil
	}},
	{"Selection", "Deselect All", func(ed *Editor) error {
		ed.Model.DeselectAll()
		return nil
	}},

	{"Create", "Vertex", func(ed *Editor) error {
		ed.Model.DeselectAll()
		ed.Model.Select(ed.Model.AddVertex(vec3.T{}), true)
		return nil
	}},
	{"Create", "Plane", func(ed *Editor) error {
		s := ed.shapes.Plane
		return ed.create(libmesh.PlaneFactory{Size: s.Size, USubdivision: s.USubdivision, VSubdivision: s.VSubdivision})
	}},
	{"Create", "Cube", func(ed *Editor) error {
		s := ed.shapes.Box
		return ed.create(libmesh.BoxFactory{Length: s.Length, Width: s.Width, Height: s.Height})
	}},
	{"Create", "Sphere", func(ed *Editor) error {
		s := ed.shapes.Sphere
		return ed.create(libmesh.UVSphereFactory{Radius: s.Radius, USubdivision: s.USubdivision, VSubdivision: s.VSubdivision})
	}},
	{"Create", "Cylinder", func(ed *Editor) error {
		s := ed.shapes.Cylinder
		return ed.create(libmesh.CylinderFactory{Height: s.Height, Radius: s.Radius, Subdivision: s.Subdivision})
	}},
	{"Create", "Arrow", func(ed *Editor) error {
		s := ed.shapes.Arrow
		return ed.create(libmesh.ArrowFactory{Length: s.Length, HeadSize: s.HeadSize})
	}},
}

// create adds a shape to the model as the new selection.
func (ed *Editor) create(fac libmesh.MeshFactory) error {
	ed.Model.DeselectAll()
	return fac.AddTo(ed.Model, true)
}

// LookupFunc returns the editor function with the given name.
func LookupFunc(name string) (*Func, error) {
	for i := range Funcs {
		if Funcs[i].Name == name {
			return &Funcs[i], nil
		}
	}
	return nil, errors.Wrapf(gomesh.ErrUnknownFunc, "%q", name)
}

// FuncNames returns the names of the given group's functions (all functions if group is empty).
func FuncNames(group string) []string {
	var names []string
	for _, fn := range Funcs {
		if group == "" || fn.Group == group {
			names = append(names, fn.Name)
		}
	}
	return names
}
