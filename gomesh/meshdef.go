package gomesh

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

// MeshDef is the serialized form of a mesh graph.
//
// Edges are listed as (V1, V2) index pairs in edge index order and facets in facet index order,
// so decoding by replaying AddVertex / AddEdge / AddFacet yields a graph with identical indices.
type MeshDef struct {
	Positions  []float64 `protobuf:"fixed64,1,rep,packed,name=Positions,proto3" json:"Positions,omitempty"`
	EdgeVerts  []uint32  `protobuf:"varint,2,rep,packed,name=EdgeVerts,proto3" json:"EdgeVerts,omitempty"`
	FacetSizes []uint32  `protobuf:"varint,3,rep,packed,name=FacetSizes,proto3" json:"FacetSizes,omitempty"`
	FacetVerts []uint32  `protobuf:"varint,4,rep,packed,name=FacetVerts,proto3" json:"FacetVerts,omitempty"`
	SelVerts   []uint32  `protobuf:"varint,5,rep,packed,name=SelVerts,proto3" json:"SelVerts,omitempty"`
	SelEdges   []uint32  `protobuf:"varint,6,rep,packed,name=SelEdges,proto3" json:"SelEdges,omitempty"`
	SelFacets  []uint32  `protobuf:"varint,7,rep,packed,name=SelFacets,proto3" json:"SelFacets,omitempty"`
	Label      string    `protobuf:"bytes,8,opt,name=Label,proto3" json:"Label,omitempty"`
}

func (m *MeshDef) Reset()         { *m = MeshDef{} }
func (m *MeshDef) String() string { return proto.CompactTextString(m) }
func (*MeshDef) ProtoMessage()    {}

// Encode returns the protobuf wire encoding of this MeshDef.
func (m *MeshDef) Encode() ([]byte, error) {
	return proto.Marshal(m)
}

// Decode resets this MeshDef and reads the given protobuf wire encoding into it.
func (m *MeshDef) Decode(buf []byte) error {
	if err := proto.Unmarshal(buf, m); err != nil {
		return errors.Wrap(ErrUnmarshal, err.Error())
	}
	if len(m.Positions)%3 != 0 || len(m.EdgeVerts)%2 != 0 {
		return errors.Wrap(ErrUnmarshal, "truncated MeshDef arrays")
	}
	return nil
}

// NumVerts returns the number of vertices encoded.
func (m *MeshDef) NumVerts() int {
	return len(m.Positions) / 3
}

// CatalogState is the header record of a mesh catalog.
type CatalogState struct {
	MajorVers int32  `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers int32  `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	NumMeshes uint64 `protobuf:"varint,3,opt,name=NumMeshes,proto3" json:"NumMeshes,omitempty"`
}

func (m *CatalogState) Reset()         { *m = CatalogState{} }
func (m *CatalogState) String() string { return proto.CompactTextString(m) }
func (*CatalogState) ProtoMessage()    {}
