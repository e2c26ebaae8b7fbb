package libmesh

import (
	"github.com/fine-structures/cubemesh/gomesh"
)

// EncodePick returns the two render target channels identifying an entity: index+1 (so that 0 means nothing) and kind.
func EncodePick(kind gomesh.ObjectKind, idx int) [2]float32 {
	return [2]float32{float32(idx + 1), float32(kind)}
}

// DecodePick is the inverse of EncodePick; returns gomesh.KindNone for an empty pixel.
func DecodePick(px [2]float32) (kind gomesh.ObjectKind, idx int) {
	idx = int(px[0]) - 1
	kind = gomesh.ObjectKind(px[1])
	if idx < 0 || kind <= gomesh.KindNone || kind > gomesh.KindVertex {
		return gomesh.KindNone, -1
	}
	return kind, idx
}

// Pick resolves a decoded render target pixel to an entity of this graph; nil if the pixel is empty or stale.
func (X *Graph) Pick(px [2]float32) Entity {
	kind, idx := DecodePick(px)
	if kind == gomesh.KindNone {
		return nil
	}
	ent, err := X.Lookup(kind, idx)
	if err != nil {
		return nil
	}
	return ent
}
