package wavefront

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// objFile is the subset of a Wavefront OBJ file that carries mesh topology.
type objFile struct {
	Statements []*objStatement `( @@ | EOL )*`
}

type objStatement struct {
	Vertex *objVertex `  "v" @@`
	Face   *objFace   `| "f" @@`
	Other  *objOther  `| @@`
}

// objVertex is "v x y z [w]"; anything after z (w, vertex colors) is ignored.
type objVertex struct {
	Coords []float64 `@Number @Number @Number @Number*`
}

type objFace struct {
	Pos   lexer.Position
	Verts []*objFaceVert `@@ @@ @@+`
}

// objFaceVert is "v", "v/vt", "v//vn" or "v/vt/vn"; only the vertex reference is used.
type objFaceVert struct {
	Vertex  int  `@Number`
	Texture *int `( Slash @Number?`
	Normal  *int `  ( Slash @Number )? )?`
}

// objOther is any statement not affecting topology (vt, vn, o, g, s, usemtl, mtllib, ...).
type objOther struct {
	Keyword string   `@Ident`
	Args    []string `( @Number | @Ident | @Slash | @Punct )*`
}

var objLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\-]*`},
	{Name: "Slash", Pattern: `/`},
	{Name: "EOL", Pattern: `[\r\n]+`},
	{Name: "whitespace", Pattern: `[ \t]+`},
	{Name: "Punct", Pattern: `[^\s]`},
})

var parseOBJ = participle.MustBuild[objFile](
	participle.Lexer(objLexer),
	participle.UseLookahead(2),
)
