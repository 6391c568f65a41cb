package wgsl

import (
	"strings"
)

// TextureDim is the dimensionality segment of a texture type name.
type TextureDim string

const (
	Dim1D   TextureDim = "1d"
	Dim2D   TextureDim = "2d"
	Dim3D   TextureDim = "3d"
	DimCube TextureDim = "cube"
)

// segmentExternal takes the place of the dimensionality segment for
// external textures.
const segmentExternal = "external"

var textureDims = []TextureDim{Dim1D, Dim2D, Dim3D, DimCube}

// TextureName is the decomposed form of a texture type name such as
// texture_depth_multisampled_2d or texture_storage_2d_array.
//
// Segments always appear in the order
// depth, storage, multisampled, dimensionality (or external), array.
// An external texture is two-dimensional; its Dim is normalized to Dim2D.
type TextureName struct {
	Depth        bool
	Storage      bool
	Multisampled bool
	External     bool
	Array        bool
	Dim          TextureDim
}

// String renders the canonical texture type name.
func (t TextureName) String() string {
	var sb strings.Builder
	sb.WriteString(PrefixTexture)
	if t.Depth {
		sb.WriteString("_depth")
	}
	if t.Storage {
		sb.WriteString("_storage")
	}
	if t.Multisampled {
		sb.WriteString("_multisampled")
	}
	sb.WriteByte('_')
	if t.External {
		sb.WriteString(segmentExternal)
	} else {
		sb.WriteString(string(t.Dim))
	}
	if t.Array {
		sb.WriteString("_array")
	}
	return sb.String()
}

// ParseTextureName parses one identifier at the cursor and decodes it as a
// texture name. The cursor is left unchanged on failure.
func ParseTextureName(c *Cursor) (TextureName, error) {
	start := c.Offset()
	id, err := ParseIdent(c)
	if err != nil {
		return TextureName{}, InRule(RuleTextureName, err)
	}
	t, ok := decodeTextureName(id.String())
	if !ok {
		c.Seek(start)
		return TextureName{}, InRule(RuleTextureName, c.Errorf("%q is not a texture type name", id.String()))
	}
	return t, nil
}

// DecodeTextureName decodes a complete identifier as a texture name.
func DecodeTextureName(name string) (TextureName, error) {
	t, ok := decodeTextureName(name)
	if !ok {
		return TextureName{}, InRule(RuleTextureName, NewGrammarErrorf(0, name, "%q is not a texture type name", name))
	}
	return t, nil
}

func decodeTextureName(name string) (TextureName, bool) {
	rest, ok := strings.CutPrefix(name, PrefixTexture)
	if !ok {
		return TextureName{}, false
	}

	segment := func(s string) bool {
		if after, found := strings.CutPrefix(rest, "_"+s); found {
			rest = after
			return true
		}
		return false
	}

	var t TextureName
	t.Depth = segment("depth")
	t.Storage = segment("storage")
	t.Multisampled = segment("multisampled")

	switch {
	case segment(segmentExternal):
		t.External = true
		t.Dim = Dim2D
	default:
		for _, dim := range textureDims {
			if segment(string(dim)) {
				t.Dim = dim
				break
			}
		}
		if t.Dim == "" {
			return TextureName{}, false
		}
	}

	t.Array = segment("array")
	return t, rest == ""
}
