package wgsl

import (
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Type
		str   string
	}{
		{
			name:  "scalar",
			input: "f32",
			want:  Named(MustIdent("f32")),
			str:   "f32",
		},
		{
			name:  "void",
			input: "void",
			want:  Void(),
			str:   "void",
		},
		{
			name:  "vector",
			input: "vec3<f32>",
			want:  Type{Kind: VectorKind{Size: '3'}, Params: []Type{NewType("f32")}},
			str:   "vec3<f32>",
		},
		{
			name:  "symbolic vector",
			input: "vecN<T>",
			want:  Type{Kind: VectorKind{Size: 'N'}, Params: []Type{NewType("T")}},
			str:   "vecN<T>",
		},
		{
			name:  "matrix",
			input: "mat4x3<f32>",
			want:  Type{Kind: MatrixKind{Columns: '4', Rows: '3'}, Params: []Type{NewType("f32")}},
			str:   "mat4x3<f32>",
		},
		{
			name:  "symbolic matrix",
			input: "matCxR<T>",
			want:  Type{Kind: MatrixKind{Columns: 'C', Rows: 'R'}, Params: []Type{NewType("T")}},
			str:   "matCxR<T>",
		},
		{
			name:  "texture with parameters",
			input: "texture_storage_2d<F, A>",
			want: Type{
				Kind:   TextureKind{Name: TextureName{Storage: true, Dim: Dim2D}},
				Params: []Type{NewType("F"), NewType("A")},
			},
			str: "texture_storage_2d<F, A>",
		},
		{
			name:  "whitespace around brackets",
			input: "vec4 < f32 >",
			want:  NewType("vec4", NewType("f32")),
			str:   "vec4<f32>",
		},
		{
			name:  "nested",
			input: "ptr<function,vec4<f32>>",
			want:  NewType("ptr", NewType("function"), NewType("vec4", NewType("f32"))),
			str:   "ptr<function, vec4<f32>>",
		},
		{
			name:  "vec prefix but too long",
			input: "vec10",
			want:  Named(MustIdent("vec10")),
			str:   "vec10",
		},
		{
			name:  "mat prefix without x",
			input: "mat4y4",
			want:  Named(MustIdent("mat4y4")),
			str:   "mat4y4",
		},
		{
			name:  "bare vec",
			input: "vec",
			want:  Named(MustIdent("vec")),
			str:   "vec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypeString(tt.input)
			if err != nil {
				t.Fatalf("ParseTypeString(%q) error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTypeString(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}

			again, err := ParseTypeString(got.String())
			if err != nil {
				t.Fatalf("re-parse of %q error: %v", got.String(), err)
			}
			if !again.Equal(got) {
				t.Errorf("round trip changed %#v into %#v", got, again)
			}
		})
	}
}

func TestParseType_ParamsBacktrack(t *testing.T) {
	tests := []struct {
		input string
		want  string
		rest  string
	}{
		{"array<vec2<f32>, 4>", "array", "<vec2<f32>, 4>"},
		{"vec4<f32", "vec4", "<f32"},
		{"vec4<>", "vec4", "<>"},
		{"f32 -> x", "f32", " -> x"},
		{"vec4 <f32>,", "vec4<f32>", ","},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := NewCursor(tt.input)
			got, err := ParseType(c)
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if c.Rest() != tt.rest {
				t.Errorf("Rest() = %q, want %q", c.Rest(), tt.rest)
			}
		})
	}
}

func TestParseTypeString_Errors(t *testing.T) {
	inputs := []string{"", "<f32>", "1", "f32 x", "vec4<f32>>"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got, err := ParseTypeString(input); err == nil {
				t.Errorf("ParseTypeString(%q) = %q, want error", input, got)
			}
		})
	}
}

func TestType_IsVoid(t *testing.T) {
	if !Void().IsVoid() {
		t.Error("Void() should be void")
	}
	if NewType("f32").IsVoid() {
		t.Error("f32 should not be void")
	}
	if (Type{Kind: VoidKind{}, Params: []Type{NewType("f32")}}).IsVoid() {
		t.Error("void with parameters should not be void")
	}
}

func TestType_Equal(t *testing.T) {
	a := NewType("vec3", NewType("f32"))
	tests := []struct {
		name  string
		other Type
		want  bool
	}{
		{"same", NewType("vec3", NewType("f32")), true},
		{"different param", NewType("vec3", NewType("i32")), false},
		{"different kind", NewType("vec4", NewType("f32")), false},
		{"missing params", NewType("vec3"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.want {
				t.Errorf("Equal(%s) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestType_Find(t *testing.T) {
	outer := NewType("vec4", NewType("vec4", NewType("T")))

	found, ok := outer.Find(NewType("vec4", NewType("T")))
	if !ok {
		t.Fatal("Find should locate the nested vector")
	}
	if found.String() != "vec4<T>" {
		t.Errorf("Find() = %s, want vec4<T>", found)
	}

	if !outer.Contains(NewType("T")) {
		t.Error("Contains(T) should be true")
	}
	if outer.Contains(NewType("f32")) {
		t.Error("Contains(f32) should be false")
	}
	if !outer.Contains(outer) {
		t.Error("a type contains itself")
	}
}

func TestType_Replace(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target string
		with   string
		want   string
	}{
		{"root", "T", "T", "f32", "f32"},
		{"nested", "vec4<vec4<T>>", "T", "f32", "vec4<vec4<f32>>"},
		{"every occurrence", "texture_storage_2d<T, T>", "T", "r32float", "texture_storage_2d<r32float, r32float>"},
		{"subtree", "ptr<S, vec4<T>>", "vec4<T>", "u32", "ptr<S, u32>"},
		{"absent", "vec4<f32>", "T", "i32", "vec4<f32>"},
		{"with parameterized", "vecN<T>", "T", "vec2<f32>", "vecN<vec2<f32>>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseTypeString(tt.input)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.input, err)
			}
			target, err := ParseTypeString(tt.target)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.target, err)
			}
			with, err := ParseTypeString(tt.with)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.with, err)
			}

			got := in.Replace(target, with)
			if got.String() != tt.want {
				t.Errorf("Replace() = %s, want %s", got, tt.want)
			}
			if in.String() != tt.input {
				t.Errorf("Replace modified its receiver: %s", in)
			}
		})
	}
}

func TestType_ReplaceDoesNotAlias(t *testing.T) {
	in := NewType("vec4", NewType("T"))
	out := in.Replace(NewType("f32"), NewType("i32"))
	out.Params[0] = NewType("u32")

	if in.String() != "vec4<T>" {
		t.Errorf("mutating the result changed the input: %s", in)
	}
}

func TestNewType_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewType(\"<bad>\") should panic")
		}
	}()
	NewType("<bad>")
}
