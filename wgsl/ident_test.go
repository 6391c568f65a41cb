package wgsl

import (
	"testing"
)

func TestParseIdent(t *testing.T) {
	tests := []struct {
		input string
		want  string
		rest  string
	}{
		{"f32", "f32", ""},
		{"_1", "_1", ""},
		{"a_582_", "a_582_", ""},
		{"_582_", "_582_", ""},
		{"yeet", "yeet", ""},
		{"vec4<f32>", "vec4", "<f32>"},
		{"a-b", "a", "-b"},
		{"x y", "x", " y"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c := NewCursor(tt.input)
			id, err := ParseIdent(c)
			if err != nil {
				t.Fatalf("ParseIdent(%q) error: %v", tt.input, err)
			}
			if id.String() != tt.want {
				t.Errorf("ParseIdent(%q) = %q, want %q", tt.input, id, tt.want)
			}
			if c.Rest() != tt.rest {
				t.Errorf("Rest() = %q, want %q", c.Rest(), tt.rest)
			}
		})
	}
}

func TestParseIdent_Errors(t *testing.T) {
	inputs := []string{"1", "", "4_", "123", "<f32>", "$", "\n", " "}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			c := NewCursor(input)
			_, err := ParseIdent(c)
			if err == nil {
				t.Fatalf("ParseIdent(%q) should fail", input)
			}
			if IsCommitted(err) {
				t.Errorf("ParseIdent(%q) failure should be uncommitted", input)
			}
			if c.Offset() != 0 {
				t.Errorf("failed ParseIdent moved the cursor to %d", c.Offset())
			}
		})
	}
}

func TestNewIdent(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"f32", false},
		{"_", false},
		{"textureSampleLevel", false},
		{"", true},
		{"4_", true},
		{"a b", true},
		{"a-b", true},
		{"é", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := NewIdent(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewIdent(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && id.String() != tt.input {
				t.Errorf("NewIdent(%q) = %q", tt.input, id)
			}
			if tt.wantErr && !id.IsZero() {
				t.Errorf("NewIdent(%q) returned a non-zero ident on error", tt.input)
			}
		})
	}
}

func TestMustIdent_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustIdent(\"1x\") should panic")
		}
	}()
	MustIdent("1x")
}

func TestIdent_Compare(t *testing.T) {
	a, b := MustIdent("abs"), MustIdent("acos")
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare ordering wrong for %s and %s", a, b)
	}
}
