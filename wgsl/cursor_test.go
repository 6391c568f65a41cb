package wgsl

import (
	"testing"
	"unicode"
)

func TestCursor_MatchAndExpect(t *testing.T) {
	c := NewCursor("fn foo")

	if c.Match("fx") {
		t.Fatal("Match(fx) should fail")
	}
	if c.Offset() != 0 {
		t.Fatalf("failed Match moved the cursor to %d", c.Offset())
	}
	if !c.Match(TokenFn) {
		t.Fatal("Match(fn) should succeed")
	}
	if err := c.Expect("("); err == nil {
		t.Fatal("Expect(() should fail on whitespace")
	} else if IsCommitted(err) {
		t.Error("Expect failures are uncommitted")
	}
	if err := c.ExpectSpace(); err != nil {
		t.Fatalf("ExpectSpace() error: %v", err)
	}
	if got := c.Rest(); got != "foo" {
		t.Errorf("Rest() = %q, want %q", got, "foo")
	}
}

func TestCursor_PeekAdvance(t *testing.T) {
	c := NewCursor("aé")

	if r := c.Peek(); r != 'a' {
		t.Errorf("Peek() = %q, want 'a'", r)
	}
	if r := c.Advance(); r != 'a' {
		t.Errorf("Advance() = %q, want 'a'", r)
	}
	if r := c.Advance(); r != 'é' {
		t.Errorf("Advance() = %q, want 'é'", r)
	}
	if !c.IsAtEnd() {
		t.Error("cursor should be at end")
	}
	if r := c.Advance(); r != 0 {
		t.Errorf("Advance() at end = %q, want 0", r)
	}
}

func TestCursor_Seek(t *testing.T) {
	c := NewCursor("abc")

	tests := []struct {
		seek int
		want int
	}{
		{1, 1},
		{-4, 0},
		{10, 3},
		{3, 3},
	}
	for _, tt := range tests {
		c.Seek(tt.seek)
		if c.Offset() != tt.want {
			t.Errorf("Seek(%d) -> Offset() = %d, want %d", tt.seek, c.Offset(), tt.want)
		}
	}

	if got := NewCursorAt("abc", 2).Rest(); got != "c" {
		t.Errorf("NewCursorAt(abc, 2).Rest() = %q, want %q", got, "c")
	}
}

func TestCursor_SkipSpace(t *testing.T) {
	c := NewCursor(" \t\n\r x")
	if n := c.SkipSpace(); n != 5 {
		t.Errorf("SkipSpace() = %d, want 5", n)
	}
	if n := c.SkipSpace(); n != 0 {
		t.Errorf("second SkipSpace() = %d, want 0", n)
	}
	if err := c.ExpectSpace(); err == nil {
		t.Error("ExpectSpace() should fail before 'x'")
	}
}

func TestCursor_TakeWhile(t *testing.T) {
	c := NewCursor("abc123 rest")
	if got := c.TakeWhile(unicode.IsLetter); got != "abc" {
		t.Errorf("TakeWhile(letter) = %q, want %q", got, "abc")
	}
	if got := c.TakeWhile(unicode.IsLetter); got != "" {
		t.Errorf("TakeWhile(letter) on digits = %q, want empty", got)
	}
	if got := c.TakeWhile(unicode.IsDigit); got != "123" {
		t.Errorf("TakeWhile(digit) = %q, want %q", got, "123")
	}
}

func TestCursor_TakeUntil(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		stops   []string
		want    string
		rest    string
		wantErr bool
	}{
		{
			name:  "first stop wins by position",
			input: "some prose<td>more<br>",
			stops: []string{"<br>", "<td>"},
			want:  "some prose",
			rest:  "<td>more<br>",
		},
		{
			name:  "stop at start",
			input: "<br>x",
			stops: []string{"<br>"},
			want:  "",
			rest:  "<br>x",
		},
		{
			name:    "no stop",
			input:   "never terminated",
			stops:   []string{"<br>", "<td>"},
			rest:    "never terminated",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.input)
			got, err := c.TakeUntil(tt.stops...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TakeUntil() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TakeUntil() = %q, want %q", got, tt.want)
			}
			if c.Rest() != tt.rest {
				t.Errorf("Rest() = %q, want %q", c.Rest(), tt.rest)
			}
		})
	}
}

func TestPositionOf(t *testing.T) {
	source := "ab\ncdé\nf"

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{8, 3, 1},
		{9, 3, 2},
		{100, 3, 2},
		{-1, 1, 1},
	}
	for _, tt := range tests {
		pos := PositionOf(source, tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("PositionOf(%d) = %d:%d, want %d:%d", tt.offset, pos.Line, pos.Column, tt.line, tt.column)
		}
	}
}
