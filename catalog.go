package wgslspec

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/gogpu/wgslspec/overload"
)

// Exclusions is a set of function names to leave out of a catalogue.
type Exclusions struct {
	names []string // sorted, unique
}

// NewExclusions creates an exclusion set from function names.
func NewExclusions(names ...string) Exclusions {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return Exclusions{names: slices.Compact(sorted)}
}

// Contains reports whether name is excluded.
func (e Exclusions) Contains(name string) bool {
	_, found := slices.BinarySearch(e.names, name)
	return found
}

// Len returns the number of excluded names.
func (e Exclusions) Len() int {
	return len(e.names)
}

// Catalog collects instantiated overloads, keeping each distinct overload
// once. Two rows are the same overload when their signatures and leftover
// bounds render identically; the algorithm label is not part of the
// identity.
type Catalog struct {
	rows     []overload.Row
	rowMap   map[string]int
	byName   map[string][]int
	exclude  Exclusions
	excluded int
	keyBuf   strings.Builder
}

// NewCatalog creates an empty catalogue.
func NewCatalog(exclude Exclusions) *Catalog {
	return &Catalog{
		rows:    make([]overload.Row, 0, 64),
		rowMap:  make(map[string]int, 64),
		byName:  make(map[string][]int, 64),
		exclude: exclude,
	}
}

// Add registers row and returns its handle. added is false when the row
// duplicates an existing entry (the existing handle is returned) or its
// function is excluded (handle is -1).
func (c *Catalog) Add(row overload.Row) (handle int, added bool) {
	name := row.Decl.Name.String()
	if c.exclude.Contains(name) {
		c.excluded++
		return -1, false
	}

	key := c.rowKey(row)
	if h, exists := c.rowMap[key]; exists {
		return h, false
	}

	handle = len(c.rows)
	c.rows = append(c.rows, row)
	c.rowMap[key] = handle
	c.byName[name] = append(c.byName[name], handle)
	return handle, true
}

// rowKey creates a unique key for a row from its canonical rendering.
func (c *Catalog) rowKey(row overload.Row) string {
	c.keyBuf.Reset()
	c.keyBuf.WriteString(row.Decl.String())
	for _, b := range row.Params {
		c.keyBuf.WriteByte(0)
		c.keyBuf.WriteString(b.String())
	}
	return c.keyBuf.String()
}

// Rows returns all registered rows in insertion order.
func (c *Catalog) Rows() []overload.Row {
	return c.rows
}

// Get finds a row by its handle.
func (c *Catalog) Get(handle int) (overload.Row, bool) {
	if handle < 0 || handle >= len(c.rows) {
		return overload.Row{}, false
	}
	return c.rows[handle], true
}

// Lookup returns every overload of the named function.
func (c *Catalog) Lookup(name string) []overload.Row {
	handles := c.byName[name]
	out := make([]overload.Row, len(handles))
	for i, h := range handles {
		out[i] = c.rows[h]
	}
	return out
}

// Names returns the distinct function names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Count returns the number of distinct overloads registered.
func (c *Catalog) Count() int {
	return len(c.rows)
}

// Excluded returns how many rows were dropped by the exclusion set.
func (c *Catalog) Excluded() int {
	return c.excluded
}
