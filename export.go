package wgslspec

import (
	"gopkg.in/yaml.v3"

	"github.com/gogpu/wgslspec/overload"
)

var _ yaml.Marshaler = (*Catalog)(nil)

// Record is the serializable form of one catalogue entry, used by code
// generators consuming the YAML export.
type Record struct {
	Name      string      `yaml:"name"`
	Algorithm string      `yaml:"algorithm"`
	Args      []ArgRecord `yaml:"args,omitempty"`
	Returns   string      `yaml:"returns"`
	Bounds    []string    `yaml:"bounds,omitempty"`
}

// ArgRecord is one argument of a Record.
type ArgRecord struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// NewRecord converts a row to its serializable form. Types are rendered in
// canonical form.
func NewRecord(row overload.Row) Record {
	r := Record{
		Name:      row.Decl.Name.String(),
		Algorithm: row.Algorithm,
		Returns:   row.Decl.Out.String(),
	}
	for _, a := range row.Decl.Args {
		r.Args = append(r.Args, ArgRecord{Name: a.Name.String(), Type: a.Type.String()})
	}
	for _, b := range row.Params {
		r.Bounds = append(r.Bounds, b.String())
	}
	return r
}

// Records returns the catalogue as serializable records in insertion order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.rows))
	for i, row := range c.rows {
		out[i] = NewRecord(row)
	}
	return out
}

// MarshalYAML implements yaml.Marshaler.
func (c *Catalog) MarshalYAML() (interface{}, error) {
	return c.Records(), nil
}
