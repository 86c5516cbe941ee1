// Package schemafile loads declarative table schemas from YAML and compiles
// them into guard options, so contracts can live next to the data they
// describe instead of in code:
//
//	columns:
//	  - name: id
//	    dtype: int64
//	    unique: true
//	  - name: price
//	    nullable: false
//	    checks:
//	      gt: 0
//	  - name: r/tag_\d+/
//	    dtype: string
//	strict: true
//	min_rows: 1
//	composite_unique:
//	  - [first, last]
//
// Check values come through as YAML scalars and sequences; custom check
// functions are not expressible in a file and must be attached in code.
package schemafile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/framecheck/framecheck"
)

// ErrInvalidSchema is returned when a schema document cannot be parsed or
// fails structural validation.
var ErrInvalidSchema = errors.New("invalid schema file")

// ColumnDef is one column entry of a schema document.
type ColumnDef struct {
	Name     string         `yaml:"name"`
	Dtype    string         `yaml:"dtype,omitempty"`
	Nullable *bool          `yaml:"nullable,omitempty"`
	Unique   bool           `yaml:"unique,omitempty"`
	Required *bool          `yaml:"required,omitempty"`
	Checks   map[string]any `yaml:"checks,omitempty"`
}

// Schema is a full schema document. Unset scalar settings stay nil and leave
// the guard's defaults untouched.
type Schema struct {
	Columns         []ColumnDef `yaml:"columns"`
	Strict          *bool       `yaml:"strict,omitempty"`
	Lazy            *bool       `yaml:"lazy,omitempty"`
	MinRows         *int        `yaml:"min_rows,omitempty"`
	MaxRows         *int        `yaml:"max_rows,omitempty"`
	ExactRows       *int        `yaml:"exact_rows,omitempty"`
	AllowEmpty      *bool       `yaml:"allow_empty,omitempty"`
	CompositeUnique [][]string  `yaml:"composite_unique,omitempty"`
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	for i, col := range s.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidSchema, i)
		}
	}
	return &s, nil
}

// Load reads and parses a schema file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return Parse(data)
}

// GuardOptions compiles the schema into guard options.
func (s *Schema) GuardOptions() []framecheck.Option {
	var opts []framecheck.Option
	if len(s.Columns) > 0 {
		spec := make(map[string]any, len(s.Columns))
		for _, col := range s.Columns {
			c := framecheck.Column{
				Nullable: col.Nullable,
				Unique:   col.Unique,
				Required: col.Required,
				Checks:   col.Checks,
			}
			if col.Dtype != "" {
				c.Dtype = col.Dtype
			}
			spec[col.Name] = c
		}
		opts = append(opts, framecheck.Columns(spec))
	}
	if s.Strict != nil {
		opts = append(opts, framecheck.Strict(*s.Strict))
	}
	if s.Lazy != nil {
		opts = append(opts, framecheck.Lazy(*s.Lazy))
	}
	if s.MinRows != nil {
		opts = append(opts, framecheck.MinRows(*s.MinRows))
	}
	if s.MaxRows != nil {
		opts = append(opts, framecheck.MaxRows(*s.MaxRows))
	}
	if s.ExactRows != nil {
		opts = append(opts, framecheck.ExactRows(*s.ExactRows))
	}
	if s.AllowEmpty != nil {
		opts = append(opts, framecheck.AllowEmpty(*s.AllowEmpty))
	}
	if len(s.CompositeUnique) > 0 {
		opts = append(opts, framecheck.CompositeUnique(s.CompositeUnique...))
	}
	return opts
}
