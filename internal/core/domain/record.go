package domain

import (
	"bytes"
	"encoding/json"
)

// Field is one named value within a Record.
type Field struct {
	// Column is the header name the value was emitted under.
	Column string

	// Value is the cell content: a string, or an int64 when a numeric
	// size column parsed cleanly.
	Value any
}

// Record is a single row of search output. Fields keep the engine's
// emission order, which by construction matches the order the columns
// were requested in. The column set varies per request; there is no
// fixed schema.
type Record struct {
	// Fields holds the record's columns in emission order.
	Fields []Field
}

// Get returns the value of the named column and whether it was present.
func (r Record) Get(column string) (any, bool) {
	for _, f := range r.Fields {
		if f.Column == column {
			return f.Value, true
		}
	}
	return nil, false
}

// GetString returns the named column's value as a string. Numeric values
// and missing columns return the empty string.
func (r Record) GetString(column string) string {
	v, ok := r.Get(column)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Columns returns the record's column names in emission order.
func (r Record) Columns() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Column
	}
	return names
}

// FullPath returns the full-path column when present, falling back to the
// bare name column. Used by result actions that need a filesystem path.
func (r Record) FullPath() string {
	if s := r.GetString(ColumnFullPath); s != "" {
		return s
	}
	return r.GetString(ColumnName)
}

// MarshalJSON encodes the record as a JSON object whose keys appear in
// field order, matching the column order of the request that produced it.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
