package entities

import (
	"bytes"
	"encoding/json"
)

// Column names with a fixed meaning in the source files.
const (
	ColumnRegisteredCount = "등록장애인수"
	ColumnAge             = "연령"
	ColumnYearMonth       = "통계연월"
	ColumnProvince        = "통계시도명"
	ColumnDistrict        = "통계시군구명"
)

// Field is one column of a Row. Value holds an int for the integer columns
// and a string for every other column.
type Field struct {
	Name  string
	Value any
}

// Row is one parsed CSV data line. Fields keep the header order.
type Row struct {
	Fields []Field
}

// Set stores value under name. An existing field keeps its position and
// takes the new value.
func (r *Row) Set(name string, value any) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (r Row) Get(name string) (any, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Len returns the number of fields.
func (r Row) Len() int {
	return len(r.Fields)
}

// MarshalJSON writes the row as a flat object in field order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalUnescaped(f.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')

		value, err := marshalUnescaped(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped encodes v without HTML escaping, the way the output
// consumers expect <, > and & to appear.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
