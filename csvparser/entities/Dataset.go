package entities

import (
	"bytes"
	"fmt"
)

// Bucket names, in output order.
const (
	ByAgeAndSeverity    = "byAgeAndSeverity"
	ByAgeAndGender      = "byAgeAndGender"
	ByTypeAndGender     = "byTypeAndGender"
	ByTypeAndAge        = "byTypeAndAge"
	BySeverityAndGender = "bySeverityAndGender"
)

// BucketNames lists every bucket of a Dataset in serialization order.
var BucketNames = []string{
	ByAgeAndSeverity,
	ByAgeAndGender,
	ByTypeAndGender,
	ByTypeAndAge,
	BySeverityAndGender,
}

// Bucket is one named category group of rows.
type Bucket struct {
	Name string
	Rows []Row
}

// Dataset maps bucket names to buckets and keeps them in BucketNames order.
// It is owned by a single run.
type Dataset struct {
	buckets []*Bucket
}

// NewDataset creates a Dataset with all five buckets present and empty.
func NewDataset() *Dataset {
	d := &Dataset{buckets: make([]*Bucket, 0, len(BucketNames))}
	for _, name := range BucketNames {
		d.buckets = append(d.buckets, &Bucket{Name: name, Rows: []Row{}})
	}
	return d
}

// Bucket returns the bucket called name, or nil.
func (d *Dataset) Bucket(name string) *Bucket {
	for _, b := range d.buckets {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Buckets returns the buckets in serialization order.
func (d *Dataset) Buckets() []*Bucket {
	return d.buckets
}

// Append adds rows to the end of the named bucket.
func (d *Dataset) Append(name string, rows ...Row) error {
	b := d.Bucket(name)
	if b == nil {
		return fmt.Errorf("unknown bucket %q", name)
	}
	b.Rows = append(b.Rows, rows...)
	return nil
}

// Counts returns the row count of every bucket, keyed by bucket name.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int, len(d.buckets))
	for _, b := range d.buckets {
		counts[b.Name] = len(b.Rows)
	}
	return counts
}

// MarshalJSON writes the dataset as an object of arrays in bucket order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range d.buckets {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := marshalUnescaped(b.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteString(":[")
		for j, row := range b.Rows {
			if j > 0 {
				buf.WriteByte(',')
			}
			data, err := row.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("bucket %s row %d: %w", b.Name, j, err)
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
