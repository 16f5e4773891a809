package engine

import (
	"github.com/apache/arrow/go/v18/arrow/array"
)

// Table holds the time series column-wise. It is never written after
// LoadTable returns, so any number of goroutines may read it.
type Table struct {
	// Identifying columns, one entry per row in encounter order
	Provinces []string
	Regions   []string

	// Dictionary encoded Country/Region (0..N in first-encounter order)
	RegionIDs  []int32
	RegionDict []string

	// Date columns, one Int64 array per key; nulls are missing cells
	keys    []string
	columns map[string]*array.Int64
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Regions)
}

// DistinctRegions returns each Country/Region once, in encounter order.
func (t *Table) DistinctRegions() []string {
	out := make([]string, len(t.RegionDict))
	copy(out, t.RegionDict)
	return out
}

// DateKeys returns the date column keys in header order.
func (t *Table) DateKeys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Release frees the column buffers. The table must not be used afterwards.
func (t *Table) Release() {
	for _, col := range t.columns {
		col.Release()
	}
	t.columns = nil
}

func (t *Table) column(d Date) (*array.Int64, error) {
	key := d.Key()
	col, ok := t.columns[key]
	if !ok {
		return nil, newError(CodeNotFound, "no data for date %s", key)
	}
	return col, nil
}

// firstRow returns the index of the first row for region, or -1.
func (t *Table) firstRow(region string) int {
	for i, r := range t.Regions {
		if r == region {
			return i
		}
	}
	return -1
}
