package engine

import (
	"sort"

	"github.com/apache/arrow/go/v18/arrow/array"
)

// RegionTotal is a Country/Region with its sub-regions summed.
type RegionTotal struct {
	Region string
	Cases  int64
}

// groupTotals sums col per region id. Null cells add nothing.
func (t *Table) groupTotals(col *array.Int64) []int64 {
	sums := make([]int64, len(t.RegionDict))
	ids := t.RegionIDs
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		sums[ids[i]] += col.Value(i)
	}
	return sums
}

// rank orders regions by total, highest first. Equal totals keep
// first-encounter order.
func (t *Table) rank(sums []int64) []RegionTotal {
	out := make([]RegionTotal, len(sums))
	for id, v := range sums {
		out[id] = RegionTotal{Region: t.RegionDict[id], Cases: v}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cases > out[j].Cases })
	return out
}
