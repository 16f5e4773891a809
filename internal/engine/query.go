package engine

// DefaultTopN is the ranking length used when a caller does not pick one.
const DefaultTopN = 5

// DefaultRegion is the region CasesOnDate reports unless configured.
const DefaultRegion = "Poland"

// Querier answers date queries against one loaded Table.
type Querier struct {
	table  *Table
	region string
}

// Option configures a Querier.
type Option func(*Querier)

// WithRegion sets the region reported by CasesOnDate.
func WithRegion(region string) Option {
	return func(q *Querier) {
		q.region = region
	}
}

func NewQuerier(table *Table, opts ...Option) *Querier {
	q := &Querier{table: table, region: DefaultRegion}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Region returns the region CasesOnDate reports.
func (q *Querier) Region() string {
	return q.region
}

// CasesOnDate returns the cumulative count of the target region on the
// given date. When the region is split into sub-regions only the first
// row is read.
func (q *Querier) CasesOnDate(day, month, year int) (int64, error) {
	d := Date{Day: day, Month: month, Year: year}
	col, err := q.table.column(d)
	if err != nil {
		return 0, err
	}
	row := q.table.firstRow(q.region)
	if row < 0 {
		return 0, newError(CodeNotFound, "no data for region %q", q.region)
	}
	if col.IsNull(row) {
		return 0, newError(CodeNotFound, "no value for region %q on %s", q.region, d.Key())
	}
	return col.Value(row), nil
}

// TopRegionsOnDate returns the n regions with the highest summed count on
// the given date, highest first.
func (q *Querier) TopRegionsOnDate(day, month, year, n int) ([]RegionTotal, error) {
	if n < 0 {
		return nil, newError(CodeInvalidArgument, "n must not be negative, got %d", n)
	}
	col, err := q.table.column(Date{Day: day, Month: month, Year: year})
	if err != nil {
		return nil, err
	}
	ranked := q.table.rank(q.table.groupTotals(col))
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// TopNRegionsOnDate is TopRegionsOnDate reduced to region names.
func (q *Querier) TopNRegionsOnDate(day, month, year, n int) ([]string, error) {
	top, err := q.TopRegionsOnDate(day, month, year, n)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(top))
	for i, r := range top {
		names[i] = r.Region
	}
	return names, nil
}

// UnchangedCountOnDate counts regions whose summed count on the given date
// equals the one on the previous day.
func (q *Querier) UnchangedCountOnDate(day, month, year int) (int, error) {
	if day == 0 || month == 0 || year == 0 {
		return 0, newError(CodeInvalidArgument, "day, month and year must be non-zero, got %d/%d/%d", day, month, year)
	}
	d := Date{Day: day, Month: month, Year: year}
	cur, err := q.table.column(d)
	if err != nil {
		return 0, err
	}
	prev, err := q.table.column(d.Previous())
	if err != nil {
		return 0, err
	}

	now := q.table.groupTotals(cur)
	before := q.table.groupTotals(prev)
	count := 0
	for id := range now {
		if now[id] == before[id] {
			count++
		}
	}
	return count, nil
}
