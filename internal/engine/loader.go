package engine

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strings"
	"time"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"go.uber.org/zap"
)

const (
	regionHeader   = "Country/Region"
	provinceHeader = "Province/State"
)

// Source provides the raw dataset. Implementations live in internal/source.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// Load reads the dataset from src once and builds the Table. Every failure
// is reported as ErrLoadFailure.
func Load(ctx context.Context, src Source, logger *zap.Logger) (*Table, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, wrapError(CodeLoadFailure, "open dataset", err)
	}
	defer rc.Close()
	return LoadTable(rc, logger)
}

// parseCount parses "123" -> 123. ok is false for anything that is not a
// non-negative base-10 integer.
func parseCount(s string) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (math.MaxInt64-9)/10 {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}

type dateColumn struct {
	index int
	key   string
}

// LoadTable parses a CSV time series. Rows with the wrong number of fields,
// no region, or a cell that is not a count are skipped.
func LoadTable(r io.Reader, logger *zap.Logger) (*Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, wrapError(CodeLoadFailure, "read header", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	regionCol, provinceCol := -1, -1
	var dates []dateColumn
	seen := make(map[string]bool)
	for i, h := range header {
		name := strings.TrimSpace(h)
		switch name {
		case regionHeader:
			regionCol = i
		case provinceHeader:
			provinceCol = i
		default:
			// Lat, Long and anything else that is not a date is ignored
			if key, ok := parseDateKey(name); ok && !seen[key] {
				seen[key] = true
				dates = append(dates, dateColumn{index: i, key: key})
			}
		}
	}
	if regionCol < 0 {
		return nil, newError(CodeLoadFailure, "missing %q column", regionHeader)
	}
	if len(dates) == 0 {
		return nil, newError(CodeLoadFailure, "no date columns in header")
	}

	t := &Table{columns: make(map[string]*array.Int64, len(dates))}
	values := make([][]int64, len(dates))
	valid := make([][]bool, len(dates))
	regionIDs := make(map[string]int32)

	cells := make([]int64, len(dates))
	present := make([]bool, len(dates))
	skipped := 0

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				skipped++
				continue
			}
			return nil, wrapError(CodeLoadFailure, "read row", err)
		}

		region := strings.TrimSpace(rec[regionCol])
		if region == "" {
			skipped++
			continue
		}

		ok := true
		for j, dc := range dates {
			cell := strings.TrimSpace(rec[dc.index])
			if cell == "" {
				cells[j], present[j] = 0, false
				continue
			}
			v, good := parseCount(cell)
			if !good {
				ok = false
				break
			}
			cells[j], present[j] = v, true
		}
		if !ok {
			skipped++
			continue
		}

		province := ""
		if provinceCol >= 0 {
			province = strings.TrimSpace(rec[provinceCol])
		}
		id, exists := regionIDs[region]
		if !exists {
			id = int32(len(t.RegionDict))
			t.RegionDict = append(t.RegionDict, region)
			regionIDs[region] = id
		}
		t.Provinces = append(t.Provinces, province)
		t.Regions = append(t.Regions, region)
		t.RegionIDs = append(t.RegionIDs, id)
		for j := range dates {
			values[j] = append(values[j], cells[j])
			valid[j] = append(valid[j], present[j])
		}
	}

	b := array.NewInt64Builder(memory.NewGoAllocator())
	defer b.Release()
	for j, dc := range dates {
		b.AppendValues(values[j], valid[j])
		t.columns[dc.key] = b.NewInt64Array()
		t.keys = append(t.keys, dc.key)
	}

	if skipped > 0 {
		logger.Warn("skipped malformed rows", zap.Int("skipped", skipped))
	}
	logger.Info("dataset loaded",
		zap.Int("rows", t.Len()),
		zap.Int("regions", len(t.RegionDict)),
		zap.Int("dates", len(t.keys)),
		zap.Duration("elapsed", time.Since(start)))
	return t, nil
}
