package engine

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestSnapshotScenarios checks the published figures against a saved copy of
// time_series_19-covid-Confirmed.csv from mid March 2020. Point
// CASES_SNAPSHOT at the file to run it.
func TestSnapshotScenarios(t *testing.T) {
	path := os.Getenv("CASES_SNAPSHOT")
	if path == "" {
		t.Skip("CASES_SNAPSHOT not set")
	}
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	table, err := LoadTable(f, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer table.Release()
	q := NewQuerier(table)

	n, err := q.CasesOnDate(7, 3, 2020)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = q.CasesOnDate(11, 3, DefaultYear)
	require.NoError(t, err)
	assert.Equal(t, int64(31), n)

	top, err := q.TopNRegionsOnDate(27, 2, 2020, DefaultTopN)
	require.NoError(t, err)
	assert.Equal(t, []string{"China", "Korea, South", "Cruise Ship", "Italy", "Iran"}, top)

	top, err = q.TopNRegionsOnDate(12, 3, DefaultYear, DefaultTopN)
	require.NoError(t, err)
	assert.Equal(t, []string{"China", "Italy", "Iran", "Korea, South", "France"}, top)

	c, err := q.UnchangedCountOnDate(11, 2, 2020)
	require.NoError(t, err)
	assert.Equal(t, 35, c)

	c, err = q.UnchangedCountOnDate(3, 3, DefaultYear)
	require.NoError(t, err)
	assert.Equal(t, 57, c)
}
