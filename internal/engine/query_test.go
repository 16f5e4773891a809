package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasesOnDate(t *testing.T) {
	q := NewQuerier(loadFixture(t))
	assert.Equal(t, DefaultRegion, q.Region())

	n, err := q.CasesOnDate(2, 3, DefaultYear)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = q.CasesOnDate(28, 2, 2020)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCasesOnDateReadsFirstRowOnly(t *testing.T) {
	q := NewQuerier(loadFixture(t), WithRegion("China"))

	// Hubei alone, Beijing is not added
	n, err := q.CasesOnDate(1, 2, 2020)
	require.NoError(t, err)
	assert.Equal(t, int64(7153), n)
}

func TestCasesOnDateNotFound(t *testing.T) {
	table := loadFixture(t)

	_, err := NewQuerier(table).CasesOnDate(27, 2, 2020)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewQuerier(table).CasesOnDate(2, 3, 2021)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewQuerier(table, WithRegion("Atlantis")).CasesOnDate(2, 3, 2020)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestTopNRegionsOnDate(t *testing.T) {
	q := NewQuerier(loadFixture(t))

	tests := []struct {
		name       string
		day, month int
		n          int
		want       []string
	}{
		{"cruise ship ahead of iran", 28, 2, DefaultTopN, []string{"China", "Korea, South", "Italy", "Cruise Ship", "Iran"}},
		{"iran overtakes", 2, 3, DefaultTopN, []string{"China", "Korea, South", "Italy", "Iran", "Cruise Ship"}},
		{"tie keeps row order", 1, 3, 7, []string{"China", "Korea, South", "Italy", "Iran", "Cruise Ship", "Germany", "France"}},
		{"zero", 2, 3, 0, []string{}},
		{"more than available", 1, 2, 100, []string{
			"China", "Korea, South", "Germany", "France", "Canada", "Italy",
			"Nepal", "Spain", "Poland", "Iran", "Cruise Ship",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.TopNRegionsOnDate(tt.day, tt.month, DefaultYear, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopRegionsOnDateSortedNonIncreasing(t *testing.T) {
	q := NewQuerier(loadFixture(t))

	dates := []Date{{31, 1, 2020}, {1, 2, 2020}, {28, 2, 2020}, {29, 2, 2020}, {1, 3, 2020}, {2, 3, 2020}}
	for _, d := range dates {
		top, err := q.TopRegionsOnDate(d.Day, d.Month, d.Year, 100)
		require.NoError(t, err)
		require.Len(t, top, 11)
		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].Cases, top[i].Cases, d.Key())
		}
	}
}

func TestTopNRegionsOnDateErrors(t *testing.T) {
	q := NewQuerier(loadFixture(t))

	_, err := q.TopNRegionsOnDate(27, 2, 2020, DefaultTopN)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = q.TopNRegionsOnDate(2, 3, 2020, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUnchangedCountOnDate(t *testing.T) {
	q := NewQuerier(loadFixture(t))

	tests := []struct {
		name       string
		day, month int
		want       int
	}{
		{"across month end", 1, 2, 7},
		{"leap day", 29, 2, 3},
		{"march after leap day", 1, 3, 3},
		{"sub-regions summed", 2, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.UnchangedCountOnDate(tt.day, tt.month, DefaultYear)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := q.UnchangedCountOnDate(tt.day, tt.month, DefaultYear)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestUnchangedCountOnDateErrors(t *testing.T) {
	q := NewQuerier(loadFixture(t))

	for _, d := range []Date{{0, 3, 2020}, {2, 0, 2020}, {2, 3, 0}} {
		_, err := q.UnchangedCountOnDate(d.Day, d.Month, d.Year)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.NotErrorIs(t, err, ErrNotFound)
	}

	// 2/27/20 is not in the fixture
	_, err := q.UnchangedCountOnDate(28, 2, 2020)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = q.UnchangedCountOnDate(5, 3, 2020)
	assert.ErrorIs(t, err, ErrNotFound)
}
