package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultYear is the year assumed by callers that only supply day and month.
const DefaultYear = 2020

// Date is a calendar date as supplied by a caller. It is not validated:
// out-of-range values simply produce a key the table does not contain.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Key returns the column name for d: month/day/two-digit-year, no padding.
func (d Date) Key() string {
	return fmt.Sprintf("%d/%d/%d", d.Month, d.Day, d.Year%100)
}

// Previous returns the day before d using a fixed month-length table.
// Leap years are year%4 == 0 and every month not listed below is taken to
// follow a 30-day month, which makes 1 August roll back to 30 July.
func (d Date) Previous() Date {
	if d.Day != 1 {
		return Date{Day: d.Day - 1, Month: d.Month, Year: d.Year}
	}
	switch d.Month {
	case 2, 4, 6, 9, 11:
		return Date{Day: 31, Month: d.Month - 1, Year: d.Year}
	case 3:
		day := 28
		if d.Year%4 == 0 {
			day = 29
		}
		return Date{Day: day, Month: 2, Year: d.Year}
	case 1:
		return Date{Day: 31, Month: 12, Year: d.Year - 1}
	default:
		return Date{Day: 30, Month: d.Month - 1, Year: d.Year}
	}
}

// parseDateKey normalises a header such as "03/07/20" to "3/7/20".
// ok is false when the header is not a date column.
func parseDateKey(header string) (key string, ok bool) {
	parts := strings.Split(strings.TrimSpace(header), "/")
	if len(parts) != 3 {
		return "", false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return "", false
		}
		n[i] = v
	}
	if n[0] < 1 || n[0] > 12 || n[1] < 1 || n[1] > 31 {
		return "", false
	}
	return fmt.Sprintf("%d/%d/%d", n[0], n[1], n[2]%100), true
}
