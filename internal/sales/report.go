package sales

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// topSalesLimit bounds how many sales a "max" report returns.
const topSalesLimit = 5

// WeekTotal is the summed sale value for one week-of-year bucket.
type WeekTotal struct {
	Week  int     `json:"week"`
	Value float64 `json:"value"`
}

// MonthTotal is the summed sale value for one "year-month" bucket, with the
// month number 1-12 and not zero-padded, e.g. "2024-3".
type MonthTotal struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// YearTotal is the summed sale value for one calendar year.
type YearTotal struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// WeeklyTotals buckets sales by week-of-year and sums their values. Buckets
// are returned in ascending week order. Week numbers carry no year, so sales
// from different years with the same week number share a bucket.
func WeeklyTotals(sales []Sale) []WeekTotal {
	grouped := map[int]float64{}
	for _, s := range sales {
		grouped[weekOfYear(s.Date)] += s.Value
	}

	out := make([]WeekTotal, 0, len(grouped))
	for week, value := range grouped {
		out = append(out, WeekTotal{Week: week, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// MonthlyTotals buckets sales by calendar month and sums their values.
// Buckets are returned in chronological order.
func MonthlyTotals(sales []Sale) []MonthTotal {
	type yearMonth struct {
		year  int
		month int
	}

	grouped := map[yearMonth]float64{}
	for _, s := range sales {
		key := yearMonth{year: s.Date.Year(), month: int(s.Date.Month())}
		grouped[key] += s.Value
	}

	keys := make([]yearMonth, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthTotal, 0, len(keys))
	for _, key := range keys {
		out = append(out, MonthTotal{
			Month: fmt.Sprintf("%d-%d", key.year, key.month),
			Value: grouped[key],
		})
	}
	return out
}

// YearlyTotals buckets sales by calendar year and sums their values. Buckets
// are returned in ascending year order.
func YearlyTotals(sales []Sale) []YearTotal {
	grouped := map[int]float64{}
	for _, s := range sales {
		grouped[s.Date.Year()] += s.Value
	}

	out := make([]YearTotal, 0, len(grouped))
	for year, value := range grouped {
		out = append(out, YearTotal{Year: year, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopSales returns the five highest-value sales in descending value order,
// or all of them when fewer than five exist. Ties break on the sale ID so the
// result is reproducible.
func TopSales(sales []Sale) []Sale {
	sorted := make([]Sale, len(sales))
	copy(sorted, sales)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Value != sorted[j].Value {
			return sorted[i].Value > sorted[j].Value
		}
		return sorted[i].ID.Hex() < sorted[j].ID.Hex()
	})

	if len(sorted) > topSalesLimit {
		sorted = sorted[:topSalesLimit]
	}
	return sorted
}

// weekOfYear numbers the week a date falls in, counting weeks from January 1st
// shifted by January 1st's weekday (Sunday = 0). January 1st is always week 1.
func weekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.Sub(jan1).Hours() / 24
	return int(math.Ceil((days + float64(jan1.Weekday()) + 1) / 7))
}
