// path: stats/stats.go

// Package stats derives the dashboard views from the current report set.
// Every function is pure and recomputes from scratch; nothing here caches.
package stats

import (
	"math"
	"sort"
	"time"

	"lostid/models"
)

// ReasonCount is one slice of the reason distribution.
type ReasonCount struct {
	Reason  string  `json:"reason"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // of total, one decimal place
}

// SeriesPoint is one step of the cumulative-over-time series.
type SeriesPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}

// WeekdayCount is one bar of the weekday histogram.
type WeekdayCount struct {
	Day   string `json:"day"` // Mon..Sun
	Count int    `json:"count"`
}

// ReasonDistribution groups reports by reason, blank reasons under "Unknown".
// Groups appear in order of first occurrence. An empty input yields an empty
// slice, never NaN percentages.
func ReasonDistribution(reports []models.LostIDReport) []ReasonCount {
	if len(reports) == 0 {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, r := range reports {
		reason := r.Reason
		if reason == "" {
			reason = "Unknown"
		}
		if _, seen := counts[reason]; !seen {
			order = append(order, reason)
		}
		counts[reason]++
	}

	total := len(reports)
	out := make([]ReasonCount, 0, len(order))
	for _, reason := range order {
		n := counts[reason]
		out = append(out, ReasonCount{
			Reason:  reason,
			Count:   n,
			Percent: math.Round(float64(n)/float64(total)*1000) / 10,
		})
	}
	return out
}

// CumulativeSeries sorts reports ascending by date lost (stable, so ties keep
// their input order) and emits one point per report with the running total.
// Reports whose date fails to parse sort first.
func CumulativeSeries(reports []models.LostIDReport) []SeriesPoint {
	if len(reports) == 0 {
		return nil
	}
	type dated struct {
		date string
		t    time.Time
	}
	ds := make([]dated, 0, len(reports))
	for _, r := range reports {
		t, _ := time.Parse(models.DateLostLayout, r.DateLost)
		ds = append(ds, dated{date: r.DateLost, t: t})
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].t.Before(ds[j].t) })

	out := make([]SeriesPoint, len(ds))
	for i, d := range ds {
		out[i] = SeriesPoint{Date: d.date, Total: i + 1}
	}
	return out
}

// WeekdayHistogram counts reports per weekday of the date lost. Only weekdays
// present in the data appear, in order of first occurrence; reports with an
// unparseable date are skipped.
func WeekdayHistogram(reports []models.LostIDReport) []WeekdayCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range reports {
		t, err := time.Parse(models.DateLostLayout, r.DateLost)
		if err != nil {
			continue
		}
		day := t.Format("Mon")
		if _, seen := counts[day]; !seen {
			order = append(order, day)
		}
		counts[day]++
	}

	out := make([]WeekdayCount, 0, len(order))
	for _, day := range order {
		out = append(out, WeekdayCount{Day: day, Count: counts[day]})
	}
	return out
}
