package entity

import (
	"errors"
	"time"
)

// ErrAggregationUnavailable is returned when the click event log could not be read.
// It distinguishes a storage failure from a valid zero-filled summary.
var ErrAggregationUnavailable = errors.New("aggregation unavailable")

// DateRange is an inclusive range of UTC calendar days.
// The zero value means all-time.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the range is unset.
func (r DateRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// LastNDays returns the range covering the last n UTC calendar days up to today.
func LastNDays(n int, now time.Time) DateRange {
	to := now.UTC().Truncate(24 * time.Hour)
	return DateRange{
		From: to.AddDate(0, 0, -(n - 1)),
		To:   to,
	}
}

// Bucket is a single named count within a breakdown or rollup.
type Bucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// DailyCount is the number of clicks on a single UTC calendar day.
type DailyCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// AnalyticsSummary holds the derived, non-persisted analytics for one link.
type AnalyticsSummary struct {
	TotalClicks        int64
	DeviceCounts       map[string]int64
	OSCounts           map[string]int64
	BrowserCounts      map[string]int64
	CountryCounts      []Bucket     // top-N by count descending, remainder dropped
	ReferrerCounts     []Bucket     // top-N referrer hostnames, "Direct/Unknown" bucket included
	DailySeries        []DailyCount // dense: one entry per day in range, zero-filled
	HourlyDistribution [24]int64    // clicks per UTC hour of day
}

// GlobalAnalyticsSummary aggregates across all links and adds coarse
// referrer source categories for platform-wide dashboards.
type GlobalAnalyticsSummary struct {
	AnalyticsSummary
	SourceCounts map[string]int64 // Google, Facebook, Twitter, Instagram, Other, Direct
}
