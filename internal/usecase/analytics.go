package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/vadimbarashkov/linkpulse/internal/entity"
)

// referrerDirect is the bucket for events with no usable referrer.
const referrerDirect = "Direct/Unknown"

// Coarse referrer source categories for the global summary, in match
// priority order.
const (
	SourceGoogle    = "Google"
	SourceFacebook  = "Facebook"
	SourceTwitter   = "Twitter"
	SourceInstagram = "Instagram"
	SourceOther     = "Other"
	SourceDirect    = "Direct"
)

type AnalyticsUseCase struct {
	topN      int
	clickRepo clickRepository
}

func NewAnalyticsUseCase(topN int, clickRepo clickRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		topN:      topN,
		clickRepo: clickRepo,
	}
}

// SummarizeLink computes the derived analytics for one link. An empty event
// log yields a zero-filled summary; a failed read yields
// entity.ErrAggregationUnavailable, never silently zeroed data.
func (uc *AnalyticsUseCase) SummarizeLink(ctx context.Context, linkID int64, dr entity.DateRange) (*entity.AnalyticsSummary, error) {
	const op = "usecase.AnalyticsUseCase.SummarizeLink"

	events, err := uc.clickRepo.ListByLink(ctx, linkID, dr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, entity.ErrAggregationUnavailable, err)
	}

	summary := uc.summarize(events, dr)

	return &summary, nil
}

// SummarizeGlobal computes the platform-wide summary across all links,
// including events orphaned by link deletion, plus coarse referrer source
// categories.
func (uc *AnalyticsUseCase) SummarizeGlobal(ctx context.Context, dr entity.DateRange) (*entity.GlobalAnalyticsSummary, error) {
	const op = "usecase.AnalyticsUseCase.SummarizeGlobal"

	events, err := uc.clickRepo.ListAll(ctx, dr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, entity.ErrAggregationUnavailable, err)
	}

	summary := entity.GlobalAnalyticsSummary{
		AnalyticsSummary: uc.summarize(events, dr),
		SourceCounts:     make(map[string]int64),
	}

	for _, ev := range events {
		summary.SourceCounts[classifySource(ev.Referrer)]++
	}

	return &summary, nil
}

// ExportCSV streams the click events for a link as CSV, one row per event,
// newest first.
func (uc *AnalyticsUseCase) ExportCSV(ctx context.Context, linkID int64, dr entity.DateRange, w io.Writer) error {
	const op = "usecase.AnalyticsUseCase.ExportCSV"

	events, err := uc.clickRepo.ListByLink(ctx, linkID, dr)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, entity.ErrAggregationUnavailable, err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"date", "time", "ip", "device", "browser", "os", "country", "region", "city", "referrer"}); err != nil {
		return fmt.Errorf("%s: failed to write csv header: %w", op, err)
	}

	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		ts := ev.OccurredAt.UTC()

		record := []string{
			ts.Format("2006-01-02"),
			ts.Format("15:04:05"),
			ev.IP,
			ev.Device,
			ev.Browser,
			ev.OS,
			ev.Country,
			ev.Region,
			ev.City,
			ev.Referrer,
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%s: failed to write csv record: %w", op, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: failed to flush csv: %w", op, err)
	}

	return nil
}

// summarize derives the summary from events already ordered by
// (occurred_at, id). The ordering makes top-N tie-breaking deterministic:
// equal counts rank by first appearance in the event log.
func (uc *AnalyticsUseCase) summarize(events []entity.ClickEvent, dr entity.DateRange) entity.AnalyticsSummary {
	devices := newCounter()
	oses := newCounter()
	browsers := newCounter()
	countries := newCounter()
	referrers := newCounter()

	summary := entity.AnalyticsSummary{
		TotalClicks: int64(len(events)),
	}

	for _, ev := range events {
		devices.inc(classificationKey(ev.Device))
		oses.inc(classificationKey(ev.OS))
		browsers.inc(classificationKey(ev.Browser))
		countries.inc(classificationKey(ev.Country))
		referrers.inc(referrerHost(ev.Referrer))

		summary.HourlyDistribution[ev.OccurredAt.UTC().Hour()]++
	}

	summary.DeviceCounts = devices.asMap()
	summary.OSCounts = oses.asMap()
	summary.BrowserCounts = browsers.asMap()
	summary.CountryCounts = countries.top(uc.topN)
	summary.ReferrerCounts = referrers.top(uc.topN)
	summary.DailySeries = dailySeries(events, dr)

	return summary
}

// dailySeries builds a dense series with one entry per UTC calendar day,
// zero-filled. Unset range bounds fall back to the first and last event
// days, which keeps the output a pure function of the input events and
// handles half-open ranges where only from or only to is supplied.
func dailySeries(events []entity.ClickEvent, dr entity.DateRange) []entity.DailyCount {
	from, to := dr.From, dr.To

	if from.IsZero() || to.IsZero() {
		if len(events) == 0 {
			return []entity.DailyCount{}
		}
		if from.IsZero() {
			from = events[0].OccurredAt
		}
		if to.IsZero() {
			to = events[len(events)-1].OccurredAt
		}
	}

	start := from.UTC().Truncate(24 * time.Hour)
	end := to.UTC().Truncate(24 * time.Hour)
	if end.Before(start) {
		return []entity.DailyCount{}
	}

	perDay := make(map[time.Time]int64, len(events))
	for _, ev := range events {
		perDay[ev.OccurredAt.UTC().Truncate(24*time.Hour)]++
	}

	series := make([]entity.DailyCount, 0, end.Sub(start)/(24*time.Hour)+1)
	for day := start; !day.After(end); day = day.Add(24 * time.Hour) {
		series = append(series, entity.DailyCount{
			Date:  day,
			Count: perDay[day],
		})
	}

	return series
}

func classificationKey(v string) string {
	if v == "" {
		return entity.Unknown
	}
	return v
}

// referrerHost extracts the hostname from a full referrer URL, bucketing
// missing or unparsable referrers as direct traffic.
func referrerHost(referrer string) string {
	if referrer == "" {
		return referrerDirect
	}

	u, err := url.Parse(referrer)
	if err != nil || u.Hostname() == "" {
		return referrerDirect
	}

	return u.Hostname()
}

// classifySource maps a raw referrer to a coarse source category by
// substring match, first match in priority order wins.
func classifySource(referrer string) string {
	if referrer == "" {
		return SourceDirect
	}

	ref := strings.ToLower(referrer)

	switch {
	case strings.Contains(ref, "google"):
		return SourceGoogle
	case strings.Contains(ref, "facebook"):
		return SourceFacebook
	case strings.Contains(ref, "twitter"):
		return SourceTwitter
	case strings.Contains(ref, "instagram"):
		return SourceInstagram
	default:
		return SourceOther
	}
}

// counter accumulates named counts while remembering first-seen order so
// top-N rankings are deterministic for a given input.
type counter struct {
	counts map[string]int64
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int64)}
}

func (c *counter) inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) asMap() map[string]int64 {
	return c.counts
}

// top returns the n highest counts descending. Ties keep first-seen order;
// the remainder is dropped, not folded into an "other" bucket.
func (c *counter) top(n int) []entity.Bucket {
	buckets := make([]entity.Bucket, 0, len(c.order))
	for _, key := range c.order {
		buckets = append(buckets, entity.Bucket{Key: key, Count: c.counts[key]})
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})

	if len(buckets) > n {
		buckets = buckets[:n]
	}

	return buckets
}
