package timing

import "sort"

// BounceThresholdMillis is the page load duration above which visitors
// are likely to abandon a page, taken from third-party bounce rate
// research. It is a reporting threshold only.
const BounceThresholdMillis = 6000.0

// Classification labels for the bounce threshold split.
const (
	LoadWithinThreshold = "within 6 sec"
	LoadOverThreshold   = "longer than 6 sec"
)

// FastSlowDenominator normalizes the bounce split into a share. It is
// a constant of the original study dataset (200 pages x 10 runs per
// browser), not derived from the table, so shares are only meaningful
// for inputs of that shape.
const FastSlowDenominator = 2000

// ClassifyLoad buckets a loadEventEnd offset against the bounce
// threshold.
func ClassifyLoad(offsetMillis float64) string {
	if offsetMillis > BounceThresholdMillis {
		return LoadOverThreshold
	}
	return LoadWithinThreshold
}

// Summary describes the distribution of one event's offsets within one
// browser configuration.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// BounceSplit is the bounce threshold breakdown of loadEventEnd for
// one browser configuration.
type BounceSplit struct {
	Within int
	Over   int

	// Shares are normalized by FastSlowDenominator, not by the number
	// of rows observed.
	WithinShare float64
	OverShare   float64
}

// StudyStats holds every aggregate the report and the TUI consume.
type StudyStats struct {
	// Browsers present in the table, known configurations first in
	// their fixed presentation order, anything else sorted after.
	Browsers []string

	// Events that survived normalization, chronological.
	Events []string

	// Rows per browser, counting rows that produced no offsets too.
	SampleCounts map[string]int

	// Summaries is keyed by browser, then event. Pairs with no valid
	// offsets have no entry.
	Summaries map[string]map[string]Summary

	// Bounce is the loadEventEnd threshold split per browser.
	Bounce map[string]BounceSplit
}

// Aggregate computes per-browser, per-event summary statistics and the
// bounce breakdown from a normalized table.
func Aggregate(t *Table) *StudyStats {
	stats := &StudyStats{
		Events:       append([]string(nil), t.Columns...),
		SampleCounts: make(map[string]int),
		Summaries:    make(map[string]map[string]Summary),
		Bounce:       make(map[string]BounceSplit),
	}

	// browser -> event -> collected offsets
	samples := make(map[string]map[string][]float64)

	for _, record := range t.Records {
		stats.SampleCounts[record.Browser]++

		events, ok := samples[record.Browser]
		if !ok {
			events = make(map[string][]float64, len(t.Columns))
			samples[record.Browser] = events
		}

		for _, event := range t.Columns {
			if offset, present := record.Offset(event); present {
				events[event] = append(events[event], offset)
			}
		}

		if offset, present := record.Offset("loadEventEnd"); present {
			split := stats.Bounce[record.Browser]
			if ClassifyLoad(offset) == LoadOverThreshold {
				split.Over++
			} else {
				split.Within++
			}
			stats.Bounce[record.Browser] = split
		}
	}

	stats.Browsers = orderBrowsers(stats.SampleCounts)

	for browser, events := range samples {
		summaries := make(map[string]Summary, len(events))
		for event, offsets := range events {
			summaries[event] = summarize(offsets)
		}
		stats.Summaries[browser] = summaries
	}

	for browser, split := range stats.Bounce {
		split.WithinShare = float64(split.Within) / FastSlowDenominator
		split.OverShare = float64(split.Over) / FastSlowDenominator
		stats.Bounce[browser] = split
	}

	return stats
}

// MeanOffset returns the mean offset for a (browser, event) pair, or
// false when no valid samples exist for it.
func (s *StudyStats) MeanOffset(browser, event string) (float64, bool) {
	summary, ok := s.Summaries[browser][event]
	if !ok {
		return 0, false
	}
	return summary.Mean, true
}

func orderBrowsers(counts map[string]int) []string {
	ordered := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(counts))

	for _, browser := range BrowserConfigurations {
		if counts[browser] > 0 {
			ordered = append(ordered, browser)
			seen[browser] = true
		}
	}

	var extra []string
	for browser := range counts {
		if !seen[browser] {
			extra = append(extra, browser)
		}
	}
	sort.Strings(extra)

	return append(ordered, extra...)
}

func summarize(offsets []float64) Summary {
	sorted := append([]float64(nil), offsets...)
	sort.Float64s(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}

	return Summary{
		Count:  len(sorted),
		Mean:   total / float64(len(sorted)),
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// median expects a sorted, non-empty slice.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
