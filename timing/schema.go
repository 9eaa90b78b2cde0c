package timing

import "fmt"

// Identifying columns that precede the timestamp event columns in the
// study CSV. LoadTime is carried through but never used downstream.
const (
	ColumnDomain   = "Domain"
	ColumnBrowser  = "Browser"
	ColumnLoadTime = "Load Time"
)

// ReferenceEvent is the zero-point for all derived offsets. Every other
// event column is expressed relative to it.
const ReferenceEvent = "navigationStart"

// EventColumns is the fixed performance.timing event set, in
// chronological order. The loader checks this schema against the CSV
// header and fails fast when a column is missing, so downstream code
// never has to discover columns by naming convention.
var EventColumns = []string{
	"navigationStart",
	"redirectStart",
	"redirectEnd",
	"fetchStart",
	"domainLookupStart",
	"domainLookupEnd",
	"connectStart",
	"connectEnd",
	"secureConnectionStart",
	"requestStart",
	"responseStart",
	"responseEnd",
	"domLoading",
	"domInteractive",
	"domContentLoadedEventStart",
	"domContentLoadedEventEnd",
	"domComplete",
	"loadEventStart",
	"loadEventEnd",
	"unloadEventStart",
	"unloadEventEnd",
}

// browserLabels maps the raw configuration labels used during capture
// to the display names used everywhere downstream.
var browserLabels = map[string]string{
	"chrome_normal":   "Chrome",
	"chrome_private":  "Chrome Incognito",
	"firefox_normal":  "Firefox Quantum",
	"firefox_private": "Firefox Quantum Private Browsing",
}

// BrowserConfigurations lists the four display names in a stable
// presentation order.
var BrowserConfigurations = []string{
	"Chrome",
	"Chrome Incognito",
	"Firefox Quantum",
	"Firefox Quantum Private Browsing",
}

// CanonicalBrowser translates a raw capture label into its display
// name. Labels outside the known set pass through unchanged.
func CanonicalBrowser(label string) string {
	if mapped, ok := browserLabels[label]; ok {
		return mapped
	}
	return label
}

// RawBrowserLabel is the inverse of CanonicalBrowser, used when writing
// rows back out in the capture format.
func RawBrowserLabel(name string) string {
	for raw, display := range browserLabels {
		if display == name {
			return raw
		}
	}
	return name
}

// Header returns the full CSV header in schema order: the three
// identifying columns followed by the event columns.
func Header() []string {
	header := make([]string, 0, 3+len(EventColumns))
	header = append(header, ColumnDomain, ColumnBrowser, ColumnLoadTime)
	header = append(header, EventColumns...)
	return header
}

// ValidateHeader checks that every expected column is present and
// returns a descriptive error naming the first missing one.
func ValidateHeader(header []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	for _, col := range Header() {
		if !present[col] {
			return fmt.Errorf("input is missing required column %q", col)
		}
	}

	return nil
}
