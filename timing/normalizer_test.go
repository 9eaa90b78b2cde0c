package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawRecord builds a RawRecord with the given timestamp cells, leaving
// every other event column empty.
func rawRecord(domain, browser string, cells map[string]string) RawRecord {
	record := RawRecord{
		Domain:     domain,
		Browser:    CanonicalBrowser(browser),
		Timestamps: make(map[string]string, len(EventColumns)),
	}
	for _, event := range EventColumns {
		record.Timestamps[event] = ""
	}
	for event, value := range cells {
		record.Timestamps[event] = value
	}
	return record
}

func datasetOf(records ...RawRecord) *Dataset {
	return &Dataset{Records: records}
}

func TestNormalize_BasicOffset(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "1000",
			"loadEventEnd":    "2500",
		}),
	))

	require.Len(t, table.Records, 1)

	derived := table.Records[0]
	assert.Equal(t, "Chrome", derived.Browser)

	offset, ok := derived.Offset("loadEventEnd")
	require.True(t, ok, "loadEventEnd offset should be present")
	assert.Equal(t, 1500.0, offset)
}

func TestNormalize_NegativeOffsetIsAbsent(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart":   "1000",
			"domainLookupStart": "900",
			"loadEventEnd":      "2500",
		}),
	))

	require.Len(t, table.Records, 1)

	_, ok := table.Records[0].Offset("domainLookupStart")
	assert.False(t, ok, "negative offset must be treated as missing")

	// the row itself still contributes its valid offsets
	_, ok = table.Records[0].Offset("loadEventEnd")
	assert.True(t, ok)
}

func TestNormalize_OffsetsNeverNegative(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "5000",
			"fetchStart":      "4000",
			"connectStart":    "5100",
			"responseStart":   "garbage",
			"loadEventEnd":    "9000",
		}),
		rawRecord("http://b.com", "firefox_normal", map[string]string{
			"navigationStart": "100",
			"fetchStart":      "100",
			"loadEventEnd":    "7000",
		}),
	))

	for _, record := range table.Records {
		for event, offset := range record.Offsets {
			assert.GreaterOrEqual(t, offset, 0.0, "offset for %s must be non-negative", event)
		}
	}
}

func TestNormalize_ReferenceColumnExcluded(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "1000",
			"loadEventEnd":    "2500",
		}),
	))

	assert.False(t, table.HasColumn(ReferenceEvent),
		"navigationStart must never appear as a derived column")
	for _, record := range table.Records {
		_, ok := record.Offset(ReferenceEvent)
		assert.False(t, ok)
	}
}

func TestNormalize_EmptyColumnDropped(t *testing.T) {
	// redirectStart is empty for every row, so it must vanish from
	// the derived schema
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "1000",
			"loadEventEnd":    "2500",
		}),
		rawRecord("http://b.com", "firefox_normal", map[string]string{
			"navigationStart": "2000",
			"loadEventEnd":    "4000",
		}),
	))

	assert.False(t, table.HasColumn("redirectStart"))
	assert.True(t, table.HasColumn("loadEventEnd"))
}

func TestNormalize_AllNegativeColumnDropped(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart":   "1000",
			"domainLookupStart": "500",
			"loadEventEnd":      "2500",
		}),
		rawRecord("http://b.com", "chrome_normal", map[string]string{
			"navigationStart":   "2000",
			"domainLookupStart": "1999",
			"loadEventEnd":      "4000",
		}),
	))

	assert.False(t, table.HasColumn("domainLookupStart"),
		"a column invalid for every record must be dropped")
}

func TestNormalize_BadReferenceKeepsRow(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "not-a-number",
			"loadEventEnd":    "2500",
		}),
		rawRecord("http://b.com", "chrome_normal", map[string]string{
			"navigationStart": "1000",
			"loadEventEnd":    "2500",
		}),
	))

	// the broken row stays in the table, it just has no offsets
	require.Len(t, table.Records, 2)
	assert.Empty(t, table.Records[0].Offsets)
	assert.Len(t, table.Records[1].Offsets, 1)
}

func TestNormalize_MissingReferenceKeepsRow(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"loadEventEnd": "2500",
		}),
	))

	require.Len(t, table.Records, 1)
	assert.Empty(t, table.Records[0].Offsets)
	assert.Empty(t, table.Columns, "no row produced an offset, schema should be empty")
}

func TestNormalize_ColumnsChronological(t *testing.T) {
	table := Normalize(datasetOf(
		rawRecord("http://a.com", "chrome_normal", map[string]string{
			"navigationStart": "1000",
			"loadEventEnd":    "3000",
			"fetchStart":      "1005",
			"responseStart":   "1500",
		}),
	))

	require.Equal(t, []string{"fetchStart", "responseStart", "loadEventEnd"}, table.Columns)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	record := rawRecord("http://a.com", "chrome_normal", map[string]string{
		"navigationStart": "1000",
		"loadEventEnd":    "2500",
	})
	ds := datasetOf(record)

	Normalize(ds)

	assert.Equal(t, "1000", ds.Records[0].Timestamps["navigationStart"])
	assert.Equal(t, "2500", ds.Records[0].Timestamps["loadEventEnd"])
}
