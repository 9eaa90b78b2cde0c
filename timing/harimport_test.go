package timing

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHAR = `{
  "log": {
    "version": "1.2",
    "creator": {"name": "browser", "version": "1.0"},
    "pages": [
      {
        "startedDateTime": "2018-03-12T09:00:00Z",
        "id": "page_1",
        "title": "http://a.com",
        "pageTimings": {"onContentLoad": 1200.5, "onLoad": 2500}
      },
      {
        "startedDateTime": "2018-03-12T09:01:00Z",
        "id": "page_2",
        "title": "",
        "pageTimings": {"onLoad": 800}
      },
      {
        "startedDateTime": "not-a-date",
        "id": "page_3",
        "title": "http://broken.com",
        "pageTimings": {"onLoad": 100}
      }
    ],
    "entries": []
  }
}`

func writeTestHAR(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.har")
	require.NoError(t, os.WriteFile(path, []byte(testHAR), 0644))
	return path
}

func TestImportHAR_Basic(t *testing.T) {
	records, err := ImportHAR(writeTestHAR(t), "chrome_normal")
	require.NoError(t, err)

	// the page with a broken start date is dropped
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "http://a.com", first.Domain)
	assert.Equal(t, "Chrome", first.Browser)
	assert.NotEmpty(t, first.Timestamps[ReferenceEvent])
	assert.NotEmpty(t, first.Timestamps["domContentLoadedEventEnd"])
	assert.NotEmpty(t, first.Timestamps["loadEventEnd"])
	assert.Equal(t, "2500ms", first.LoadTime)

	// untitled pages fall back to their id
	assert.Equal(t, "page_2", records[1].Domain)
	assert.Empty(t, records[1].Timestamps["domContentLoadedEventEnd"])
}

func TestImportHAR_OffsetsSurviveNormalization(t *testing.T) {
	records, err := ImportHAR(writeTestHAR(t), "firefox_private")
	require.NoError(t, err)

	table := Normalize(datasetOf(records...))

	offset, ok := table.Records[0].Offset("loadEventEnd")
	require.True(t, ok)
	assert.InDelta(t, 2500.0, offset, 0.001)

	dcl, ok := table.Records[0].Offset("domContentLoadedEventEnd")
	require.True(t, ok)
	assert.InDelta(t, 1200.5, dcl, 0.001)
}

func TestImportHAR_NoPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.har")
	require.NoError(t, os.WriteFile(path, []byte(`{"log":{"version":"1.2","creator":{"name":"x","version":"1"},"entries":[]}}`), 0644))

	_, err := ImportHAR(path, "chrome_normal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no pages")
}

func TestImportHAR_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.har")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := ImportHAR(path, "chrome_normal")
	require.Error(t, err)
}

func TestAppendToCSV_CreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.csv")

	records, err := ImportHAR(writeTestHAR(t), "chrome_normal")
	require.NoError(t, err)

	// first write creates the file with a header
	require.NoError(t, AppendToCSV(path, records[:1]))
	// second write appends rows only
	require.NoError(t, AppendToCSV(path, records[1:]))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "header plus two data rows")
	assert.Equal(t, Header(), rows[0])
	assert.Equal(t, "chrome_normal", rows[1][1], "browser written back in capture format")

	// and the round trip loads cleanly
	ds, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 2)
	assert.Equal(t, "Chrome", ds.Records[0].Browser)
}

func TestWriteCSV_NoHeader(t *testing.T) {
	records, err := ImportHAR(writeTestHAR(t), "chrome_normal")
	require.NoError(t, err)

	var builder strings.Builder
	require.NoError(t, WriteCSV(&builder, records[:1], false))

	rows, err := csv.NewReader(strings.NewReader(builder.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "http://a.com", rows[0][0])
}
