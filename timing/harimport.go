package timing

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pb33f/harhar"
)

// ImportHAR reads a HAR capture and converts each recorded page into a
// study row. HAR page timings only cover the DOMContentLoaded and load
// events, so imported rows carry navigationStart (the page's
// startedDateTime as epoch milliseconds), domContentLoadedEventEnd and
// loadEventEnd; every other event cell stays empty.
//
// browserLabel is the raw capture label (e.g. "chrome_normal") the HAR
// was recorded under, since HAR files do not encode the study's
// browser configurations.
func ImportHAR(path, browserLabel string) ([]RawRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HAR file: %w", err)
	}

	var har harhar.HAR
	if err := json.Unmarshal(content, &har); err != nil {
		return nil, fmt.Errorf("failed to parse HAR file: %w", err)
	}

	if len(har.Log.Pages) == 0 {
		return nil, fmt.Errorf("HAR file contains no pages")
	}

	records := make([]RawRecord, 0, len(har.Log.Pages))
	for _, page := range har.Log.Pages {
		start, err := time.Parse(time.RFC3339, page.Start)
		if err != nil {
			// a page without a parsable start has no reference point
			continue
		}

		navigationStart := float64(start.UnixMilli())
		record := RawRecord{
			Domain:     pageDomain(page),
			Browser:    CanonicalBrowser(browserLabel),
			Timestamps: make(map[string]string, len(EventColumns)),
		}
		for _, event := range EventColumns {
			record.Timestamps[event] = ""
		}
		record.Timestamps[ReferenceEvent] = formatTimestamp(navigationStart)

		if page.PageTimings.OnContentLoad > 0 {
			record.Timestamps["domContentLoadedEventEnd"] =
				formatTimestamp(navigationStart + page.PageTimings.OnContentLoad)
		}
		if page.PageTimings.OnLoad > 0 {
			record.Timestamps["loadEventEnd"] =
				formatTimestamp(navigationStart + page.PageTimings.OnLoad)
			record.LoadTime = fmt.Sprintf("%.0fms", page.PageTimings.OnLoad)
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("HAR file contains no pages with usable timings")
	}

	return records, nil
}

// AppendToCSV appends study rows to a CSV file in schema column order,
// writing the header first when the file does not exist yet. Browser
// names are written back in the raw capture format so the file stays
// consistent with recorded studies.
func AppendToCSV(path string, records []RawRecord) error {
	_, statErr := os.Stat(path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	return WriteCSV(file, records, writeHeader)
}

// WriteCSV writes study rows in schema column order, optionally
// preceded by the header row.
func WriteCSV(w io.Writer, records []RawRecord, writeHeader bool) error {
	writer := csv.NewWriter(w)

	if writeHeader {
		if err := writer.Write(Header()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for _, record := range records {
		row := make([]string, 0, 3+len(EventColumns))
		row = append(row, record.Domain, RawBrowserLabel(record.Browser), record.LoadTime)
		for _, event := range EventColumns {
			row = append(row, record.Timestamps[event])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func pageDomain(page harhar.Page) string {
	if page.Title != "" {
		return page.Title
	}
	return page.ID
}

func formatTimestamp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
