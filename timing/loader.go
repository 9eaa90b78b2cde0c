package timing

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
)

// MaxDatasetSize caps how much of the study CSV is read into memory.
// The full study (200 pages x 4 browsers x 10 runs) is well under a
// megabyte, so anything near this limit is not a study file.
const MaxDatasetSize = 256 * 1024 * 1024 // 256MB

// Dataset holds the raw study table plus metadata about the file it
// was loaded from. Records are immutable after load; normalization
// returns a new Table rather than touching them.
type Dataset struct {
	FilePath string
	FileSize int64
	FileHash string
	LoadTime time.Duration

	Records []RawRecord

	// SkippedRows counts malformed rows (wrong field count) that were
	// dropped during load.
	SkippedRows int
}

// LoadCSV reads an entire study CSV into memory, validates its header
// against the expected schema and maps raw browser labels to their
// display names. Cell-level problems (empty or malformed timestamps)
// are preserved as-is for the normalizer to deal with; only rows with
// a broken shape are skipped.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open study file: %w", err)
	}
	defer file.Close()

	return loadCSV(path, file)
}

func loadCSV(path string, reader io.Reader) (*Dataset, error) {
	startTime := time.Now()

	content, err := io.ReadAll(io.LimitReader(reader, MaxDatasetSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read study file: %w", err)
	}
	if int64(len(content)) > MaxDatasetSize {
		return nil, fmt.Errorf("study file exceeds maximum size of %d bytes", MaxDatasetSize)
	}

	csvReader := csv.NewReader(bytes.NewReader(content))
	csvReader.FieldsPerRecord = -1 // row shape is checked per-row below

	header, err := csvReader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("study file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if err := ValidateHeader(header); err != nil {
		return nil, err
	}

	// column name -> position, so the file may order columns freely
	columnIndex := make(map[string]int, len(header))
	for i, col := range header {
		columnIndex[col] = i
	}

	ds := &Dataset{
		FilePath: path,
		FileSize: int64(len(content)),
		FileHash: fmt.Sprintf("%x", xxhash.Sum64(content)),
		Records:  make([]RawRecord, 0, 1024),
	}

	for {
		row, err := csvReader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, csv.ErrQuote) || errors.Is(err, csv.ErrBareQuote) {
				ds.SkippedRows++
				slog.Debug("skipping malformed row", "error", err)
				continue
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		if len(row) < len(header) {
			ds.SkippedRows++
			slog.Debug("skipping short row", "fields", len(row), "expected", len(header))
			continue
		}

		record := RawRecord{
			Domain:     row[columnIndex[ColumnDomain]],
			Browser:    CanonicalBrowser(row[columnIndex[ColumnBrowser]]),
			LoadTime:   row[columnIndex[ColumnLoadTime]],
			Timestamps: make(map[string]string, len(EventColumns)),
		}
		for _, event := range EventColumns {
			record.Timestamps[event] = row[columnIndex[event]]
		}

		ds.Records = append(ds.Records, record)
	}

	ds.LoadTime = time.Since(startTime)
	return ds, nil
}
