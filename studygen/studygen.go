// Package studygen generates synthetic page load study datasets for
// testing the pipeline without a real browser capture run. Output is a
// valid study CSV, including the warts of real data: empty cells,
// missing redirect phases and the occasional clock skew anomaly.
package studygen

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

// Options configures study generation.
type Options struct {
	Domains     int     // number of pages to simulate
	Runs        int     // measurement runs per (page, browser)
	Seed        int64   // random seed for reproducibility (0 = use time)
	MissingRate float64 // probability an optional cell is left empty
	AnomalyRate float64 // probability a cell lands before navigationStart
}

// DefaultOptions matches the shape of the original study: 200 pages,
// 4 browsers, 10 runs.
var DefaultOptions = Options{
	Domains:     200,
	Runs:        10,
	MissingRate: 0.02,
	AnomalyRate: 0.01,
}

// Result describes a generated dataset.
type Result struct {
	OutputPath string
	Rows       int
}

// per-browser slowdown applied to every phase, so the comparison
// charts show a spread instead of four identical bars
var browserSpeed = map[string]float64{
	"chrome_normal":   1.0,
	"chrome_private":  1.08,
	"firefox_normal":  1.18,
	"firefox_private": 1.3,
}

// GenerateToFile generates a study and writes it to path.
func GenerateToFile(path string, opts Options) (*Result, error) {
	records := GenerateRecords(opts)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := timing.WriteCSV(file, records, true); err != nil {
		return nil, err
	}

	return &Result{OutputPath: path, Rows: len(records)}, nil
}

// GenerateRecords builds the synthetic rows in memory.
func GenerateRecords(opts Options) []timing.RawRecord {
	if opts.Domains == 0 {
		opts.Domains = DefaultOptions.Domains
	}
	if opts.Runs == 0 {
		opts.Runs = DefaultOptions.Runs
	}

	// local rng, the global one stays untouched
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	domains := generateDomains(opts.Domains, rng)
	base := time.Date(2018, 3, 12, 9, 0, 0, 0, time.UTC).UnixMilli()

	records := make([]timing.RawRecord, 0, opts.Domains*len(browserSpeed)*opts.Runs)
	for _, domain := range domains {
		for _, browser := range []string{"chrome_normal", "chrome_private", "firefox_normal", "firefox_private"} {
			for run := 0; run < opts.Runs; run++ {
				records = append(records, generateRow(domain, browser, base, opts, rng))
				base += int64(rng.Intn(30_000)) // runs happen over a session
			}
		}
	}

	return records
}

func generateRow(domain, browser string, navigationStart int64, opts Options, rng *rand.Rand) timing.RawRecord {
	speed := browserSpeed[browser]
	secure := strings.HasPrefix(domain, "https://")
	redirected := rng.Intn(5) == 0

	record := timing.RawRecord{
		Domain:     domain,
		Browser:    timing.CanonicalBrowser(browser),
		Timestamps: make(map[string]string, len(timing.EventColumns)),
	}
	for _, event := range timing.EventColumns {
		record.Timestamps[event] = ""
	}
	record.Timestamps[timing.ReferenceEvent] = strconv.FormatInt(navigationStart, 10)

	cursor := float64(navigationStart)
	phase := func(event string, minMillis, maxMillis float64) {
		cursor += (minMillis + rng.Float64()*(maxMillis-minMillis)) * speed
		record.Timestamps[event] = strconv.FormatFloat(cursor, 'f', 0, 64)
	}

	if redirected {
		phase("redirectStart", 1, 10)
		phase("redirectEnd", 30, 250)
	}
	phase("fetchStart", 0, 5)
	phase("domainLookupStart", 0, 3)
	phase("domainLookupEnd", 2, 120)
	phase("connectStart", 0, 2)
	if secure {
		phase("secureConnectionStart", 10, 80)
	}
	phase("connectEnd", 10, 150)
	phase("requestStart", 0, 3)
	phase("responseStart", 30, 600)
	phase("responseEnd", 10, 400)
	phase("domLoading", 1, 20)
	phase("domInteractive", 100, 1500)
	phase("domContentLoadedEventStart", 0, 5)
	phase("domContentLoadedEventEnd", 1, 150)
	phase("domComplete", 100, 3500)
	phase("loadEventStart", 0, 3)
	phase("loadEventEnd", 1, 100)

	// unload events belong to the previous page and rarely fire
	if rng.Intn(10) == 0 {
		record.Timestamps["unloadEventStart"] = strconv.FormatInt(navigationStart+int64(rng.Intn(5)), 10)
		record.Timestamps["unloadEventEnd"] = strconv.FormatInt(navigationStart+int64(rng.Intn(20)), 10)
	}

	loadMillis := cursor - float64(navigationStart)
	record.LoadTime = fmt.Sprintf("%.0fms", loadMillis)

	// drop and skew cells to exercise the normalizer's missing and
	// negative offset handling
	for _, event := range timing.EventColumns {
		if event == timing.ReferenceEvent || record.Timestamps[event] == "" {
			continue
		}
		if rng.Float64() < opts.MissingRate {
			record.Timestamps[event] = ""
		} else if rng.Float64() < opts.AnomalyRate {
			record.Timestamps[event] = strconv.FormatInt(navigationStart-int64(1+rng.Intn(500)), 10)
		}
	}

	return record
}
