// Package report renders the page load comparison study as a single
// self-contained HTML document: dataset metadata, per-browser summary
// tables and the comparison charts.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

// Metadata describes the dataset the report was generated from.
type Metadata struct {
	SourcePath  string
	FileSize    int64
	FileHash    string
	Rows        int
	SkippedRows int
	GeneratedAt time.Time
}

// Write renders the full report to path.
func Write(path string, meta Metadata, stats *timing.StudyStats) error {
	content, err := render(meta, stats)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func render(meta Metadata, stats *timing.StudyStats) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = "Page Load Comparison Study"
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		buildEventMeansChart(stats),
		buildLoadMedianChart(stats),
		buildBounceChart(stats),
	)

	var chartsBuf bytes.Buffer
	if err := page.Render(&chartsBuf); err != nil {
		return nil, fmt.Errorf("failed to render charts: %w", err)
	}

	header, err := renderHeader(meta, stats)
	if err != nil {
		return nil, err
	}

	// the echarts page renderer owns the document shell, so the
	// metadata and tables are spliced in right after <body>
	content := chartsBuf.Bytes()
	body := []byte("<body>")
	if !bytes.Contains(content, body) {
		return nil, fmt.Errorf("chart page has no body tag to attach the summary to")
	}

	return bytes.Replace(content, body, append(body, header...), 1), nil
}

type headerData struct {
	Meta     Metadata
	Rows     []summaryRow
	FileSize string
}

type summaryRow struct {
	Browser     string
	Samples     int
	MeanLoad    string
	MedianLoad  string
	Within      int
	Over        int
	WithinShare string
	OverShare   string
}

func renderHeader(meta Metadata, stats *timing.StudyStats) ([]byte, error) {
	data := headerData{
		Meta:     meta,
		FileSize: fmt.Sprintf("%.1f KB", float64(meta.FileSize)/1024),
	}

	for _, browser := range stats.Browsers {
		row := summaryRow{
			Browser:    browser,
			Samples:    stats.SampleCounts[browser],
			MeanLoad:   "-",
			MedianLoad: "-",
		}
		if summary, ok := stats.Summaries[browser]["loadEventEnd"]; ok {
			row.MeanLoad = fmt.Sprintf("%.1f ms", summary.Mean)
			row.MedianLoad = fmt.Sprintf("%.1f ms", summary.Median)
		}
		split := stats.Bounce[browser]
		row.Within = split.Within
		row.Over = split.Over
		row.WithinShare = fmt.Sprintf("%.1f%%", split.WithinShare*100)
		row.OverShare = fmt.Sprintf("%.1f%%", split.OverShare*100)
		data.Rows = append(data.Rows, row)
	}

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report header: %w", err)
	}

	return buf.Bytes(), nil
}

var headerTemplate = template.Must(template.New("header").Parse(`
<div style="font-family: sans-serif; max-width: 1280px; margin: 0 auto; padding: 16px;">
  <h1>Page Load Comparison Study</h1>
  <p>
    Source: <code>{{.Meta.SourcePath}}</code> ({{.FileSize}}, fingerprint <code>{{.Meta.FileHash}}</code>)<br>
    Rows: {{.Meta.Rows}}{{if .Meta.SkippedRows}} ({{.Meta.SkippedRows}} malformed rows skipped){{end}}<br>
    Generated: {{.Meta.GeneratedAt.Format "2006-01-02 15:04:05"}}
  </p>
  <table border="1" cellpadding="6" cellspacing="0">
    <tr>
      <th>Browser</th><th>Samples</th><th>Mean load</th><th>Median load</th>
      <th>Within 6 sec</th><th>Longer than 6 sec</th><th>Fast share</th><th>Slow share</th>
    </tr>
    {{range .Rows}}
    <tr>
      <td>{{.Browser}}</td><td>{{.Samples}}</td><td>{{.MeanLoad}}</td><td>{{.MedianLoad}}</td>
      <td>{{.Within}}</td><td>{{.Over}}</td><td>{{.WithinShare}}</td><td>{{.OverShare}}</td>
    </tr>
    {{end}}
  </table>
</div>
`))
