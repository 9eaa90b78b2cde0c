package report

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/onkeltom/page-load-comparison-analysis/timing"
)

const (
	chartWidth  = "1280px"
	chartHeight = "560px"
)

// buildEventMeansChart is the main comparison chart: one bar series per
// browser configuration, x axis is the surviving event columns in
// chronological order, y axis is the mean offset from navigationStart.
func buildEventMeansChart(stats *timing.StudyStats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Mean time from navigation start",
			Subtitle: "performance.timing events in chronological order, milliseconds",
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 40, Interval: "0"}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)

	bar.SetXAxis(stats.Events)
	for _, browser := range stats.Browsers {
		data := make([]opts.BarData, 0, len(stats.Events))
		for _, event := range stats.Events {
			if mean, ok := stats.MeanOffset(browser, event); ok {
				data = append(data, opts.BarData{Value: round1(mean)})
			} else {
				data = append(data, opts.BarData{Value: nil})
			}
		}
		bar.AddSeries(browser, data)
	}

	return bar
}

// buildLoadMedianChart compares the median full page load (the
// loadEventEnd offset) across browsers.
func buildLoadMedianChart(stats *timing.StudyStats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Median full page load",
			Subtitle: "loadEventEnd offset per browser configuration, milliseconds",
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ms"}),
	)

	data := make([]opts.BarData, 0, len(stats.Browsers))
	for _, browser := range stats.Browsers {
		if summary, ok := stats.Summaries[browser]["loadEventEnd"]; ok {
			data = append(data, opts.BarData{Value: round1(summary.Median)})
		} else {
			data = append(data, opts.BarData{Value: nil})
		}
	}

	bar.SetXAxis(stats.Browsers)
	bar.AddSeries("median loadEventEnd", data)

	return bar
}

// buildBounceChart splits page loads per browser at the bounce
// threshold, stacked so the bar height is the total number of loads
// that produced a loadEventEnd offset.
func buildBounceChart(stats *timing.StudyStats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Page loads against the bounce threshold",
			Subtitle: fmt.Sprintf("loads completing within vs beyond %.0f ms", timing.BounceThresholdMillis),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
	)

	within := make([]opts.BarData, 0, len(stats.Browsers))
	over := make([]opts.BarData, 0, len(stats.Browsers))
	for _, browser := range stats.Browsers {
		split := stats.Bounce[browser]
		within = append(within, opts.BarData{Value: split.Within})
		over = append(over, opts.BarData{Value: split.Over})
	}

	bar.SetXAxis(stats.Browsers)
	bar.AddSeries(timing.LoadWithinThreshold, within,
		charts.WithBarChartOpts(opts.BarChart{Stack: "bounce"}))
	bar.AddSeries(timing.LoadOverThreshold, over,
		charts.WithBarChartOpts(opts.BarChart{Stack: "bounce"}))

	return bar
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
