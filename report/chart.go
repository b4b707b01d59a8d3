package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/yyyoichi/studygroup"
)

// Render writes an HTML page with the fuzzy GPA and fuzzy total distributions and the
// per-group means of GPA and fuzzy total.
func Render(w io.Writer, res *studygroup.Result) error {
	fuzzyGPA := make([]float64, len(res.Records))
	fuzzyTotal := make([]float64, len(res.Records))
	for i, r := range res.Records {
		fuzzyGPA[i] = r.FuzzyGPA
		fuzzyTotal[i] = r.FuzzyTotal
	}

	page := components.NewPage()
	page.AddCharts(
		histogramChart("Distribusi Fuzzy IPK", "Fuzzy IPK", NewHistogram(fuzzyGPA, DefaultBins)),
		histogramChart("Distribusi Fuzzy Total", "Fuzzy Total", NewHistogram(fuzzyTotal, DefaultBins)),
	)
	if summaries := Summarize(res); summaries != nil {
		page.AddCharts(
			meanChart("Rata-rata IPK per Kelompok", "Rata-rata IPK", 4, summaries, func(s Summary) float64 { return s.MeanGPA }),
			meanChart("Rata-rata Fuzzy Total", "Rata-rata Fuzzy", 1, summaries, func(s Summary) float64 { return s.MeanFuzzyTotal }),
		)
	}
	return page.Render(w)
}

func histogramChart(title, xName string, h Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Jumlah Mahasiswa", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	items := make([]opts.BarData, len(h.Counts))
	for i, c := range h.Counts {
		items[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(h.Labels()).AddSeries(xName, items)
	return bar
}

func meanChart(title, yName string, yMax float64, summaries []Summary, value func(Summary) float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Kelompok"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Min: 0, Max: yMax}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	labels := make([]string, len(summaries))
	items := make([]opts.BarData, len(summaries))
	for i, s := range summaries {
		labels[i] = fmt.Sprint(s.GroupID)
		items[i] = opts.BarData{Value: value(s)}
	}
	bar.SetXAxis(labels).AddSeries(yName, items)
	return bar
}
