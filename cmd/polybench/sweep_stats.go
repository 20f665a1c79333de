package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[n-1]
	median := quantileSorted(cp, 0.5)
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	return summaryStats{
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    minv,
		Q1:     q1,
		Median: median,
		Q3:     q3,
		Max:    maxv,
		IQR:    q3 - q1,
	}
}

// quantileSorted interpolates the q-quantile of an ascending slice.
func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

// histogramBins sizes the histogram for small integer-valued samples: one
// bin per distinct value up to a cap.
func histogramBins(values []float64) int {
	if len(values) < 2 {
		return 1
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	span := int(cp[len(cp)-1]-cp[0]) + 1
	if span < 1 {
		span = 1
	}
	if span > 200 {
		span = 200
	}
	return span
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := histogramBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.1f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f",
		stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("count", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
