package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"polybench/logger"
	"polybench/polygen"
)

// runSweep generates trials instances per difficulty and writes a JSON stats
// summary plus an HTML histogram page, the offline companion used when
// hand-calibrating the alpha/beta ranges and the Dirichlet concentration.
func runSweep(cmd *cobra.Command, args []string) error {
	deltas, err := parseDeltas(sweepDeltas)
	if err != nil {
		return err
	}
	if sweepTrials < 1 {
		return fmt.Errorf("trials must be >= 1, got %d", sweepTrials)
	}
	if err := os.MkdirAll(sweepOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	log := logger.Logger().With().Str("component", "sweep").Logger()

	outStats := make(map[string]summaryStats)
	page := components.NewPage()

	for _, d := range deltas {
		var ms, ns, degrees []float64
		for t := 0; t < sweepTrials; t++ {
			var opts []polygen.GenOption
			if cmd.Flags().Changed("seed") {
				opts = append(opts, polygen.WithSeed(seed+int64(t)))
			}
			inst, err := polygen.Generate(d, opts...)
			if err != nil {
				return fmt.Errorf("delta=%d trial=%d: %w", d, t, err)
			}
			ms = append(ms, float64(inst.M))
			ns = append(ns, float64(inst.N))
			for _, deg := range inst.RowDegrees() {
				degrees = append(degrees, float64(deg))
			}
		}
		log.Info().Int("delta", d).Int("trials", sweepTrials).Msg("sweep point done")

		for _, series := range []struct {
			name string
			vals []float64
		}{
			{fmt.Sprintf("m (delta=%d)", d), ms},
			{fmt.Sprintf("n (delta=%d)", d), ns},
			{fmt.Sprintf("row degrees (delta=%d)", d), degrees},
		} {
			st := computeStats(series.vals)
			outStats[series.name] = st
			page.AddCharts(newHistogramChart(series.name, series.vals, st))
		}
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(sweepOut, fmt.Sprintf("shape_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		return fmt.Errorf("save stats: %w", err)
	}

	htmlPath := filepath.Join(sweepOut, fmt.Sprintf("shape_histograms_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		return fmt.Errorf("create html: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	fmt.Println("Histogram page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
	return nil
}

func parseDeltas(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 1 {
			return nil, fmt.Errorf("invalid delta %q: must be a positive integer", part)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no deltas given")
	}
	return out, nil
}
