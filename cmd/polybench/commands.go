package main

import (
	"github.com/spf13/cobra"

	"polybench/polygen"
)

// --- Global Command Variables ---
var (
	delta    int
	seed     int64
	coeffMin float64
	coeffMax float64
	realCoef bool
	verbose  bool

	sweepDeltas string
	sweepTrials int
	sweepOut    string

	rootCmd = &cobra.Command{
		Use:   "polybench",
		Short: "Generate polynomial benchmark instances with exact baseline difficulty",
		Long: `polybench generates random multivariate polynomials whose naive-evaluation
constraint cost equals a requested difficulty delta exactly, as comparable
benchmark inputs for circuit-compiler optimization studies.`,
		SilenceUsage: true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate one instance and print it with a verification line",
		RunE:  runGenerate,
	}

	shapeCmd = &cobra.Command{
		Use:   "shape",
		Short: "Run shape selection alone, printing the chosen (m, n)",
		RunE:  runShape,
	}

	sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Generate many instances per difficulty and write stats + histograms",
		RunE:  runSweep,
	}
)

func init() {
	generateCmd.Flags().IntVar(&delta, "delta", 0, "difficulty parameter (target baseline constraint count)")
	generateCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducibility")
	generateCmd.Flags().Float64Var(&coeffMin, "coeff-min", -10, "minimum coefficient value")
	generateCmd.Flags().Float64Var(&coeffMax, "coeff-max", 10, "maximum coefficient value")
	generateCmd.Flags().BoolVar(&realCoef, "real", false, "draw real-valued coefficients instead of integers")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output including algorithm steps")
	_ = generateCmd.MarkFlagRequired("delta")

	shapeCmd.Flags().IntVar(&delta, "delta", 0, "difficulty parameter")
	shapeCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducibility")
	_ = shapeCmd.MarkFlagRequired("delta")

	sweepCmd.Flags().StringVar(&sweepDeltas, "deltas", "5,15,50", "comma-separated difficulty grid")
	sweepCmd.Flags().IntVar(&sweepTrials, "trials", 100, "instances per difficulty")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "base seed; trial i for a given delta uses seed+i")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "sweep_reports", "output directory for reports")

	rootCmd.AddCommand(generateCmd, shapeCmd, sweepCmd)
}

// seedOpts translates the --seed flag into generator options, only when the
// caller actually set it: an untouched flag means a fresh random stream.
func seedOpts(cmd *cobra.Command) []polygen.GenOption {
	if cmd.Flags().Changed("seed") {
		return []polygen.GenOption{polygen.WithSeed(seed)}
	}
	return nil
}
