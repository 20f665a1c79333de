package main

import (
	"os"

	"polybench/logger"
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
