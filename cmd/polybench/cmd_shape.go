package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"polybench/polygen"
)

func runShape(cmd *cobra.Command, args []string) error {
	m, n, err := polygen.ChooseShape(delta, seedOpts(cmd)...)
	if err != nil {
		return err
	}
	fmt.Printf("delta=%d  m=%d  n=%d\n", delta, m, n)
	return nil
}
