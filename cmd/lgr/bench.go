package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr/bench"
)

var (
	flagIterations int
	flagSize       int
	flagBias       float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time repeated predictions via CPU float, CPU fixed and accelerator paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		lane, err := buildLane()
		if err != nil {
			return err
		}

		size := flagSize
		if size <= 0 {
			size = lane.Width()
		}
		inputs := make([]float64, size)
		weights := make([]float64, size)
		for i := range inputs {
			inputs[i] = 0.03
			weights[i] = 938.237861251353 / float64(size)
		}

		fmt.Printf("Benchmarking %d predictions over %d features (%d lanes, Q.%d)\n\n",
			flagIterations, size, lane.Width(), lane.FracBits())

		results, err := bench.Compare(flagIterations, lane, inputs, weights,
			152.91886182616113, nil)
		if err != nil {
			return err
		}
		bench.Report(os.Stdout, results)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&flagIterations, "iterations", "n", 100000,
		"predictions per path")
	benchCmd.Flags().IntVar(&flagSize, "size", 0,
		"feature vector length (default: one lane width)")
}
