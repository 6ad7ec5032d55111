package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr/dot"
)

var (
	flagInputs  string
	flagWeights string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run one affine prediction through the selected backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := parseFloats(flagInputs)
		if err != nil {
			return err
		}
		weights, err := parseFloats(flagWeights)
		if err != nil {
			return err
		}

		lane, err := buildLane()
		if err != nil {
			return err
		}

		p := dot.NewPredictor(dot.New(lane))
		raw, err := p.Predict(inputs, weights, flagBias)
		if err != nil {
			return err
		}

		fmt.Printf("raw prediction: %f\n", raw)
		fmt.Printf("sigmoid:        %f\n", dot.Sigmoid(raw))
		return nil
	},
}

func init() {
	predictCmd.Flags().StringVar(&flagInputs, "inputs", "",
		"comma-separated feature values")
	predictCmd.Flags().StringVar(&flagWeights, "weights", "",
		"comma-separated weight values")
	predictCmd.Flags().Float64Var(&flagBias, "bias", 0, "bias term")
	predictCmd.MarkFlagRequired("inputs")
	predictCmd.MarkFlagRequired("weights")
}
