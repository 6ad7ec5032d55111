package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr"
	"github.com/ajroetker/go-litex-lgr/lgr/accel"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the selected backend against known vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		lane, err := buildLane()
		if err != nil {
			return err
		}
		fmt.Printf("backend: %s, %d lanes, Q.%d\n",
			lgr.CurrentName(), lane.Width(), lane.FracBits())
		if err := accel.SelfTest(lane); err != nil {
			return err
		}
		fmt.Println("self test passed")
		return nil
	},
}
