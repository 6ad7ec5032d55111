package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the selected backend and environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := buildLane(); err != nil {
			return err
		}
		fmt.Printf("GOOS: %s\n", runtime.GOOS)
		fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
		fmt.Printf("Backend: %s\n", lgr.CurrentName())
		fmt.Printf("Lanes: %d\n", lgr.CurrentLanes())
		fmt.Printf("LGR_NO_ACCEL: %v\n", lgr.NoAccelEnv())
		if flagMMIO != "" {
			fmt.Printf("CSR window: %s @ 0x%x\n", flagMMIO, flagBase)
		} else {
			fmt.Println("CSR window: simulated")
		}
		return nil
	},
}
