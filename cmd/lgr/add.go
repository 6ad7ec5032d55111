package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-litex-lgr/lgr/accel"
	"github.com/ajroetker/go-litex-lgr/lgr/csr"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two integers on the adder peripheral (bus bring-up check)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}
		b, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[1], err)
		}

		m := csr.AdderMap{Base: 0}
		bus, err := openBus(m.Size())
		if err != nil {
			return err
		}
		if bus == nil {
			bus = csr.NewSimAdder(m)
		}

		adder := accel.NewAdder(bus, m)
		fmt.Printf("%d + %d = %d\n", a, b, adder.Add(uint32(a), uint32(b)))
		return nil
	},
}
