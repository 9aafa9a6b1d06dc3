package main

import (
	"errors"
	"fmt"

	"github.com/montage-io/montage"
	"github.com/spf13/cobra"
)

func newDurationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "duration FILE",
		Short: "Print a timeline document's total duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := montage.ReadFromFile(args[0])
			if err != nil {
				return err
			}
			d, err := tl.Duration()
			if errors.Is(err, montage.ErrEmptyComposition) {
				fmt.Println("empty timeline")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("%g frames @ %g fps (%.3fs)\n", d.Value, d.Rate, d.Seconds())
			return nil
		},
	}
}
