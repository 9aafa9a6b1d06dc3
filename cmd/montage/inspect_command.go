package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/montage-io/montage"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize a timeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := montage.ReadFromFile(args[0])
			if err != nil {
				return err
			}
			slog.Debug("loaded timeline", "file", args[0], "name", tl.Name())

			fmt.Printf("Timeline: %s\n", tl.Name())
			if gs, ok := tl.GlobalStartTime(); ok {
				fmt.Printf("Global start: %g @ %g fps\n", gs.Value, gs.Rate)
			}
			if d, err := tl.Duration(); err == nil {
				fmt.Printf("Duration: %g frames (%.2fs)\n", d.Value, d.Seconds())
			}

			var rows [][]string
			tracks := tl.Tracks()
			for i := 0; i < tracks.ChildrenCount(); i++ {
				child, err := tracks.ChildAt(i)
				if err != nil {
					return err
				}
				track, ok := child.(*montage.Track)
				if !ok {
					rows = append(rows, []string{child.Name(), "-", "-", "-"})
					continue
				}
				duration := "empty"
				if tr, err := track.TrimmedRange(); err == nil {
					duration = fmt.Sprintf("%g", tr.Duration.Value)
				} else if !errors.Is(err, montage.ErrEmptyComposition) {
					return err
				}
				rows = append(rows, []string{
					track.Name(),
					string(track.Kind()),
					fmt.Sprintf("%d", track.ChildrenCount()),
					duration,
				})
			}
			fmt.Println(renderTable(
				[]string{"Track", "Kind", "Children", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}
