package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/montage-io/montage"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that a timeline document loads and its ranges compute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := montage.ReadFromFile(args[0])
			if err != nil {
				return err
			}

			problems := 0
			tracks := tl.Tracks()
			for i := 0; i < tracks.ChildrenCount(); i++ {
				child, err := tracks.ChildAt(i)
				if err != nil {
					return err
				}
				comp, ok := child.(montage.Composition)
				if !ok {
					continue
				}
				if _, err := comp.TrimmedRange(); err != nil && !errors.Is(err, montage.ErrEmptyComposition) {
					fmt.Printf("track %q: %v\n", child.Name(), err)
					problems++
				}
			}

			it := tl.FindClips()
			for {
				clip, ok := it.Next()
				if !ok {
					break
				}
				if _, err := clip.RangeInParent(); err != nil {
					fmt.Printf("clip %q: %v\n", clip.Name(), err)
					problems++
				}
				if _, ok := clip.ActiveMediaReference(); !ok {
					slog.Debug("clip has no media reference", "clip", clip.Name())
				}
			}

			// Round-trip: the document must re-serialize losslessly.
			if _, err := tl.ToJSONString(); err != nil {
				fmt.Printf("serialize: %v\n", err)
				problems++
			}

			if problems > 0 {
				return fmt.Errorf("%d problem(s) found", problems)
			}
			fmt.Printf("%s: OK (%d clips)\n", args[0], it.Count())
			return nil
		},
	}
}
