package main

import (
	"fmt"

	"github.com/montage-io/montage"
	"github.com/spf13/cobra"
)

func newClipsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clips FILE",
		Short: "List every clip in a timeline document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := montage.ReadFromFile(args[0])
			if err != nil {
				return err
			}

			var rows [][]string
			it := tl.FindClips()
			for {
				clip, ok := it.Next()
				if !ok {
					break
				}
				sr := clip.SourceRange()
				media := "-"
				if ref, ok := clip.ActiveMediaReference(); ok {
					if ext, ok := ref.(*montage.ExternalReference); ok {
						media = ext.TargetURL()
					} else {
						media = ref.Name()
					}
				}
				rows = append(rows, []string{
					clip.Name(),
					fmt.Sprintf("%g", sr.StartTime.Value),
					fmt.Sprintf("%g", sr.Duration.Value),
					fmt.Sprintf("%g", sr.Duration.Rate),
					media,
				})
			}
			fmt.Printf("%d clips\n", it.Count())
			fmt.Println(renderTable(
				[]string{"Clip", "Source start", "Duration", "Rate", "Media"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
