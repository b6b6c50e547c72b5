package main

import (
	"fmt"

	"github.com/nguyentantai21042004/lyric-deck/internal/lyrics"
	"github.com/spf13/cobra"
)

const slideSeparator = "---"

func newChunkCmd(a *app) *cobra.Command {
	var groupSize string

	cmd := &cobra.Command{
		Use:   "chunk [file]",
		Short: "Print the slide text without rendering a deck",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readLyrics(cmd, args)
			if err != nil {
				return err
			}

			n, err := groupSizeFlag(cmd, groupSize, a.cfg.Deck.GroupSize)
			if err != nil {
				return err
			}

			chunks, err := lyrics.Chunk(text, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, c := range chunks {
				if i > 0 {
					fmt.Fprintln(out, slideSeparator)
				}
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}

	addGroupSizeFlag(cmd.Flags(), &groupSize)

	return cmd
}
