package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lyric-deck/internal/lyrics"
	"github.com/nguyentantai21042004/lyric-deck/internal/processor"
	"github.com/nguyentantai21042004/lyric-deck/pkg/executor"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultDeckName = "Lyrics"

type convertOptions struct {
	groupSize string
	fontSize  int
	name      string
	output    string
	sheet     bool
	pdf       bool
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert lyrics from a file (or stdin) into a .pptx deck",
		Example: `  lyricdeck convert song.txt
  lyricdeck convert -g 4 -s 44 -n "Amazing Grace" song.txt
  pbpaste | lyricdeck convert --sheet -n Hymn`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, a, opts, args)
		},
	}

	f := cmd.Flags()
	addGroupSizeFlag(f, &opts.groupSize)
	f.IntVarP(&opts.fontSize, "font-size", "s", 0, "font size in points (default from config)")
	f.StringVarP(&opts.name, "name", "n", "", "output base name (default: input file name)")
	f.StringVarP(&opts.output, "output", "o", "", "output directory (default from config)")
	f.BoolVar(&opts.sheet, "sheet", false, "also write a .docx lyric sheet")
	f.BoolVar(&opts.pdf, "pdf", false, "also export a PDF with the office suite")

	return cmd
}

func runConvert(cmd *cobra.Command, a *app, opts convertOptions, args []string) error {
	text, inputName, err := readLyrics(cmd, args)
	if err != nil {
		return err
	}

	groupSize, err := groupSizeFlag(cmd, opts.groupSize, a.cfg.Deck.GroupSize)
	if err != nil {
		return err
	}

	req := processor.Request{
		Text:       text,
		Name:       firstNonEmpty(opts.name, inputName, defaultDeckName),
		GroupSize:  groupSize,
		FontSize:   a.cfg.Deck.FontSize,
		OutputDir:  firstNonEmpty(opts.output, a.cfg.Paths.Output),
		LyricSheet: opts.sheet || a.cfg.Deck.LyricSheet,
		PDF:        opts.pdf || a.cfg.Deck.PDF,
	}
	if cmd.Flags().Changed("font-size") {
		if opts.fontSize <= 0 {
			return fmt.Errorf("font size must be positive, got %d", opts.fontSize)
		}
		req.FontSize = opts.fontSize
	}

	proc := processor.New(a.cfg, executor.New(), a.log)
	res, err := proc.Convert(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d slides)\n", res.Deck, len(res.Chunks))
	if res.Sheet != "" {
		fmt.Fprintln(out, res.Sheet)
	}
	if res.PDF != "" {
		fmt.Fprintln(out, res.PDF)
	}

	return nil
}

// readLyrics reads the file named in args, or stdin when there is none or
// it is "-". The returned name is the file's base name without extension.
func readLyrics(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return processor.NormalizeNewlines(string(data)), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read lyrics: %w", err)
	}

	base := filepath.Base(args[0])
	return processor.NormalizeNewlines(string(data)), strings.TrimSuffix(base, filepath.Ext(base)), nil
}

func addGroupSizeFlag(f *pflag.FlagSet, value *string) {
	f.StringVarP(value, "group-size", "g", "", "lines per slide, 1-4 (default from config)")
}

// groupSizeFlag validates an explicit --group-size, else uses the configured one
func groupSizeFlag(cmd *cobra.Command, value string, fallback int) (int, error) {
	if !cmd.Flags().Changed("group-size") {
		return fallback, nil
	}
	return lyrics.ParseGroupSize(value)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
