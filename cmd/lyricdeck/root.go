package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/nguyentantai21042004/lyric-deck/internal/config"
	"github.com/nguyentantai21042004/lyric-deck/internal/logger"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "config.yaml"

// app holds what every subcommand needs once the config is loaded
type app struct {
	cfgFile string
	cfg     *config.Config
	log     logger.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "lyricdeck",
		Short: "Turn lyric text into slide decks",
		Long: `lyricdeck converts lyrics into a PowerPoint deck with one slide per
group of lines: white bold text centred on a dark background.

Lines containing [ or ] (section labels such as [Chorus]) are dropped and
lines longer than 50 characters are split in two before grouping.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", defaultConfigFile, "config file (yaml)")

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newChunkCmd(a))
	cmd.AddCommand(newWatchCmd(a))

	return cmd
}

// loadConfig reads the config file; the default file may be absent, an
// explicitly named one may not
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config"):
		cfg = config.Default()
	default:
		return fmt.Errorf("load config: %w", err)
	}

	a.cfg = cfg
	a.log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	return nil
}
