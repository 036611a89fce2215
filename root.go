package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/galaxy-visualization/internal/config"
	"github.com/iburimskiy/galaxy-visualization/internal/game"
	"github.com/iburimskiy/galaxy-visualization/internal/logging"
)

type rootOptions struct {
	configPath string
	audioFile  string
	noAudio    bool
	fullscreen bool
	logLevel   string
	seed       int64
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "galaxy",
		Short: "Audio-reactive starfield and galaxy visualizer",
		Long: "Renders a rotating starfield, a lit planet, a spiral swirl and five rings whose\n" +
			"colours follow the mid-band energy of the microphone or an audio file.\n" +
			"Move the mouse to orbit the scene.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			return game.Run(game.New(cfg, logger))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file path")
	cmd.Flags().StringVar(&opts.audioFile, "audio-file", "", "play and visualize this wav/mp3/flac file")
	cmd.Flags().BoolVar(&opts.noAudio, "no-audio", false, "do not open the microphone")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "start in full screen")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "starfield seed (0 uses the clock)")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, _, _, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("audio-file") {
		cfg.Audio.File = opts.audioFile
	}
	if flags.Changed("no-audio") {
		cfg.Audio.Enabled = !opts.noAudio
	}
	if flags.Changed("fullscreen") {
		cfg.Window.Fullscreen = opts.fullscreen
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("seed") {
		cfg.Scene.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
