package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"netfield.klederson.com/internal/app"
	"netfield.klederson.com/internal/config"
	"netfield.klederson.com/internal/theme"
)

var (
	flagDemo     bool
	flagFPS      int
	flagSeed     int64
	flagTheme    string
	flagConfig   string
	flagTitle    string
	flagSubtitle string
	flagLog      string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "netfield",
		Short: "netfield - animated particle network for the terminal",
		Long: `netfield draws a drifting network of particles across the terminal.
Nearby particles are joined by faint links and the mouse pointer pulls
particles toward it while pushing the floating shapes away.

Needs a terminal with mouse reporting for pointer interaction.
Use --demo to move a synthetic pointer instead.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Drive the pointer along a synthetic path")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Target frames per second (default from settings)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed for particle placement (0 uses the clock)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "Theme to start with: dark or light (saved)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Settings file (default is the user config dir)")
	rootCmd.Flags().StringVar(&flagTitle, "title", "", "Heading typed into the menu bar")
	rootCmd.Flags().StringVar(&flagSubtitle, "subtitle", "", "Subheading typed after the title")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(flagLog, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	path := flagConfig
	if path == "" {
		if path, err = config.DefaultSettingsPath(); err != nil {
			log.WithError(err).Warn("settings will not be saved")
			path = ""
		}
	}

	settings := config.DefaultSettings()
	if path != "" {
		if settings, err = config.LoadSettings(path); err != nil {
			log.WithError(err).Warn("using default settings")
		}
	}

	themes := theme.NewStore(path, settings, log)
	if cmd.Flags().Changed("theme") {
		themes.Set(theme.Parse(flagTheme))
	}

	opts := app.Options{
		Seed:     flagSeed,
		Title:    settings.Title,
		Subtitle: settings.Subtitle,
		Demo:     flagDemo,
	}
	if opts.FPS, err = resolveFPS(settings.FPS, flagFPS, cmd.Flags().Changed("fps")); err != nil {
		return err
	}
	if cmd.Flags().Changed("title") {
		opts.Title = flagTitle
	}
	if cmd.Flags().Changed("subtitle") {
		opts.Subtitle = flagSubtitle
	}
	if opts.Seed == 0 {
		opts.Seed = seedFromClock()
	}

	log.WithFields(logrus.Fields{
		"fps":   opts.FPS,
		"seed":  opts.Seed,
		"theme": themes.Current(),
		"demo":  opts.Demo,
	}).Info("starting")

	model := app.New(opts, themes, log)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithFPS(opts.FPS),
	)

	// Start the demo pointer with a reference to the tea program
	model.StartDemo(p)

	_, err = p.Run()
	// Send no longer blocks once Run has returned.
	model.Stop()
	model.Wait()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// resolveFPS picks the frame rate from the settings file unless --fps was
// given, in which case the flag must be in range.
func resolveFPS(settingsFPS, flagFPS int, flagSet bool) (int, error) {
	if !flagSet {
		if config.ValidateFPS(settingsFPS) != nil {
			return config.DefaultFPS, nil
		}
		return settingsFPS, nil
	}
	if err := config.ValidateFPS(flagFPS); err != nil {
		return 0, fmt.Errorf("invalid --fps: %w", err)
	}
	return flagFPS, nil
}

func seedFromClock() int64 {
	return time.Now().UnixNano()
}

// newLogger returns a logger writing to path, or discarding everything when
// path is empty; the alt screen owns the terminal.
func newLogger(path, level string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(lvl)

	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { f.Close() }, nil
}
