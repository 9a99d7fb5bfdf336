package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/marquee/internal/app"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/logging"
	"github.com/llehouerou/marquee/internal/mpris"
	"github.com/llehouerou/marquee/internal/state"
	"github.com/llehouerou/marquee/internal/ui/carouselview"
)

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Terminal card carousels with autoplay",
	Long: `Marquee shows the carousels defined in config.toml and advances them on a timer.
Autoplay pauses while the pointer is over a carousel, briefly after any manual
navigation, and, for video carousels, while one of their MPRIS players is playing.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Additional config file (highest priority)")
	rootCmd.PersistentFlags().String("log-level", "", "Override log_level (debug, info, warn, error)")
	rootCmd.Flags().StringSlice("only", nil, "Show only the named carousels")
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config files plus the --config override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	extra, _ := cmd.Flags().GetString("config")
	var paths []string
	if extra != "" {
		paths = append(paths, extra)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	return cfg, nil
}

// openLogger opens the log file. Logging failures never stop the program;
// they fall back to a discarding logger.
func openLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, io.Closer) {
	levelName := cfg.LogLevel
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		levelName = flag
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		level = slog.LevelInfo
	}

	path, err := cfg.LogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log file: %v\n", err)
		return logging.NewNop(), io.NopCloser(nil)
	}
	logger, closer, err := logging.Open(path, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: log file: %v\n", err)
		return logging.NewNop(), io.NopCloser(nil)
	}
	return logger, closer
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, logCloser := openLogger(cmd, cfg)
	defer logCloser.Close()
	icons.Init(cfg.Icons)

	only, _ := cmd.Flags().GetStringSlice("only")
	carousels := cfg.Discover(logger, only...)
	logger.Info("starting", "carousels", len(carousels))

	deps := carouselview.Deps{
		UserPause:     cfg.UserPause(),
		DragThreshold: cfg.DragThreshold(),
		Players:       mpris.NewSource(logger),
	}

	// Positions are a convenience; run without them rather than fail.
	store, err := state.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", errmsg.Format(errmsg.OpStateOpen, err))
		logger.Warn("state unavailable", "err", err)
	} else {
		deps.Store = store
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error("close state", "err", err)
			}
		}()
	}

	opts := app.Options{
		Carousels: carousels,
		Deps:      deps,
		Logger:    logger,
	}
	if cfg.RemoteEnabled() {
		queue := app.NewRemoteQueue()
		server := mpris.NewServer(queue, logger)
		server.Start()
		defer server.Close()
		opts.Remote = server
		opts.Requests = queue
	}

	p := tea.NewProgram(
		app.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Shutdown()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	return nil
}
