package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/reelboard/internal/config"
	"github.com/five82/reelboard/internal/logging"
	"github.com/five82/reelboard/internal/prefs"
	"github.com/five82/reelboard/internal/script"
	"github.com/five82/reelboard/internal/ui"
)

// Options configure the Reelboard application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/reelboard/config.toml
	PrefsPath  string // empty uses default ~/.config/reelboard/prefs.toml
	Theme      string // overrides the saved theme when set
}

// session is everything Run needs once startup has succeeded.
type session struct {
	cfg       config.Config
	logger    zerolog.Logger
	closer    io.Closer
	prefsPath string
	theme     string
}

// Run boots the Reelboard TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := start(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.closer.Close() }()

	s.logger.Info().Str("theme", s.theme).Dur("generate_delay", s.cfg.GenerateDelay).Msg("reelboard starting")

	err = ui.Run(ui.Options{
		Context:    ctx,
		Generator:  script.NewGenerator(s.cfg.GenerateDelay, s.logger),
		Logger:     s.logger,
		ThemeName:  s.theme,
		PrefsPath:  s.prefsPath,
		ScrollStep: s.cfg.ScrollStep,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}
	s.logger.Info().Msg("reelboard stopped")
	return nil
}

// start loads configuration, opens the log, and resolves the theme.
func start(opts Options) (session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return session{}, fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Path:   cfg.LogPath,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return session{}, fmt.Errorf("init logging: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		// Unreadable prefs fall back to defaults.
		logger.Warn().Err(err).Str("path", prefsPath).Msg("load prefs")
	}

	theme := userPrefs.Theme
	if override := strings.TrimSpace(opts.Theme); override != "" {
		theme = override
	}
	if ui.GetTheme(theme).Name != theme {
		logger.Warn().Str("theme", theme).Strs("available", ui.ThemeNames()).Msg("unknown theme, using default")
		theme = ui.GetTheme(theme).Name
	}

	return session{
		cfg:       cfg,
		logger:    logger,
		closer:    closer,
		prefsPath: prefsPath,
		theme:     theme,
	}, nil
}
