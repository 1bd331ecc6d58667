package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/neon-maze/internal/config"
	"github.com/vovakirdan/neon-maze/internal/core"
	"github.com/vovakirdan/neon-maze/internal/games/neonmaze"
	"github.com/vovakirdan/neon-maze/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.neonmaze/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate and MaxFrameMs are copied into every session's RuntimeConfig.
	TickRate   int
	MaxFrameMs float64

	// Game is the tuning shared by all sessions.
	Game config.NeonMazeConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	rc := core.DefaultConfig()
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.neonmaze/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    rc.TickRate,
		MaxFrameMs:  rc.MaxFrameMs,
		Game:        config.DefaultNeonMazeConfig(),
	}
}

// SSHServer wraps a Wish SSH server. Every session runs its own engine;
// the score store is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonmaze-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".neonmaze", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// NewSessionGame builds a game wired to the store, if there is one.
func NewSessionGame(gameCfg config.NeonMazeConfig, store *storage.Store, logger *log.Logger) *neonmaze.Game {
	opts := neonmaze.Options{
		Config: gameCfg,
		Logger: logger,
	}
	if store != nil {
		opts.Store = store
	}
	return neonmaze.New(opts)
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:    pty.Window.Width,
		ScreenH:    pty.Window.Height,
		TickRate:   s.config.TickRate,
		Seed:       time.Now().UnixNano(),
		MaxFrameMs: s.config.MaxFrameMs,
	}

	sessionLog := s.logger.With("user", sshSession.User())
	game := NewSessionGame(s.config.Game, s.store, sessionLog)

	var scores ScoreSaver
	if s.store != nil {
		scores = s.store
	}

	return NewModel(game, scores, cfg), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
