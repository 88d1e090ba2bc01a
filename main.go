package main

import (
	"errors"
	"flag"
	"fmt"
	"go-pairs/internal/board"
	"go-pairs/internal/config"
	"go-pairs/internal/feedback"
	"go-pairs/internal/game"
	"go-pairs/internal/state"
	"go-pairs/internal/ui"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func newLogger(cfg config.Config) (zerolog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log := zerolog.New(f).Level(cfg.LogLevel).With().Timestamp().Logger()
	return log, f, nil
}

func loadFaces(cfg config.Config) ([]board.Face, error) {
	if cfg.Manifest == "" {
		return game.DefaultFaces(), nil
	}
	return game.LoadFaces(cfg.Manifest)
}

func initialModel(cfg config.Config, log zerolog.Logger) (*ui.Model, error) {
	faces, err := loadFaces(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", seed).Msg("shuffle seed")

	status := &feedback.Latest{}
	sinks := feedback.Fanout{status, feedback.Logger{Log: log}}
	if cfg.Bell {
		sinks = append(sinks, feedback.Bell{W: os.Stderr})
	}

	opts := state.GameOptions{Rand: rand.New(rand.NewSource(seed))}
	sess, err := game.NewSession(faces, board.DefaultLayout(), sinks, opts, log)
	if err != nil {
		return nil, err
	}

	return ui.New(sess, status, !cfg.NoMouse), nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, closer, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	model, err := initialModel(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		fmt.Fprintf(os.Stderr, "Error initializing game: %v\n", err)
		closer.Close()
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if model.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		fmt.Printf("Error running the program: %v\n", err)
	}

	sess := model.Session
	log.Info().
		Int("played", sess.GamesPlayed).
		Int("won", sess.GamesWon).
		Msg("session ended")
	if sess.GamesWon > 0 {
		fmt.Printf("Games won: %d of %d. Best: %d attempts.\n", sess.GamesWon, sess.GamesPlayed, sess.BestAttempts)
	}
}
