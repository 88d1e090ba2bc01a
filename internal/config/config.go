package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

type Config struct {
	Manifest string
	Seed     int64
	LogFile  string
	LogLevel zerolog.Level
	Bell     bool
	NoMouse  bool
}

type strictIntFlag int64

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int64(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

// ParseFlags reads args, falling back to PAIRS_* environment variables for
// anything not given on the command line. Load .env before calling it.
func ParseFlags(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	var seed strictIntFlag
	var level string

	fs := flag.NewFlagSet("go-pairs", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.Manifest, "manifest", "", "Face manifest file (id glyph [asset] per line)")
	fs.StringVar(&cfg.Manifest, "m", "", "Face manifest file (shorthand)")
	fs.Var(&seed, "seed", "Shuffle seed, 0 for random")
	fs.Var(&seed, "s", "Shuffle seed (shorthand)")
	fs.StringVar(&cfg.LogFile, "log", "", "Write logs to this file")
	fs.StringVar(&level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Bell, "bell", false, "Ring the terminal bell on match, mismatch and victory")
	fs.BoolVar(&cfg.NoMouse, "no-mouse", false, "Disable mouse input")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: go-pairs [options]\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fmt.Fprintf(stderr, "   -m, --manifest=FILE   Face manifest (default: built-in roster)\n")
		fmt.Fprintf(stderr, "   -s, --seed=N          Shuffle seed, 0 for random\n")
		fmt.Fprintf(stderr, "       --log=FILE        Write logs to FILE\n")
		fmt.Fprintf(stderr, "       --log-level=LVL   debug, info, warn or error (default info)\n")
		fmt.Fprintf(stderr, "       --bell            Ring the terminal bell on outcomes\n")
		fmt.Fprintf(stderr, "       --no-mouse        Keyboard only\n")
		fmt.Fprintf(stderr, "   -h, --help            Show this help message\n")
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Fall back to environment variables
	if cfg.Manifest == "" {
		cfg.Manifest = os.Getenv("PAIRS_MANIFEST")
	}

	cfg.Seed = int64(seed)
	if cfg.Seed == 0 {
		if v := os.Getenv("PAIRS_SEED"); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid PAIRS_SEED: %w", err)
			}
			cfg.Seed = n
		}
	}

	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("PAIRS_LOG_FILE")
	}

	if level == "" {
		level = getEnv("PAIRS_LOG_LEVEL", "info")
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.LogLevel = lvl

	if !cfg.Bell {
		if v := os.Getenv("PAIRS_BELL"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("invalid PAIRS_BELL: %w", err)
			}
			cfg.Bell = b
		}
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
