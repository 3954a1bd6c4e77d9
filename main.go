// reversi is a two-player Reversi (Othello) game for the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/havfo/reversi/config"
	"github.com/havfo/reversi/console"
	"github.com/havfo/reversi/i18n"
	"github.com/havfo/reversi/session"
	"github.com/havfo/reversi/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagConsole = flag.Bool("console", false, "Play in line mode instead of the full-screen UI")
	flagLang    = flag.String("lang", "", "Message language (en or ja)")
	flagHints   = flag.Bool("hints", true, "Mark legal moves on the board")
	flagPlay    = flag.Bool("play", false, "Skip the start screen")
	flagVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("reversi %s\n", Version)
		return
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closer, err := setupLogging(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %s\n", err)
	} else {
		defer closer.Close()
	}

	msg := i18n.For(cfg.Language)
	sess := session.New(log.Logger)

	if *flagConsole {
		game := console.NewGame(sess,
			console.NewInputSource(os.Stdin),
			console.NewPresenter(os.Stdout, msg, cfg),
			msg)
		if err := game.Run(); err != nil {
			log.Fatal().Err(err).Msg("console game failed")
		}
		return
	}

	app := ui.New(sess, cfg, msg)
	if *flagPlay {
		app.StartGame()
	}
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("terminal UI failed")
	}
}

// applyFlags overrides config values with flags the user actually passed.
func applyFlags(cfg *config.Config) error {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lang":
			cfg.Language = *flagLang
		case "hints":
			cfg.ShowHints = *flagHints
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}
