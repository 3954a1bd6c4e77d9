package main

import (
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logFile = "reversi/reversi.log"

// setupLogging points the global zerolog logger at a file in the XDG state
// directory, since the terminal itself belongs to the game.
func setupLogging(level string) (io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	path, err := xdg.StateFile(logFile)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil, fmt.Errorf("locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	log.Info().Str("path", path).Str("level", lvl.String()).Msg("logging started")
	return f, nil
}
