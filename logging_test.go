package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLoggingWritesStateFile(t *testing.T) {
	dir := t.TempDir()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()

	closer, err := setupLogging("debug")
	if err != nil {
		t.Fatalf("setupLogging error: %v", err)
	}
	log.Debug().Str("pos", "E3").Msg("move played")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, "reversi", "reversi.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	for _, want := range []string{`"message":"logging started"`, `"message":"move played"`, `"pos":"E3"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("log missing %s:\n%s", want, data)
		}
	}
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

	if _, err := setupLogging("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
