package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/penguin-arcade/internal/registry"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")

	_, err := NewSSHServer(cfg, nil)
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("NewSSHServer() error = %v, expected ErrUnknownGame", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.GameID != "shooter" || cfg.TickRate != 60 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
