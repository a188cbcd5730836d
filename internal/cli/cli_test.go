package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	os.WriteFile(cfgPath, []byte("burn:\n  font_size: 30\n"), 0644)

	cmd := &cobra.Command{Use: "test"}
	g := &Globals{}
	g.Register(cmd)
	if err := cmd.ParseFlags([]string{"--config", cfgPath, "--log-level", "DEBUG"}); err != nil {
		t.Fatal(err)
	}

	cfg, log, err := g.Setup()
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if log == nil {
		t.Fatal("Setup() returned nil logger")
	}
	if cfg.Burn.FontSize != 30 {
		t.Errorf("FontSize = %d, want 30", cfg.Burn.FontSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestSetupErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		g    Globals
	}{
		{name: "bad log level", g: Globals{ConfigPath: filepath.Join(dir, "none.yaml"), LogLevel: "loud"}},
		{name: "missing explicit env file", g: Globals{ConfigPath: filepath.Join(dir, "none.yaml"), EnvPath: filepath.Join(dir, "x.env")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.g.Setup(); err == nil {
				t.Error("Setup() expected error")
			}
		})
	}
}

func TestRequireFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.vtt")
	os.WriteFile(file, nil, 0644)

	if err := RequireFile(file); err != nil {
		t.Errorf("RequireFile(file) error = %v", err)
	}
	if err := RequireFile(dir); err == nil {
		t.Error("RequireFile(dir) should fail")
	}
	if err := RequireFile(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RequireFile(missing) error = %v", err)
	}
}
