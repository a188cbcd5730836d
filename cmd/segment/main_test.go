package main

import (
	"context"
	"testing"

	"github.com/nguyentantai21042004/yt-subtools/internal/config"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
)

func TestNewProvider(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name     string
		f        flags
		wantName string
	}{
		{name: "rule", f: flags{provider: "rule"}},
		{name: "unknown falls back", f: flags{provider: "mystery", apiKey: "k"}},
		{name: "missing key falls back", f: flags{provider: "openai"}},
		{name: "ollama needs no key", f: flags{provider: "ollama"}, wantName: "ollama"},
		{name: "gemini with key", f: flags{provider: "Gemini", apiKey: "k"}, wantName: "gemini"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(context.Background(), logger.Nop(), tt.f, cfg)
			if tt.wantName == "" {
				if p != nil {
					t.Errorf("newProvider() = %s, want nil", p.Name())
				}
				return
			}
			if p == nil || p.Name() != tt.wantName {
				t.Errorf("newProvider() = %v, want %s", p, tt.wantName)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	t.Setenv(config.EnvGeminiKey, "env-key")

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"-d", "50"}); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.LLM.Provider = "gemini"
	cfg.Segment.Target = 20

	f := flags{duration: 50}
	applyConfig(cmd, cfg, &f)

	if f.duration != 50 {
		t.Errorf("duration = %v, explicit flag should win", f.duration)
	}
	if f.provider != "gemini" || f.apiKey != "env-key" {
		t.Errorf("provider = %q key = %q", f.provider, f.apiKey)
	}
	if f.output != "segments" || f.minDuration != 10 {
		t.Errorf("output = %q minDuration = %v", f.output, f.minDuration)
	}
}
