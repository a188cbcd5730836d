package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const sample = "WEBVTT\n\n00:00:00.000 --> 00:00:02.000\nhello there.\n"

func TestBatchDirectoryArgument(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "talk.vtt"), []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yaml"), "--batch", dir})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "talk.txt")); err != nil {
		t.Errorf("batch output missing: %v", err)
	}
}

func TestBatchDir(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: "."},
		{args: []string{"./downloads"}, want: "./downloads"},
	}
	for _, tt := range tests {
		if got := batchDir(tt.args); got != tt.want {
			t.Errorf("batchDir(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRequiresInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")})
	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Execute() without a file, --batch or --watch should fail")
	}
}
