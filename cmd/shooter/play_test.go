package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogOutputDiscard(t *testing.T) {
	w, closeLog, err := openLogOutput("")
	if err != nil {
		t.Fatalf("openLogOutput failed: %v", err)
	}
	if w != io.Discard {
		t.Errorf("writer = %T, expected io.Discard", w)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestOpenLogOutputFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.log")

	w, closeLog, err := openLogOutput(path)
	if err != nil {
		t.Fatalf("openLogOutput failed: %v", err)
	}
	if _, err := io.WriteString(w, "round 1\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := io.WriteString(w, "late\n"); err == nil {
		t.Error("write after close should fail")
	}

	// Reopening appends.
	w, closeLog, err = openLogOutput(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	io.WriteString(w, "round 2\n")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := string(data); got != "round 1\nround 2\n" {
		t.Errorf("log contents = %q", got)
	}
}

func TestOpenLogOutputBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "shooter.log")
	if _, _, err := openLogOutput(path); err == nil || !strings.Contains(err.Error(), "open log file") {
		t.Errorf("expected open error, got %v", err)
	}
}
