package main

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestResolveLogLevel(t *testing.T) {
	if got := resolveLogLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", got)
	}

	if got := resolveLogLevel("warn"); got != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %s", got)
	}

	if got := resolveLogLevel("not-a-level"); got != zerolog.InfoLevel {
		t.Fatalf("expected fallback to info, got %s", got)
	}
}
