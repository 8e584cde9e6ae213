package errors

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("bad input").Build(), expected: 2},
		{name: "config", err: ConfigError("bad menu").Build(), expected: 7},
		{name: "git", err: GitError("clone failed").Build(), expected: 8},
		{name: "internal", err: InternalError("sealed").Build(), expected: 10},
		{name: "image", err: ImageError("decode").Build(), expected: 11},
		{name: "unclassified", err: errors.New("boom"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	cfgErr := ConfigError("main menu references unknown page").WithContext("url", "/nope").Build()
	if got := quiet.FormatError(cfgErr); !strings.Contains(got, "/nope") {
		t.Errorf("config errors should show context, got %q", got)
	}

	internal := InternalError("index sealed").Build()
	if got := quiet.FormatError(internal); strings.Contains(got, "sealed") {
		t.Errorf("internal errors should be hidden without -v, got %q", got)
	}
	if got := verbose.FormatError(internal); !strings.Contains(got, "sealed") {
		t.Errorf("verbose mode should show details, got %q", got)
	}
	if quiet.FormatError(nil) != "" {
		t.Error("nil error should format to empty string")
	}
}
