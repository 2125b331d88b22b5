package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "actionq", "actionq.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestSetupLoggerWithOptions_NoLogFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf})

	logger := GetLogger("test")
	logger.Info().Msg("console only")

	if !strings.Contains(buf.String(), "console only") {
		t.Errorf("console output = %q, want it to contain the message", buf.String())
	}

	logPath := filepath.Join(tempDir, "actionq", "actionq.log")
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("Log file should not exist at %s", logPath)
	}
}

func TestGetLogFilePath(t *testing.T) {
	tests := []struct {
		name         string
		xdgState     string
		wantContains string
	}{
		{
			name:         "with XDG_STATE_HOME",
			xdgState:     "/custom/state",
			wantContains: "/custom/state/actionq/actionq.log",
		},
		{
			name:         "without XDG_STATE_HOME",
			xdgState:     "",
			wantContains: ".local/state/actionq/actionq.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_STATE_HOME", tt.xdgState)

			got := getLogFilePath()
			if !filepath.IsAbs(got) {
				t.Errorf("getLogFilePath() returned relative path: %s", got)
			}
			if !contains(got, tt.wantContains) {
				t.Errorf("getLogFilePath() = %s, want to contain %s", got, tt.wantContains)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf})

	logger := GetLogger("actions.queue")
	logger.Info().Msg("test message")

	if !strings.Contains(buf.String(), "actions.queue") {
		t.Errorf("output %q should carry the component name", buf.String())
	}
}

func TestWithFields(t *testing.T) {
	fields := map[string]interface{}{
		"key1": "value1",
		"key2": 42,
		"key3": true,
	}

	var buf bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &buf})

	logger := WithFields(fields)
	logger.Info().Msg("test message with fields")

	for k := range fields {
		if !strings.Contains(buf.String(), k) {
			t.Errorf("output %q should contain field %s", buf.String(), k)
		}
	}
}

// Helper function
func contains(s, substr string) bool {
	cleanedS := filepath.ToSlash(s)
	cleanedSubstr := filepath.ToSlash(substr)
	return strings.Contains(cleanedS, cleanedSubstr)
}
