package logging

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	start := time.Now().Add(-5 * time.Second)
	LogDuration(start, "test-operation")

	output := buf.String()
	assert.Contains(t, output, "test-operation")
	assert.Contains(t, output, "duration")
	assert.True(t, strings.Contains(output, "5") || strings.Contains(output, "5000"))
}

func TestDefaultLogger_OnlyWarnings(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := newDefaultLogger(&buf)

	logger.Trace().Msg("trace line")
	logger.Debug().Msg("debug line")
	logger.Info().Msg("info line")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("warn line")
	assert.Contains(t, buf.String(), "warn line")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "build-chain")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Equal(t, 2, strings.Count(buf.String(), "build-chain"))
}

func TestMust_NoError(t *testing.T) {
	assert.NotPanics(t, func() {
		Must(nil, "this should not panic")
	})
}

func TestMust_WithError(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		Must(errors.New("test error"), "expected exit")
		return
	}

	// Run the test in a subprocess
	cmd := os.Args[0]
	args := []string{"-test.run=TestMust_WithError"}
	env := append(os.Environ(), "BE_CRASHER=1")

	proc := &os.ProcAttr{
		Env:   env,
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}

	process, err := os.StartProcess(cmd, append([]string{cmd}, args...), proc)
	if err != nil {
		t.Fatal(err)
	}

	state, err := process.Wait()
	if err != nil {
		t.Fatal(err)
	}

	assert.False(t, state.Success(), "process should have exited with error")
}
