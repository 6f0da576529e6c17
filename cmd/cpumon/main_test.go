package main

import (
	"bytes"
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/logger"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Init(logger.DebugLevel, &buf, true)
	t.Cleanup(func() { logger.Init(logger.WarnLevel, &bytes.Buffer{}, true) })
	return &buf
}

func TestReportWrapsMainLoopError(t *testing.T) {
	buf := captureLog(t)

	report(stderrors.New("renderer crashed"), errors.ErrMainLoop, "Error in main loop")

	out := buf.String()
	assert.Contains(t, out, "error_code=main_loop_failed")
	assert.Contains(t, out, "renderer crashed")
	assert.Contains(t, out, "Error in main loop")
}

func TestReportKeepsExistingCode(t *testing.T) {
	buf := captureLog(t)

	err := errors.New().Wrap(errors.ErrInitApp, stderrors.New("bad window"))
	report(err, errors.ErrInitApp, "Failed to initialize")

	out := buf.String()
	assert.Contains(t, out, "error_code=init_app_failed")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Failed to initialize application")))
}
