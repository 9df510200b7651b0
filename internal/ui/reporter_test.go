package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporterQuietSuppressesAllButErrors(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{Quiet: true, Out: &buf})

	r.Header("Build Directories")
	r.Item("node_modules", 1024)
	r.Info("hello")
	r.Verbose("details")
	r.Warn("careful")
	r.Error("delete failed: %s", "boom")

	out := buf.String()
	assert.NotContains(t, out, "Build Directories")
	assert.NotContains(t, out, "node_modules")
	assert.NotContains(t, out, "hello")
	assert.NotContains(t, out, "details")
	assert.NotContains(t, out, "careful")
	assert.Contains(t, out, "delete failed: boom")
}

func TestReporterVerboseGating(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{Out: &buf})
	r.Verbose("hidden detail")
	assert.NotContains(t, buf.String(), "hidden detail")

	buf.Reset()
	r = NewReporter(Options{Verbose: true, Out: &buf})
	r.Verbose("shown detail")
	assert.Contains(t, buf.String(), "shown detail")
}

func TestReporterItemFormatting(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{Out: &buf})
	r.Item("sub/Thumbs.db", 10)
	assert.Contains(t, buf.String(), "sub/Thumbs.db (10B)")
}

func TestReporterLogMirrorIsComplete(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")
	var buf bytes.Buffer
	r := NewReporter(Options{Quiet: true, LogFile: logFile, Out: &buf})

	r.Header("Cache Files")
	r.Info("deleted .eslintcache")
	r.Verbose("skipping big.cache")
	r.Error("failed: %s", "locked")
	require.NoError(t, r.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	log := string(data)

	// Quiet silences the console, never the log.
	assert.Contains(t, log, "Cache Files")
	assert.Contains(t, log, "deleted .eslintcache")
	assert.Contains(t, log, "skipping big.cache")
	assert.Contains(t, log, "ERROR failed: locked")
}
