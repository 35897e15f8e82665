package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/exporter"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "rsrcheck-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "rsrcheck")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../..")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath() string {
	abs, _ := filepath.Abs("../../testdata/rsr-platinum")
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Report(t *testing.T) {
	out, code := run(t, fixturePath())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "RSR Compliance Report")
	assert.Contains(t, out, "Platinum")
}

func TestE2E_Badge(t *testing.T) {
	out, code := run(t, fixturePath(), "--badge", "--quiet")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "https://img.shields.io/badge/RSR-Platinum-purple")
}

func TestE2E_JSONExport(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "compliance.json")
	out, code := run(t, fixturePath(), "--json", "--json-output", outFile, "--quiet")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "JSON report exported to:")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var doc exporter.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Platinum", doc.OverallLevel)
	assert.Equal(t, fixturePath(), doc.Repository)
	assert.Equal(t, 18, doc.Levels.Bronze.Score.Total)
	assert.Equal(t, 6, doc.Levels.Silver.Score.Total)
	assert.Equal(t, 3, doc.Levels.Gold.Score.Total)
	assert.Equal(t, 4, doc.Levels.Platinum.Score.Total)
}

func TestE2E_NonCompliantExitCode(t *testing.T) {
	out, code := run(t, t.TempDir())
	assert.Equal(t, 1, code, "should exit 1 for a non-compliant repository")
	assert.Contains(t, out, "Non-compliant")
	assert.NotContains(t, out, "Error:")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "rsrcheck")
}

func TestE2E_InvalidPath(t *testing.T) {
	out, code := run(t, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, 1, code)
	_ = out
}

func TestE2E_QuietSuppressesReport(t *testing.T) {
	out, code := run(t, fixturePath(), "--quiet")
	assert.Equal(t, 0, code)
	assert.NotContains(t, out, "Bronze Level")
}
