package checklist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/probe"
	"github.com/rsr-standard/rsrcheck/internal/domain"
	"github.com/rsr-standard/rsrcheck/internal/domain/checklist"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0644))
}

// writeBronzeFixture lays down a repository passing all 18 Bronze checks.
func writeBronzeFixture(t *testing.T, root string) {
	t.Helper()
	write(t, root, "README.md", "# X\n\n## Installation\n\n## Usage\n\n## Features\n\n## License\n")
	write(t, root, "LICENSE", "SPDX-License-Identifier: MIT\n\nMIT License text.\n")
	write(t, root, "SECURITY.md", "## Reporting\n\n## Supported Versions\n\nsecurity@example.org\n")
	write(t, root, "CONTRIBUTING.md", "contribute\n")
	write(t, root, "CODE_OF_CONDUCT.md", "be kind\n")
	write(t, root, "MAINTAINERS.md", "maintainers\n")
	write(t, root, "CHANGELOG.md", "changes\n")
	write(t, root, ".well-known/security.txt", "Contact: mailto:security@example.org\nExpires: 2027-01-01T00:00:00Z\n")
	write(t, root, ".well-known/ai.txt", "no training\n")
	write(t, root, ".well-known/humans.txt", "humans\n")
	write(t, root, "Makefile", "build:\n\ttrue\n")
	write(t, root, "flake.nix", "{ }\n")
	write(t, root, ".github/workflows/ci.yml", "name: ci\n")
	write(t, root, "GOVERNANCE.md", "governance\n")
	write(t, root, ".gitignore", "*.log\n")
	write(t, root, "tests/test_basic.py", "def test_ok():\n    assert True\n")
	write(t, root, "docs/README.md", "docs\n")
	write(t, root, "package.json", "{}\n")
}

func evaluate(t *testing.T, root string) *domain.Report {
	t.Helper()
	return checklist.Evaluate(probe.New(root))
}

func TestEvaluate_SequenceLengthsAreFixed(t *testing.T) {
	report := evaluate(t, t.TempDir())
	assert.Len(t, report.Bronze, 18)
	assert.Len(t, report.Silver, 6)
	assert.Len(t, report.Gold, 3)
	assert.Len(t, report.Platinum, 4)
}

func TestEvaluate_EmptyRepoFailsEverything(t *testing.T) {
	report := evaluate(t, t.TempDir())
	for _, level := range domain.ChecklistLevels {
		assert.Equal(t, 0, report.Score(level).Passed, "%s should have no passes", level)
	}
	assert.Equal(t, domain.NonCompliant, report.OverallLevel())
}

func TestEvaluate_ChecksCarryInertMetadata(t *testing.T) {
	report := evaluate(t, t.TempDir())
	for _, level := range domain.ChecklistLevels {
		for _, c := range report.Checks(level) {
			assert.True(t, c.Required, "%s/%s", level, c.Name)
			assert.Equal(t, 1.0, c.Weight, "%s/%s", level, c.Name)
			assert.Equal(t, level, c.Level)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Description)
			assert.NotEmpty(t, c.Category)
		}
	}
}

func TestEvaluate_NoShortCircuitWithinLevel(t *testing.T) {
	// First Bronze check (README) fails, later ones still run and pass.
	root := t.TempDir()
	write(t, root, "CONTRIBUTING.md", "contribute\n")
	write(t, root, ".gitignore", "*.log\n")

	report := evaluate(t, root)
	assert.False(t, report.Bronze[0].Status)
	assert.Equal(t, 2, report.Score(domain.Bronze).Passed)
}

func TestEvaluate_FullBronzeOnlyYieldsBronze(t *testing.T) {
	root := t.TempDir()
	writeBronzeFixture(t, root)

	report := evaluate(t, root)
	assert.Equal(t, 18, report.Score(domain.Bronze).Passed,
		"failing: %v", failedNames(report.Bronze))
	assert.Equal(t, domain.Bronze, report.OverallLevel())
}

func failedNames(checks []domain.Check) []string {
	var names []string
	for _, c := range checks {
		if !c.Status {
			names = append(names, c.Name+": "+c.Details)
		}
	}
	return names
}
