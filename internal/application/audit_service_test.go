package application_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/gitinfo"
	"github.com/rsr-standard/rsrcheck/internal/adapters/outbound/probe"
	"github.com/rsr-standard/rsrcheck/internal/application"
	"github.com/rsr-standard/rsrcheck/internal/domain"
)

const fixtureDir = "../../testdata/rsr-platinum"

func newService() *application.AuditService {
	return application.NewAuditService(probe.NewOpener(), gitinfo.New())
}

func TestAudit_PlatinumFixture(t *testing.T) {
	report, err := newService().Audit(fixtureDir, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, report.Bronze, 18)
	assert.Len(t, report.Silver, 6)
	assert.Len(t, report.Gold, 3)
	assert.Len(t, report.Platinum, 4)

	assert.Equal(t, 18, report.Score(domain.Bronze).Passed, "failing: %v", failing(report.Bronze))
	assert.Equal(t, 6, report.Score(domain.Silver).Passed, "failing: %v", failing(report.Silver))
	assert.Equal(t, 3, report.Score(domain.Gold).Passed, "failing: %v", failing(report.Gold))
	assert.Equal(t, 4, report.Score(domain.Platinum).Passed, "failing: %v", failing(report.Platinum))
	assert.Equal(t, domain.Platinum, report.OverallLevel())
}

func TestAudit_SetsMetadata(t *testing.T) {
	report, err := newService().Audit(fixtureDir, domain.DefaultConfig())
	require.NoError(t, err)

	abs, _ := filepath.Abs(fixtureDir)
	assert.Equal(t, abs, report.Repository)
	assert.False(t, report.Timestamp.IsZero())
	assert.Empty(t, report.CommitHash, "fixture is not a git repository")
}

func TestAudit_EmptyDirIsNotAnError(t *testing.T) {
	report, err := newService().Audit(t.TempDir(), domain.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, domain.NonCompliant, report.OverallLevel())
}

func failing(checks []domain.Check) []string {
	var names []string
	for _, c := range checks {
		if !c.Status {
			names = append(names, c.Name+": "+c.Details)
		}
	}
	return names
}
