package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rsr-standard/rsrcheck/internal/domain"
	"github.com/rsr-standard/rsrcheck/internal/domain/checklist"
)

// AuditService evaluates the full RSR checklist against a repository
// and attaches run metadata to the resulting report.
type AuditService struct {
	probes domain.ProbeOpener
	git    domain.GitInfo
}

func NewAuditService(probes domain.ProbeOpener, git domain.GitInfo) *AuditService {
	return &AuditService{probes: probes, git: git}
}

// Audit evaluates the full checklist against repoPath. A missing or
// empty repository is not an error; every check simply fails.
func (s *AuditService) Audit(repoPath string, cfg domain.RepoConfig) (*domain.Report, error) {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	p := s.probes.Open(absPath, cfg.ExcludePaths...)
	report := checklist.Evaluate(p)
	report.Repository = absPath
	report.Timestamp = time.Now()

	// Commit hash is best-effort metadata.
	if s.git != nil && s.git.IsGitRepo(absPath) {
		if hash, err := s.git.CommitHash(absPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}
