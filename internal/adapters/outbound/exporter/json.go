// Package exporter writes the compliance report as a JSON document.
package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

// Document is the exported JSON shape.
type Document struct {
	Timestamp    string    `json:"timestamp"`
	Repository   string    `json:"repository"`
	CommitHash   string    `json:"commit_hash,omitempty"`
	OverallLevel string    `json:"overall_level"`
	Levels       LevelsDoc `json:"levels"`
}

type LevelsDoc struct {
	Bronze   LevelDoc `json:"bronze"`
	Silver   LevelDoc `json:"silver"`
	Gold     LevelDoc `json:"gold"`
	Platinum LevelDoc `json:"platinum"`
}

type LevelDoc struct {
	Score  domain.LevelScore `json:"score"`
	Checks []CheckDoc        `json:"checks"`
}

type CheckDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      bool   `json:"status"`
	Details     string `json:"details"`
}

// BuildDocument converts an in-memory report into the export shape.
func BuildDocument(report *domain.Report) Document {
	return Document{
		Timestamp:    report.Timestamp.Format(time.RFC3339),
		Repository:   report.Repository,
		CommitHash:   report.CommitHash,
		OverallLevel: report.OverallLevel().String(),
		Levels: LevelsDoc{
			Bronze:   levelDoc(report, domain.Bronze),
			Silver:   levelDoc(report, domain.Silver),
			Gold:     levelDoc(report, domain.Gold),
			Platinum: levelDoc(report, domain.Platinum),
		},
	}
}

func levelDoc(report *domain.Report, level domain.Level) LevelDoc {
	checks := report.Checks(level)
	doc := LevelDoc{
		Score:  report.Score(level),
		Checks: make([]CheckDoc, 0, len(checks)),
	}
	for _, c := range checks {
		doc.Checks = append(doc.Checks, CheckDoc{
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			Status:      c.Status,
			Details:     c.Details,
		})
	}
	return doc
}

// Write exports the report to outFile. Relative file names resolve
// inside the audited repository root. Returns the path written.
func Write(report *domain.Report, outFile string) (string, error) {
	if outFile == "" {
		outFile = domain.DefaultJSONOutput
	}
	if !filepath.IsAbs(outFile) {
		outFile = filepath.Join(report.Repository, outFile)
	}

	data, err := json.MarshalIndent(BuildDocument(report), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return outFile, nil
}
