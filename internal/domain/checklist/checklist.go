// Package checklist holds the fixed RSR check tables and evaluates
// them against a repository probe.
package checklist

import "github.com/rsr-standard/rsrcheck/internal/domain"

// Definition is one declarative checklist rule: fixed metadata plus
// the predicate call that decides it.
type Definition struct {
	Name        string
	Description string
	Category    string
	Run         func(p domain.RepoProbe) (status bool, details string)
}

// Evaluate runs every definition of every tier, in order, and returns
// the populated report. Checks never short-circuit: a failure does not
// stop later checks in the same tier.
func Evaluate(p domain.RepoProbe) *domain.Report {
	return &domain.Report{
		Bronze:   run(domain.Bronze, bronzeChecks, p),
		Silver:   run(domain.Silver, silverChecks, p),
		Gold:     run(domain.Gold, goldChecks, p),
		Platinum: run(domain.Platinum, platinumChecks, p),
	}
}

func run(level domain.Level, defs []Definition, p domain.RepoProbe) []domain.Check {
	checks := make([]domain.Check, 0, len(defs))
	for _, d := range defs {
		status, details := d.Run(p)
		checks = append(checks, domain.Check{
			Name:        d.Name,
			Description: d.Description,
			Level:       level,
			Category:    d.Category,
			Required:    true,
			Status:      status,
			Details:     details,
			Weight:      1,
		})
	}
	return checks
}

// exists builds a Run func for a plain existence check.
func exists(path string) func(domain.RepoProbe) (bool, string) {
	return func(p domain.RepoProbe) (bool, string) {
		return foundOrMissing(p.FileExists(path))
	}
}

// anyOf builds a Run func passing when at least one path exists.
func anyOf(paths ...string) func(domain.RepoProbe) (bool, string) {
	return func(p domain.RepoProbe) (bool, string) {
		return foundOrMissing(p.AnyExists(paths...))
	}
}

// contains builds a Run func delegating to FileContainsAll.
func contains(path string, patterns ...string) func(domain.RepoProbe) (bool, string) {
	return func(p domain.RepoProbe) (bool, string) {
		return p.FileContainsAll(path, patterns)
	}
}

func foundOrMissing(status bool) (bool, string) {
	if status {
		return true, "Found"
	}
	return false, "Missing"
}

func foundOrNotFound(status bool) (bool, string) {
	if status {
		return true, "Found"
	}
	return false, "Not found"
}
