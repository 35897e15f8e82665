package domain

import (
	"strings"
	"time"
)

// Level is a compliance tier. NonCompliant is the synthetic floor for
// repositories that fail any Bronze requirement.
type Level int

const (
	NonCompliant Level = iota
	Bronze
	Silver
	Gold
	Platinum
)

// ChecklistLevels lists the four tiers that carry checks, in order.
var ChecklistLevels = []Level{Bronze, Silver, Gold, Platinum}

func (l Level) String() string {
	switch l {
	case Bronze:
		return "Bronze"
	case Silver:
		return "Silver"
	case Gold:
		return "Gold"
	case Platinum:
		return "Platinum"
	case NonCompliant:
		return "Non-compliant"
	default:
		return "Unknown"
	}
}

// Key is the lowercase form used as a JSON object key.
func (l Level) Key() string {
	return strings.ToLower(l.String())
}

// Check is one evaluated compliance rule. Required and Weight are
// populated for every check but not consulted by scoring; they are
// reserved metadata.
type Check struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Level       Level   `json:"-"`
	Category    string  `json:"category"`
	Required    bool    `json:"required"`
	Status      bool    `json:"status"`
	Details     string  `json:"details"`
	Weight      float64 `json:"weight"`
}

// LevelScore is the pass/total tally for one tier.
type LevelScore struct {
	Passed     int     `json:"passed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Report holds one full audit: the four fixed check sequences plus run
// metadata. It is built once per invocation and never mutated after.
type Report struct {
	Repository string    `json:"repository"`
	Timestamp  time.Time `json:"timestamp"`
	CommitHash string    `json:"commit_hash,omitempty"`

	Bronze   []Check `json:"bronze"`
	Silver   []Check `json:"silver"`
	Gold     []Check `json:"gold"`
	Platinum []Check `json:"platinum"`
}

// Checks returns the check sequence for a tier. NonCompliant carries none.
func (r *Report) Checks(level Level) []Check {
	switch level {
	case Bronze:
		return r.Bronze
	case Silver:
		return r.Silver
	case Gold:
		return r.Gold
	case Platinum:
		return r.Platinum
	default:
		return nil
	}
}

// Score tallies a tier. A tier with zero checks scores 0%, never 100%.
func (r *Report) Score(level Level) LevelScore {
	checks := r.Checks(level)
	s := LevelScore{Total: len(checks)}
	for _, c := range checks {
		if c.Status {
			s.Passed++
		}
	}
	if s.Total > 0 {
		s.Percentage = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

// OverallLevel derives the highest tier achieved. Bronze and Silver
// must be fully complete to advance past them; Gold and Platinum gate
// on 66% of the tier itself.
func (r *Report) OverallLevel() Level {
	switch {
	case r.Score(Bronze).Percentage < 100:
		return NonCompliant
	case r.Score(Silver).Percentage < 100:
		return Bronze
	case r.Score(Gold).Percentage < 66:
		return Silver
	case r.Score(Platinum).Percentage < 66:
		return Gold
	default:
		return Platinum
	}
}

// BadgeColor maps a compliance level to its shields.io color. Unknown
// levels fall back to lightgrey.
func BadgeColor(level Level) string {
	switch level {
	case Platinum:
		return "purple"
	case Gold:
		return "yellow"
	case Silver:
		return "silver"
	case Bronze:
		return "orange"
	case NonCompliant:
		return "red"
	default:
		return "lightgrey"
	}
}

// BadgeURL builds the shields.io badge URL for a level.
func BadgeURL(level Level) string {
	label := strings.ReplaceAll(level.String(), " ", "%20")
	return "https://img.shields.io/badge/RSR-" + label + "-" + BadgeColor(level)
}
