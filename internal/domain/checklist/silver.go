package checklist

import (
	"fmt"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

// silverGuides are the advanced documentation guides; two of three
// must be present.
var silverGuides = []string{"INSTALLATION_GUIDE.md", "USAGE_GUIDE.md", "FEATURES.md"}

var wellKnownFiles = []string{
	".well-known/security.txt",
	".well-known/ai.txt",
	".well-known/humans.txt",
}

// silverChecks are the 6 Silver requirements: self-auditing tooling,
// dual licensing, and a complete disclosure/build surface.
var silverChecks = []Definition{
	{
		Name:        "RSR checker tool",
		Description: "Automated compliance verification tool",
		Category:    "Quality",
		Run:         anyOf("tools/rsr_checker.py", "scripts/rsr_checker.py"),
	},
	{
		Name:        "RSR_COMPLIANCE.md",
		Description: "Detailed compliance assessment",
		Category:    "Documentation",
		Run:         exists("RSR_COMPLIANCE.md"),
	},
	{
		Name:        "Palimpsest licensing",
		Description: "Dual licensing with Palimpsest framework",
		Category:    "Legal",
		Run: func(p domain.RepoProbe) (bool, string) {
			if !p.FileExists("LICENSE") {
				return false, "LICENSE file not found"
			}
			return p.FileContainsAll("LICENSE", []string{
				`Palimpsest`,
				`(MIT OR|Apache-2\.0 OR|GPL-\d\.\d OR)`,
			})
		},
	},
	{
		Name:        "Complete .well-known",
		Description: "All required .well-known files present",
		Category:    "Security",
		Run: func(p domain.RepoProbe) (bool, string) {
			if p.AllExists(wellKnownFiles...) {
				return true, "Complete"
			}
			return false, "Incomplete"
		},
	},
	{
		Name:        "Advanced documentation",
		Description: "Multiple comprehensive guides (installation, usage, features)",
		Category:    "Documentation",
		Run: func(p domain.RepoProbe) (bool, string) {
			found := 0
			for _, g := range silverGuides {
				if p.FileExists(g) {
					found++
				}
			}
			return found >= 2, fmt.Sprintf("%d/%d guides found", found, len(silverGuides))
		},
	},
	{
		Name:        "Nix flakes",
		Description: "Complete Nix flakes configuration",
		Category:    "Build",
		Run: func(p domain.RepoProbe) (bool, string) {
			if !p.FileExists("flake.nix") {
				return false, "flake.nix not found"
			}
			return p.FileContainsAll("flake.nix", []string{
				`inputs`,
				`outputs`,
				`packages`,
			})
		},
	},
}
