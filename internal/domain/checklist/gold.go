package checklist

import (
	"fmt"
	"strings"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

var formalVerificationDirs = []string{"proofs", "formal", "coq", "isabelle", "tla+"}

var propertyTestMarkers = []string{"hypothesis", "quickcheck", "proptest"}

var securityScannerMarkers = []string{"bandit", "semgrep", "snyk", "trivy"}

// languageIndicators maps ecosystems to the file patterns that betray
// them. Order is fixed so the details line is reproducible.
var languageIndicators = []struct {
	name       string
	indicators []string
}{
	{"Python", []string{"*.py", "setup.py", "pyproject.toml"}},
	{"Rust", []string{"Cargo.toml", "src/*.rs"}},
	{"JavaScript", []string{"package.json", "*.js"}},
	{"TypeScript", []string{"tsconfig.json", "*.ts"}},
	{"Go", []string{"go.mod", "*.go"}},
	{"Ada", []string{"*.adb", "*.ads"}},
	{"Elixir", []string{"mix.exs", "*.ex"}},
	{"Haskell", []string{"*.hs", "stack.yaml"}},
}

// goldChecks are the 3 Gold requirements: verification rigor,
// multi-language reach, and layered security tooling.
var goldChecks = []Definition{
	{
		Name:        "Formal verification",
		Description: "Formal proofs or property-based testing",
		Category:    "Quality",
		Run: func(p domain.RepoProbe) (bool, string) {
			hasFormal := p.AnyExists(formalVerificationDirs...)
			hasPropertyTests := p.FileExists("tests") &&
				p.TreeContainsAny("tests", propertyTestMarkers)

			var found []string
			if hasFormal {
				found = append(found, "Formal verification")
			}
			if hasPropertyTests {
				found = append(found, "Property-based testing")
			}
			if len(found) == 0 {
				return false, "Not found"
			}
			return true, strings.Join(found, ", ")
		},
	},
	{
		Name:        "Multi-language support",
		Description: "Support for 2+ programming languages",
		Category:    "Architecture",
		Run: func(p domain.RepoProbe) (bool, string) {
			var languages []string
			for _, lang := range languageIndicators {
				for _, indicator := range lang.indicators {
					if p.GlobAnywhere(indicator) {
						languages = append(languages, lang.name)
						break
					}
				}
			}
			if len(languages) == 0 {
				return false, "Single language"
			}
			detail := fmt.Sprintf("Languages: %s", strings.Join(languages, ", "))
			return len(languages) >= 2, detail
		},
	},
	{
		Name:        "Advanced security",
		Description: "Security scanning, SBOM, or other advanced features",
		Category:    "Security",
		Run: func(p domain.RepoProbe) (bool, string) {
			var features []string

			scannerInCI := p.FileContainsAny(".gitlab-ci.yml", securityScannerMarkers) ||
				p.TreeContainsAny(".github/workflows", securityScannerMarkers)
			if scannerInCI {
				features = append(features, "Security scanning")
			}
			if p.AnyExists("requirements.txt", "Cargo.lock") {
				features = append(features, "Dependency management")
			}
			if p.AnyExists("sbom.json", "bom.xml") {
				features = append(features, "SBOM")
			}

			if len(features) == 0 {
				return false, "Not found"
			}
			return len(features) >= 2, strings.Join(features, ", ")
		},
	},
}
