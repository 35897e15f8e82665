package checklist

import "github.com/rsr-standard/rsrcheck/internal/domain"

// crdtTerms are matched against lowercased source text.
var crdtTerms = []string{"crdt", "conflict-free", "operational transform", "automerge"}

// platinumChecks are the 4 Platinum requirements: research-grade
// architecture and ecosystem integration signals.
var platinumChecks = []Definition{
	{
		Name:        "CRDT/Offline-first",
		Description: "Conflict-free replicated data types or offline-first architecture",
		Category:    "Architecture",
		Run: func(p domain.RepoProbe) (bool, string) {
			status := p.AnyExists("crdt", "offline", "sync") ||
				p.SourceContainsAny(crdtTerms)
			return foundOrNotFound(status)
		},
	},
	{
		Name:        "Academic paper",
		Description: "Research paper or formal publication",
		Category:    "Research",
		Run: func(p domain.RepoProbe) (bool, string) {
			return foundOrNotFound(p.AnyExists("papers", "docs/papers", "PAPER.md"))
		},
	},
	{
		Name:        "Conference materials",
		Description: "Talk proposals, slides, or presentation materials",
		Category:    "Research",
		Run: func(p domain.RepoProbe) (bool, string) {
			return foundOrNotFound(p.AnyExists("docs/conference-materials.md", "talks", "presentations"))
		},
	},
	{
		Name:        "iSOS integration",
		Description: "Integrated Sovereign Operating System framework",
		Category:    "Architecture",
		Run: func(p domain.RepoProbe) (bool, string) {
			return foundOrNotFound(p.AnyExists("isos", "docs/isos.md", ".isos.toml"))
		},
	},
}
