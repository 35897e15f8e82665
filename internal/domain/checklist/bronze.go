package checklist

// bronzeChecks are the 18 baseline requirements: core documentation,
// licensing, security disclosure, community files, and build hygiene.
var bronzeChecks = []Definition{
	{
		Name:        "README.md",
		Description: "Comprehensive README with installation, usage, features, license",
		Category:    "Documentation",
		Run: contains("README.md",
			`##?\s+Installation`,
			`##?\s+Usage`,
			`##?\s+Features`,
			`##?\s+License`,
		),
	},
	{
		Name:        "LICENSE",
		Description: "LICENSE file with SPDX identifier",
		Category:    "Legal",
		Run: contains("LICENSE",
			`SPDX-License-Identifier:`,
			`(MIT|Apache|GPL|AGPL|BSD)`,
		),
	},
	{
		Name:        "SECURITY.md",
		Description: "Security policy with vulnerability disclosure process",
		Category:    "Security",
		Run: contains("SECURITY.md",
			`##?\s+Reporting`,
			`##?\s+Supported Versions`,
			`(security@|contact)`,
		),
	},
	{
		Name:        "CONTRIBUTING.md",
		Description: "Contribution guidelines",
		Category:    "Community",
		Run:         exists("CONTRIBUTING.md"),
	},
	{
		Name:        "CODE_OF_CONDUCT.md",
		Description: "Code of conduct for community",
		Category:    "Community",
		Run:         exists("CODE_OF_CONDUCT.md"),
	},
	{
		Name:        "MAINTAINERS.md",
		Description: "List of project maintainers",
		Category:    "Governance",
		Run:         exists("MAINTAINERS.md"),
	},
	{
		Name:        "CHANGELOG.md",
		Description: "Version history and changes",
		Category:    "Documentation",
		Run:         exists("CHANGELOG.md"),
	},
	{
		Name:        ".well-known/security.txt",
		Description: "RFC 9116 compliant security.txt",
		Category:    "Security",
		Run: contains(".well-known/security.txt",
			`Contact:`,
			`Expires:`,
		),
	},
	{
		Name:        ".well-known/ai.txt",
		Description: "AI training policy declaration",
		Category:    "Legal",
		Run:         exists(".well-known/ai.txt"),
	},
	{
		Name:        ".well-known/humans.txt",
		Description: "Team attribution file",
		Category:    "Community",
		Run:         exists(".well-known/humans.txt"),
	},
	{
		Name:        "Build system",
		Description: "justfile or Makefile for build automation",
		Category:    "Build",
		Run:         anyOf("justfile", "Makefile"),
	},
	{
		Name:        "flake.nix",
		Description: "Nix flakes for reproducible builds",
		Category:    "Build",
		Run:         exists("flake.nix"),
	},
	{
		Name:        "CI/CD",
		Description: "Continuous integration configuration",
		Category:    "Build",
		Run:         anyOf(".gitlab-ci.yml", ".github/workflows", ".circleci/config.yml"),
	},
	{
		Name:        "TPCF Governance",
		Description: "Tri-Perimeter Contribution Framework documentation",
		Category:    "Governance",
		Run:         anyOf("governance/TPCF.md", "governance/PROJECT_GOVERNANCE.md", "GOVERNANCE.md"),
	},
	{
		Name:        ".gitignore",
		Description: "Git ignore file",
		Category:    "Build",
		Run:         exists(".gitignore"),
	},
	{
		Name:        "Test structure",
		Description: "Test directory or files",
		Category:    "Quality",
		Run:         anyOf("tests", "test", "spec"),
	},
	{
		Name:        "Documentation index",
		Description: "Centralized documentation navigation",
		Category:    "Documentation",
		Run:         anyOf("DOCUMENTATION_INDEX.md", "docs/README.md"),
	},
	{
		Name:        "Project metadata",
		Description: "Language-specific project metadata file",
		Category:    "Build",
		Run:         anyOf("package.json", "Cargo.toml", "pyproject.toml", "setup.py", "setup.cfg"),
	},
}
