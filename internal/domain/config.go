package domain

// DefaultJSONOutput is the export file name used when neither the
// config nor the --json-output flag names one.
const DefaultJSONOutput = "rsr_compliance.json"

// RepoConfig is the optional per-repository configuration read from
// .rsrcheck.yaml. The checklist itself is fixed; config only tunes the
// scan surface and export target.
type RepoConfig struct {
	// ExcludePaths lists directory names the recursive predicates
	// skip (e.g. node_modules, vendor).
	ExcludePaths []string `yaml:"exclude_paths"`

	// JSONOutput overrides the default JSON report file name.
	JSONOutput string `yaml:"json_output"`
}

// DefaultConfig returns the configuration used when no .rsrcheck.yaml
// is present.
func DefaultConfig() RepoConfig {
	return RepoConfig{JSONOutput: DefaultJSONOutput}
}
