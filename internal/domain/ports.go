package domain

// RepoProbe answers predicate questions about one repository tree.
// Every method is total: unreadable files, missing directories, and
// walk errors degrade to a negative answer, never an error.
type RepoProbe interface {
	// FileExists reports whether a file or directory exists at the
	// path, relative to the repository root.
	FileExists(path string) bool

	// AnyExists is a logical OR over FileExists.
	AnyExists(paths ...string) bool

	// AllExists is a logical AND over FileExists.
	AllExists(paths ...string) bool

	// FileContainsAll checks the file against every pattern using
	// case-insensitive multiline regex search. The detail explains a
	// failure (missing file, read error, or up to the first three
	// missing patterns).
	FileContainsAll(path string, patterns []string) (bool, string)

	// FileContainsAny reports whether the file's text contains at
	// least one of the substrings.
	FileContainsAny(path string, substrings []string) bool

	// GlobAnywhere reports whether any entry under the root matches
	// the glob pattern, at any depth.
	GlobAnywhere(pattern string) bool

	// TreeContainsAny reports whether any regular file under dir
	// contains at least one of the substrings. Best-effort.
	TreeContainsAny(dir string, substrings []string) bool

	// SourceContainsAny reports whether any source file under the
	// root contains one of the substrings, matched against lowercased
	// file text.
	SourceContainsAny(substrings []string) bool
}

// ProbeOpener binds a RepoProbe to a repository root. Directory names
// in excludePaths are skipped by the recursive predicates.
type ProbeOpener interface {
	Open(root string, excludePaths ...string) RepoProbe
}

// ConfigLoader reads the optional per-repository configuration.
type ConfigLoader interface {
	Load(repoPath string) (RepoConfig, error)
}

// GitInfo exposes git metadata for a repository path.
type GitInfo interface {
	IsGitRepo(repoPath string) bool
	CommitHash(repoPath string) (string, error)
}
