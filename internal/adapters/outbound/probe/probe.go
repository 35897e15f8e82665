// Package probe implements domain.RepoProbe against a real filesystem
// tree. Every predicate is total: I/O failures degrade to a negative
// answer so one unreadable file can never abort a scan.
package probe

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rsr-standard/rsrcheck/internal/domain"
)

// sourceExtensions bound SourceContainsAny to files that plausibly
// hold source code.
var sourceExtensions = map[string]bool{
	".py":  true,
	".go":  true,
	".rs":  true,
	".js":  true,
	".ts":  true,
	".ex":  true,
	".exs": true,
	".hs":  true,
	".adb": true,
	".ads": true,
}

// FSProbe answers predicates for one repository root.
type FSProbe struct {
	root    string
	exclude map[string]bool
}

// New binds a probe to root. excludePaths are directory names the
// recursive predicates skip.
func New(root string, excludePaths ...string) *FSProbe {
	exclude := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		exclude[strings.TrimSuffix(p, "/")] = true
	}
	return &FSProbe{root: root, exclude: exclude}
}

// Opener implements domain.ProbeOpener.
type Opener struct{}

func NewOpener() *Opener { return &Opener{} }

func (o *Opener) Open(root string, excludePaths ...string) domain.RepoProbe {
	return New(root, excludePaths...)
}

func (p *FSProbe) abs(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

func (p *FSProbe) FileExists(rel string) bool {
	_, err := os.Stat(p.abs(rel))
	return err == nil
}

func (p *FSProbe) AnyExists(paths ...string) bool {
	for _, rel := range paths {
		if p.FileExists(rel) {
			return true
		}
	}
	return false
}

func (p *FSProbe) AllExists(paths ...string) bool {
	for _, rel := range paths {
		if !p.FileExists(rel) {
			return false
		}
	}
	return true
}

func (p *FSProbe) FileContainsAll(rel string, patterns []string) (bool, string) {
	data, err := os.ReadFile(p.abs(rel))
	if err != nil {
		if os.IsNotExist(err) {
			return false, "File not found"
		}
		return false, "Error reading file: " + err.Error()
	}

	content := string(data)
	var missing []string
	for _, pattern := range patterns {
		re, err := regexp.Compile("(?im)" + pattern)
		if err != nil || !re.MatchString(content) {
			missing = append(missing, pattern)
		}
	}

	if len(missing) > 0 {
		if len(missing) > 3 {
			missing = missing[:3]
		}
		return false, "Missing patterns: " + strings.Join(missing, ", ")
	}
	return true, "All required content present"
}

func (p *FSProbe) FileContainsAny(rel string, substrings []string) bool {
	data, err := os.ReadFile(p.abs(rel))
	if err != nil {
		return false
	}
	return containsAny(string(data), substrings)
}

func (p *FSProbe) GlobAnywhere(pattern string) bool {
	found := false
	p.walk(p.root, func(relPath string, d fs.DirEntry) bool {
		if matchGlob(pattern, relPath) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (p *FSProbe) TreeContainsAny(dir string, substrings []string) bool {
	found := false
	p.walk(p.abs(dir), func(relPath string, d fs.DirEntry) bool {
		if d.IsDir() || !d.Type().IsRegular() {
			return true
		}
		data, err := os.ReadFile(filepath.Join(p.abs(dir), filepath.FromSlash(relPath)))
		if err != nil {
			return true
		}
		if containsAny(string(data), substrings) {
			found = true
			return false
		}
		return true
	})
	return found
}

func (p *FSProbe) SourceContainsAny(substrings []string) bool {
	found := false
	p.walk(p.root, func(relPath string, d fs.DirEntry) bool {
		if d.IsDir() || !d.Type().IsRegular() {
			return true
		}
		if !sourceExtensions[strings.ToLower(path.Ext(relPath))] {
			return true
		}
		data, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(relPath)))
		if err != nil {
			return true
		}
		if containsAny(strings.ToLower(string(data)), substrings) {
			found = true
			return false
		}
		return true
	})
	return found
}

// walk visits every entry under base, slash-relative to base, skipping
// excluded directory names. The visitor returns false to stop early.
// Walk errors (missing base, unreadable dirs) are swallowed.
func (p *FSProbe) walk(base string, visit func(relPath string, d fs.DirEntry) bool) {
	stop := false
	_ = filepath.WalkDir(base, func(fullPath string, d fs.DirEntry, err error) error {
		if stop {
			return filepath.SkipAll
		}
		if err != nil {
			return nil
		}
		if fullPath == base {
			return nil
		}
		if d.IsDir() && p.exclude[d.Name()] {
			return filepath.SkipDir
		}
		rel, err := filepath.Rel(base, fullPath)
		if err != nil {
			return nil
		}
		if !visit(filepath.ToSlash(rel), d) {
			stop = true
			return filepath.SkipAll
		}
		return nil
	})
}

// matchGlob matches a pattern against a slash-relative path. Patterns
// without a separator match the base name at any depth; patterns with
// separators (e.g. src/*.rs) match any trailing run of path segments.
func matchGlob(pattern, relPath string) bool {
	if !strings.Contains(pattern, "/") {
		ok, err := path.Match(pattern, path.Base(relPath))
		return err == nil && ok
	}

	patSegments := len(strings.Split(pattern, "/"))
	segments := strings.Split(relPath, "/")
	if len(segments) < patSegments {
		return false
	}
	suffix := strings.Join(segments[len(segments)-patSegments:], "/")
	ok, err := path.Match(pattern, suffix)
	return err == nil && ok
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
