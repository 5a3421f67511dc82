package linkcheck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// knownContentDirs are the content-folder names searched one level above
// a document's own directory, in probe order. The first group follows
// the sandpaper lesson layout, the second the older Jekyll-style layout;
// "." admits the parent directory itself.
var knownContentDirs = []string{
	"episodes",
	"learners",
	"instructors",
	"profiles",
	"_episodes",
	"_episodes_rmd",
	"_extras",
	"_includes",
	".",
}

// Resolver answers whether a cross-page relative path points at a file
// that exists, searching an ordered list of candidate base directories
// with Markdown extension substitution.
type Resolver struct {
	bases []string
}

// NewResolver builds a Resolver for a document living in home. The
// candidate list starts with home itself, followed by each known
// content folder (plus any extras) found one level above home. Folders
// that do not exist are dropped here so Exists never has to care.
func NewResolver(home string, extras ...string) *Resolver {
	bases := []string{filepath.Clean(home)}
	seen := map[string]struct{}{bases[0]: {}}

	parent := filepath.Join(home, "..")
	names := make([]string, 0, len(knownContentDirs)+len(extras))
	names = append(names, knownContentDirs...)
	names = append(names, extras...)

	for _, name := range names {
		dir := filepath.Clean(filepath.Join(parent, name))
		if _, ok := seen[dir]; ok {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		seen[dir] = struct{}{}
		bases = append(bases, dir)
	}

	return &Resolver{bases: bases}
}

// Bases returns the candidate base directories in probe order.
func (r *Resolver) Bases() []string {
	out := make([]string, len(r.bases))
	copy(out, r.bases)
	return out
}

// Exists reports whether path resolves to an existing file under any
// candidate base. For each base it probes the literal path plus the
// path with its extension forced to "md" and "Rmd", so a link written
// against the rendered site still matches the source file. Stat
// failures count as "not found", never as errors.
func (r *Resolver) Exists(ctx context.Context, path string) bool {
	for _, cand := range candidatePaths(path) {
		for _, base := range r.bases {
			select {
			case <-ctx.Done():
				return false
			default:
			}

			if _, err := os.Stat(filepath.Join(base, cand)); err == nil {
				return true
			}
		}
	}
	return false
}

// candidatePaths returns the normalized path and its extension variants.
func candidatePaths(path string) []string {
	p := filepath.Clean(filepath.FromSlash(path))
	return []string{p, forceExt(p, "md"), forceExt(p, "Rmd")}
}

// forceExt replaces the path's extension, or appends one if the path
// has none.
func forceExt(path, ext string) string {
	if old := filepath.Ext(path); old != "" {
		path = strings.TrimSuffix(path, old)
	}
	return path + "." + ext
}
