package linkcheck

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// lessonDir lays out a minimal lesson tree and returns the directory of
// the "current" document.
func lessonDir(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# stub\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	home := filepath.Join(root, "episodes")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}
	return home
}

func TestResolverExistsInHome(t *testing.T) {
	home := lessonDir(t, "episodes/intro.md")
	r := NewResolver(home)

	if !r.Exists(context.Background(), "intro.md") {
		t.Error("intro.md exists in the document's own directory")
	}
	if r.Exists(context.Background(), "missing.md") {
		t.Error("missing.md does not exist anywhere")
	}
}

func TestResolverExtensionSubstitution(t *testing.T) {
	home := lessonDir(t, "episodes/intro.Rmd")
	r := NewResolver(home)

	// The link says .md; only the .Rmd source exists.
	if !r.Exists(context.Background(), "intro.md") {
		t.Error("intro.md should resolve to intro.Rmd by extension substitution")
	}
	// No extension at all gets one appended.
	if !r.Exists(context.Background(), "intro") {
		t.Error("extensionless path should resolve via appended extension")
	}
}

func TestResolverSearchesKnownContentFolders(t *testing.T) {
	home := lessonDir(t, "learners/setup.md")

	// The document lives in episodes/; the target lives one level up in
	// learners/.
	r := NewResolver(home)
	if !r.Exists(context.Background(), "setup.md") {
		t.Errorf("setup.md should be found via learners/ (bases %v)", r.Bases())
	}
}

func TestResolverNormalizesDotSegments(t *testing.T) {
	home := lessonDir(t, "episodes/intro.md")
	r := NewResolver(home)

	if !r.Exists(context.Background(), "./sub/../intro.md") {
		t.Error("dot segments should be normalized before probing")
	}
	if !r.Exists(context.Background(), "../episodes/intro.md") {
		t.Error("parent-relative path into home should resolve")
	}
}

func TestResolverToleratesMissingFolders(t *testing.T) {
	// Home exists but is empty and has no sibling content folders other
	// than itself; nothing should error.
	home := filepath.Join(t.TempDir(), "episodes")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(home)
	if r.Exists(context.Background(), "anything.md") {
		t.Error("nothing exists, Exists must be false")
	}
}

func TestResolverExtraContentDirs(t *testing.T) {
	home := lessonDir(t, "extras/notes.md")

	if NewResolver(home).Exists(context.Background(), "notes.md") {
		t.Fatal("extras/ is not a known folder and must not be searched by default")
	}
	if !NewResolver(home, "extras").Exists(context.Background(), "notes.md") {
		t.Error("extras/ should be searched when configured")
	}
}

func TestForceExt(t *testing.T) {
	tests := []struct {
		path, ext, expected string
	}{
		{"intro.md", "Rmd", "intro.Rmd"},
		{"intro", "md", "intro.md"},
		{"dir/intro.html", "md", "dir/intro.md"},
		{"archive.tar.gz", "md", "archive.tar.md"},
	}
	for _, tt := range tests {
		if got := forceExt(tt.path, tt.ext); got != tt.expected {
			t.Errorf("forceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.expected)
		}
	}
}
