package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// makeFontsTree builds a fonts/ tree with a NotoSansJP subdirectory and
// some root-level archives, returning the base directory.
func makeFontsTree(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	noto := filepath.Join(base, "fonts", "NotoSansJP")
	if err := os.MkdirAll(noto, 0o755); err != nil {
		t.Fatal(err)
	}

	files := []string{
		filepath.Join(base, "fonts", "Roboto-Regular.TachyFont.jar"),
		filepath.Join(base, "fonts", "Roboto-Bold.TachyFont.jar"),
		filepath.Join(noto, "NotoSansJP-Regular.TachyFont.jar"),
		filepath.Join(noto, "NotoSansJP-Bold.TachyFont.jar"),
		filepath.Join(base, "fonts", "README.txt"), // Not an archive
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return base
}

func TestCollectArchives(t *testing.T) {
	base := makeFontsTree(t)

	entries, err := collectArchives(filepath.Join(base, "fonts"))
	if err != nil {
		t.Fatalf("collectArchives() error: %v", err)
	}

	if len(entries) != 4 {
		t.Fatalf("len(entries) = %d, want 4", len(entries))
	}

	// Sorted by family then font name; root family sorts first.
	want := []archiveEntry{
		{font: "Roboto-Bold", family: ""},
		{font: "Roboto-Regular", family: ""},
		{font: "NotoSansJP-Bold", family: "NotoSansJP"},
		{font: "NotoSansJP-Regular", family: "NotoSansJP"},
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entries[%d] = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestCollectArchivesEmpty(t *testing.T) {
	dir := t.TempDir()
	entries, err := collectArchives(dir)
	if err != nil {
		t.Fatalf("collectArchives() error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
