package markdown

import (
	"context"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a.core_concepts.md": {Data: []byte("### One\n")},
		"c.pod_design.md":    {Data: []byte("### Two\n")},
		"notes.txt":          {Data: []byte("not markdown")},
		"nested/d.extra.md":  {Data: []byte("### Three\n")},
	}
}

func TestDiscoverReturnsSortedMarkdownFiles(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	paths, err := loader.Discover(context.Background(), ".")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"a.core_concepts.md", "c.pod_design.md"}
	if len(paths) != len(want) {
		t.Fatalf("expected %v, got %v", want, paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("path %d: expected %q, got %q", i, want[i], paths[i])
		}
	}
}

func TestDiscoverRecursiveIncludesSubdirectories(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{Recursive: true})

	paths, err := loader.Discover(context.Background(), ".")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected nested file to be discovered, got %v", paths)
	}
}

func TestLoadFileReadsSource(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	src, err := loader.LoadFile(context.Background(), "a.core_concepts.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if src.Name != "a.core_concepts.md" {
		t.Fatalf("unexpected name %q", src.Name)
	}
	if string(src.Source) != "### One\n" {
		t.Fatalf("unexpected source %q", src.Source)
	}
}

func TestLoadFileMissingReturnsError(t *testing.T) {
	loader := NewLoader(testFS(), LoaderConfig{})

	if _, err := loader.LoadFile(context.Background(), "missing.md"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFrontMatterOverrides(t *testing.T) {
	source := []byte("---\ntitle: Custom\ncategory: Core Concepts\ndifficulty: advanced\ntags: [exam]\n---\n### Body heading\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Category != "Core Concepts" || meta.Difficulty != "advanced" {
		t.Fatalf("unexpected metadata %+v", meta)
	}
	if string(body) != "### Body heading\n" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestParseFrontMatterAbsent(t *testing.T) {
	source := []byte("### Plain exercise\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Category != "" {
		t.Fatalf("expected zero metadata, got %+v", meta)
	}
	if string(body) != string(source) {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}
