package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func setupCaptionDir(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "tagvault-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}

func TestStore_SidecarPath(t *testing.T) {
	store := NewStore(".txt", ", ")

	tests := []struct {
		name      string
		imagePath string
		want      string
	}{
		{"replaces image extension", "/photos/cat.jpg", "/photos/cat.txt"},
		{"no extension", "/photos/cat", "/photos/cat.txt"},
		{"dotted directory untouched", "/a/b.c/img.png", "/a/b.c/img.txt"},
		{"uppercase extension", "/photos/CAT.JPG", "/photos/CAT.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.SidecarPath(tt.imagePath); got != tt.want {
				t.Errorf("SidecarPath(%q) = %q, want %q", tt.imagePath, got, tt.want)
			}
		})
	}
}

func TestStore_SidecarPath_AddsMissingDot(t *testing.T) {
	store := NewStore("caption", ", ")

	if got := store.SidecarPath("/photos/cat.jpg"); got != "/photos/cat.caption" {
		t.Errorf("SidecarPath = %q, want /photos/cat.caption", got)
	}
}

func TestStore_ReadTags_MissingSidecar(t *testing.T) {
	dir, cleanup := setupCaptionDir(t)
	defer cleanup()

	store := NewStore(".txt", ", ")

	tags, err := store.ReadTags(filepath.Join(dir, "missing.png"))
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}
	if tags != nil {
		t.Errorf("expected no tags for missing sidecar, got %v", tags)
	}
}

func TestStore_ReadTags_ParsesCaption(t *testing.T) {
	dir, cleanup := setupCaptionDir(t)
	defer cleanup()

	imagePath := filepath.Join(dir, "cat.png")
	sidecar := filepath.Join(dir, "cat.txt")
	if err := os.WriteFile(sidecar, []byte("cat, white fur , ,cute"), 0644); err != nil {
		t.Fatalf("failed to write sidecar: %v", err)
	}

	store := NewStore(".txt", ", ")

	tags, err := store.ReadTags(imagePath)
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}

	want := []string{"cat", "white fur", "cute"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %v", len(want), tags)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Errorf("tag %d = %q, want %q", i, tags[i], tag)
		}
	}
}

func TestStore_ReadTags_ReplacesInvalidUTF8(t *testing.T) {
	dir, cleanup := setupCaptionDir(t)
	defer cleanup()

	imagePath := filepath.Join(dir, "cat.png")
	sidecar := filepath.Join(dir, "cat.txt")
	if err := os.WriteFile(sidecar, []byte("cat\xff, dog"), 0644); err != nil {
		t.Fatalf("failed to write sidecar: %v", err)
	}

	store := NewStore(".txt", ", ")

	tags, err := store.ReadTags(imagePath)
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %v", tags)
	}
	if tags[0] != "cat�" {
		t.Errorf("tag 0 = %q, want invalid byte replaced", tags[0])
	}
	if tags[1] != "dog" {
		t.Errorf("tag 1 = %q, want dog", tags[1])
	}
}

func TestStore_WriteTags_RoundTrip(t *testing.T) {
	dir, cleanup := setupCaptionDir(t)
	defer cleanup()

	imagePath := filepath.Join(dir, "cat.png")
	store := NewStore(".txt", ", ")

	if err := store.WriteTags(imagePath, []string{"cat", "dog"}); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cat.txt"))
	if err != nil {
		t.Fatalf("failed to read sidecar: %v", err)
	}
	if string(data) != "cat, dog" {
		t.Errorf("sidecar content = %q, want %q", string(data), "cat, dog")
	}

	tags, err := store.ReadTags(imagePath)
	if err != nil {
		t.Fatalf("ReadTags failed: %v", err)
	}
	if len(tags) != 2 || tags[0] != "cat" || tags[1] != "dog" {
		t.Errorf("round-trip tags = %v", tags)
	}
}

func TestStore_WriteTags_EmptyList(t *testing.T) {
	dir, cleanup := setupCaptionDir(t)
	defer cleanup()

	imagePath := filepath.Join(dir, "cat.png")
	store := NewStore(".txt", ", ")

	if err := store.WriteTags(imagePath, nil); err != nil {
		t.Fatalf("WriteTags failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cat.txt"))
	if err != nil {
		t.Fatalf("expected empty sidecar to exist: %v", err)
	}
	if string(data) != "" {
		t.Errorf("sidecar content = %q, want empty", string(data))
	}
}
