package vault

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeFiles creates files (relative path -> content) under root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"note1.md":                 "# Test",
		"folder/note2.md":          "# Test",
		"docs/deep/readme.MD":      "# Test",
		"image.png":                "png",
		".obsidian/workspace.md":   "skip",
		"folder/.trash/deleted.md": "skip",
	})

	files, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	want := []struct {
		relPath string
		folder  string
	}{
		{"docs/deep/readme.MD", "docs/deep"},
		{"folder/note2.md", "folder"},
		{"note1.md", ""},
	}
	if len(files) != len(want) {
		t.Fatalf("Scan() found %d files, want %d: %+v", len(files), len(want), files)
	}
	for i, w := range want {
		if files[i].RelPath != w.relPath {
			t.Errorf("files[%d].RelPath = %q, want %q", i, files[i].RelPath, w.relPath)
		}
		if files[i].Folder != w.folder {
			t.Errorf("files[%d].Folder = %q, want %q", i, files[i].Folder, w.folder)
		}
		if files[i].AbsPath != filepath.Join(root, filepath.FromSlash(w.relPath)) {
			t.Errorf("files[%d].AbsPath = %q", i, files[i].AbsPath)
		}
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Scan() should fail for a missing root")
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.md": "x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, root); err == nil {
		t.Error("Scan() should fail for a cancelled context")
	}
}
