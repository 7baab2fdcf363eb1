package fsutil

import (
	"io/fs"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"README.md":               &fstest.MapFile{Data: []byte("readme")},
		"src/main.py":             &fstest.MapFile{Data: []byte("main")},
		"src/util.py":             &fstest.MapFile{Data: []byte("util")},
		".envrc-sample":           &fstest.MapFile{Data: []byte("env")},
		".git/config":             &fstest.MapFile{Data: []byte("git")},
		"__pycache__/main.pyc":    &fstest.MapFile{Data: []byte("pyc")},
		"dist/pkg-0.1.0.tar.gz":   &fstest.MapFile{Data: []byte("dist")},
		"tests/test_main.py":      &fstest.MapFile{Data: []byte("test")},
		"tests/__pycache__/t.pyc": &fstest.MapFile{Data: []byte("pyc")},
		"notes.tmp":               &fstest.MapFile{Data: []byte("tmp")},
	}
}

func TestWalk_IgnoreDefaults(t *testing.T) {
	visited := map[string]bool{}
	err := Walk(testFS(), WalkOptions{}, func(relPath string, d fs.DirEntry) error {
		visited[relPath] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	for _, ignored := range []string{"__pycache__/main.pyc", "dist/pkg-0.1.0.tar.gz", ".git/config", "tests/__pycache__/t.pyc"} {
		if visited[ignored] {
			t.Errorf("Walk() visited ignored path: %s", ignored)
		}
	}
	if !visited["src/main.py"] || !visited["README.md"] {
		t.Errorf("Walk() missed expected paths, visited: %v", visited)
	}
}

func TestWalk_HiddenFiles(t *testing.T) {
	visited := map[string]bool{}
	err := Walk(testFS(), WalkOptions{}, func(relPath string, d fs.DirEntry) error {
		visited[relPath] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if visited[".envrc-sample"] {
		t.Error("Walk() visited hidden file without IncludeHidden")
	}

	visited = map[string]bool{}
	err = Walk(testFS(), WalkOptions{IgnoreDirs: []string{}, IncludeHidden: true}, func(relPath string, d fs.DirEntry) error {
		visited[relPath] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if !visited[".envrc-sample"] {
		t.Error("Walk() did not visit hidden file with IncludeHidden=true")
	}
}

func TestWalk_IgnorePatterns(t *testing.T) {
	visited := map[string]bool{}
	err := Walk(testFS(), WalkOptions{IgnorePatterns: []string{"*.tmp"}}, func(relPath string, d fs.DirEntry) error {
		visited[relPath] = true
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if visited["notes.tmp"] {
		t.Error("Walk() visited ignored pattern *.tmp")
	}
}

func TestWalkAll_VisitsEverythingInLexicalOrder(t *testing.T) {
	var order []string
	err := WalkAll(testFS(), func(relPath string, d fs.DirEntry) error {
		if !d.IsDir() {
			order = append(order, relPath)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkAll() error = %v", err)
	}

	if len(order) != 10 {
		t.Errorf("WalkAll() visited %d files, want 10: %v", len(order), order)
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("WalkAll() order not lexical: %q before %q", order[i-1], order[i])
		}
	}
}

func TestWalk_SkipDir(t *testing.T) {
	visited := map[string]bool{}
	err := WalkAll(testFS(), func(relPath string, d fs.DirEntry) error {
		visited[relPath] = true
		if d.IsDir() && relPath == "src" {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if visited["src/main.py"] {
		t.Error("Walk() visited path inside skipped directory")
	}
}
