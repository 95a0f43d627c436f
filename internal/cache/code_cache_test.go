package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// memStorage 内存版对象存储
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	fetches []string
	failAll bool
}

func (s *memStorage) FetchObject(_ context.Context, _, objectName, savePath string) error {
	s.mu.Lock()
	s.fetches = append(s.fetches, objectName)
	content, ok := s.objects[objectName]
	failAll := s.failAll
	s.mu.Unlock()

	if failAll {
		return fmt.Errorf("storage unavailable")
	}
	if !ok {
		return fmt.Errorf("object %s not found", objectName)
	}
	if err := os.MkdirAll(filepath.Dir(savePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(savePath, content, 0644)
}

func TestEnsurePresentSkipsCachedFiles(t *testing.T) {
	baseDir := t.TempDir()
	storage := &memStorage{objects: map[string][]byte{}}
	c := NewCodeCache(baseDir, "bucket", storage)

	entry := Entry{TeamID: "t1", CodeID: "code1", Language: "cpp"}
	// 预先写入缓存
	path := c.FilePath("THUAI7", entry)
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("binary"), 0644)

	if err := c.EnsurePresent(context.Background(), "THUAI7", []Entry{entry}); err != nil {
		t.Fatalf("EnsurePresent failed: %v", err)
	}
	if len(storage.fetches) != 0 {
		t.Errorf("fetches = %v, want none", storage.fetches)
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 0 {
		t.Errorf("Stats = (%d, %d), want (1, 0)", hits, misses)
	}
}

func TestEnsurePresentFetchesMisses(t *testing.T) {
	baseDir := t.TempDir()
	storage := &memStorage{objects: map[string][]byte{
		"THUAI7/code/t1/code1":    []byte("bin1"),
		"THUAI7/code/t2/code2.py": []byte("print()"),
	}}
	c := NewCodeCache(baseDir, "bucket", storage)

	entries := []Entry{
		{TeamID: "t1", CodeID: "code1", Language: "cpp"},
		{TeamID: "t2", CodeID: "code2", Language: "py"},
	}
	if err := c.EnsurePresent(context.Background(), "THUAI7", entries); err != nil {
		t.Fatalf("EnsurePresent failed: %v", err)
	}
	for _, e := range entries {
		if _, err := os.Stat(c.FilePath("THUAI7", e)); err != nil {
			t.Errorf("file for %s missing: %v", e.CodeID, err)
		}
	}
	if len(storage.fetches) != 2 {
		t.Errorf("fetches = %d, want 2", len(storage.fetches))
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 2 {
		t.Errorf("Stats = (%d, %d), want (0, 2)", hits, misses)
	}
}

func TestEnsurePresentFailsOnFetchError(t *testing.T) {
	baseDir := t.TempDir()
	storage := &memStorage{objects: map[string][]byte{}, failAll: true}
	c := NewCodeCache(baseDir, "bucket", storage)

	err := c.EnsurePresent(context.Background(), "THUAI7",
		[]Entry{{TeamID: "t1", CodeID: "code1", Language: "cpp"}})
	if err == nil {
		t.Fatal("EnsurePresent succeeded, want error")
	}
}

func TestFilePathLayout(t *testing.T) {
	c := NewCodeCache("/data/contest", "bucket", nil)

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "cpp代码无扩展名",
			entry: Entry{TeamID: "t1", CodeID: "abc", Language: "cpp"},
			want:  filepath.Join("/data/contest", "THUAI7", "code", "t1", "abc"),
		},
		{
			name:  "py代码带扩展名",
			entry: Entry{TeamID: "t2", CodeID: "def", Language: "py"},
			want:  filepath.Join("/data/contest", "THUAI7", "code", "t2", "def.py"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FilePath("THUAI7", tt.entry); got != tt.want {
				t.Errorf("FilePath = %q, want %q", got, tt.want)
			}
		})
	}
}
