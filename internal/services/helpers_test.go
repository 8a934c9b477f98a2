package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lllllllleong/examedgecontent/internal/store"
)

const twoQuestions = `1. What is 2+2?
A) 3
B) 4
C) 5
D) 6
Answer: B
2. What is 3*3?
A) 6
B) 8
C) 9
D) 12
Answer: C
`

// textDecoder treats the file's bytes as its only page. Files starting with
// "BROKEN" fail to decode.
type textDecoder struct {
	calls int
}

func (d *textDecoder) Pages(_ context.Context, path string) ([]string, error) {
	d.calls++
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(string(data), "BROKEN") {
		return nil, errors.New("corrupt xref table")
	}
	return []string{string(data)}, nil
}

// failingStore rejects every write to one collection.
type failingStore struct {
	*store.MemoryStore
	collection string
}

func (s failingStore) AddToCollection(ctx context.Context, collection string, record any) (string, error) {
	if collection == s.collection {
		return "", errors.New("permission denied")
	}
	return s.MemoryStore.AddToCollection(ctx, collection, record)
}

func (s failingStore) SetDocument(ctx context.Context, collection, key string, record any) error {
	if collection == s.collection {
		return errors.New("permission denied")
	}
	return s.MemoryStore.SetDocument(ctx, collection, key, record)
}

// writeFiles creates files with the given contents under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
