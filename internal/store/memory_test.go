package store

import (
	"context"
	"testing"
)

func TestMemoryStore_AddGeneratesKeys(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	k1, err := s.AddToCollection(ctx, "questions", "one")
	if err != nil {
		t.Fatalf("AddToCollection() error = %v", err)
	}
	k2, _ := s.AddToCollection(ctx, "questions", "one")
	if k1 == k2 {
		t.Errorf("AddToCollection() reused key %q", k1)
	}
	if got := s.Count("questions"); got != 2 {
		t.Errorf("Count() = %d, want 2 (identical records are not merged)", got)
	}
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.SetDocument(ctx, "quizzes", "math-algebra-quiz1", "v1"); err != nil {
		t.Fatalf("SetDocument() error = %v", err)
	}
	if err := s.SetDocument(ctx, "quizzes", "math-algebra-quiz1", "v2"); err != nil {
		t.Fatalf("SetDocument() error = %v", err)
	}
	if got := s.Count("quizzes"); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if rec, _ := s.Get("quizzes", "math-algebra-quiz1"); rec != "v2" {
		t.Errorf("Get() = %v, want v2", rec)
	}
}

func TestMemoryStore_SetRejectsEmptyKey(t *testing.T) {
	if err := NewMemoryStore().SetDocument(context.Background(), "quizzes", "", "x"); err == nil {
		t.Error("SetDocument() with empty key should fail")
	}
}

func TestMemoryStore_AllOrdered(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.SetDocument(ctx, "c", "b", 2)
	_ = s.SetDocument(ctx, "c", "a", 1)

	all := s.All("c")
	if len(all) != 2 || all[0] != 1 || all[1] != 2 {
		t.Errorf("All() = %v, want [1 2]", all)
	}
	if len(s.All("empty")) != 0 {
		t.Error("All() on unknown collection should be empty")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, err := Open(context.Background(), Config{Backend: "redis"}); err == nil {
		t.Error("Open() with unknown backend should fail")
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), Config{Backend: BackendMemory})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("Open(memory) returned %T", s)
	}
}
