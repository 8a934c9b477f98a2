package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates empty files at the given slash-separated paths under dir.
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestQuizFolders(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"Math/Algebra/Practice Questions/Quiz1.pdf",
		"Math/Algebra/Practice Questions/Quiz2.PDF",
		"Math/Algebra/Practice Questions/answers.txt",
		"Math/Algebra/Notes.pdf",
		"Science/Physics/Motion/Practice Questions/Kinematics.pdf",
		"Shallow/Practice Questions/Skipped.pdf",
	)

	var got []QuizFolder
	err := Walker{Root: root}.QuizFolders(func(f QuizFolder) error {
		got = append(got, f)
		return nil
	})
	if err != nil {
		t.Fatalf("QuizFolders() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("QuizFolders() found %d folders, want 2: %+v", len(got), got)
	}

	if got[0].Subject != "Math" || got[0].Topic != "Algebra" {
		t.Errorf("folder 0 taxonomy = (%q, %q), want (Math, Algebra)", got[0].Subject, got[0].Topic)
	}
	wantPDFs := []string{
		filepath.Join(root, "Math", "Algebra", "Practice Questions", "Quiz1.pdf"),
		filepath.Join(root, "Math", "Algebra", "Practice Questions", "Quiz2.PDF"),
	}
	if !reflect.DeepEqual(got[0].PDFs, wantPDFs) {
		t.Errorf("folder 0 PDFs = %v, want %v", got[0].PDFs, wantPDFs)
	}
	if got[1].Subject != "Physics" || got[1].Topic != "Motion" {
		t.Errorf("folder 1 taxonomy = (%q, %q), want (Physics, Motion)", got[1].Subject, got[1].Topic)
	}
}

func TestQuizFolders_CustomMarker(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Math/Algebra/MCQ/Quiz1.pdf", "Math/Algebra/Practice Questions/Quiz2.pdf")

	var subjects []string
	err := Walker{Root: root, QuizFolderName: "MCQ"}.QuizFolders(func(f QuizFolder) error {
		subjects = append(subjects, f.Subject+"/"+f.Topic+"/"+filepath.Base(f.PDFs[0]))
		return nil
	})
	if err != nil {
		t.Fatalf("QuizFolders() error = %v", err)
	}
	if want := []string{"Math/Algebra/Quiz1.pdf"}; !reflect.DeepEqual(subjects, want) {
		t.Errorf("got %v, want %v", subjects, want)
	}
}

func TestQuizFolders_CallbackErrorStops(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "A/B/Practice Questions/1.pdf", "C/D/Practice Questions/2.pdf")

	stop := errors.New("stop")
	calls := 0
	err := Walker{Root: root}.QuizFolders(func(QuizFolder) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("QuizFolders() error = %v, want %v", err, stop)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	called := false
	w := Walker{Root: root}

	err := w.QuizFolders(func(QuizFolder) error { called = true; return nil })
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("QuizFolders() error = %v, want ErrRootNotFound", err)
	}
	err = w.Resources(func(ResourceFile) error { called = true; return nil })
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Resources() error = %v, want ErrRootNotFound", err)
	}
	if called {
		t.Error("callback ran for a missing root")
	}
}

func TestWalker_RootIsFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.pdf")
	writeTree(t, filepath.Dir(f), "file.pdf")

	err := Walker{Root: f}.Resources(func(ResourceFile) error { return nil })
	if !errors.Is(err, ErrRootNotFound) {
		t.Errorf("Resources() error = %v, want ErrRootNotFound", err)
	}
}

func TestResources(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"Loose.pdf",
		"Math/Overview.pdf",
		"Math/Algebra/Notes.pdf",
		"Math/Algebra/Deep/More.pdf",
		"Math/Algebra/Practice Questions/Quiz1.pdf",
		"Math/Algebra/readme.md",
	)

	var got []ResourceFile
	err := Walker{Root: root}.Resources(func(r ResourceFile) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("Resources() error = %v", err)
	}

	type row struct{ rel, name, subject, topic string }
	var rows []row
	for _, r := range got {
		rows = append(rows, row{r.RelDir, r.Name, r.Subject, r.Topic})
	}
	want := []row{
		{".", "Loose.pdf", General, General},
		{"Math/Algebra/Deep", "More.pdf", "Math", "Algebra"},
		{"Math/Algebra", "Notes.pdf", "Math", "Algebra"},
		{"Math", "Overview.pdf", "Math", General},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Resources() = %+v, want %+v", rows, want)
	}
}

func TestFromQuizDir(t *testing.T) {
	tests := []struct {
		rel            string
		subject, topic string
		ok             bool
	}{
		{"Math/Algebra/Practice Questions", "Math", "Algebra", true},
		{"2024/Math/Algebra/Practice Questions", "Math", "Algebra", true},
		{"Algebra/Practice Questions", "", "", false},
		{"Math/Algebra/Notes", "", "", false},
	}
	for _, tt := range tests {
		s, tp, ok := FromQuizDir(tt.rel, DefaultQuizFolderName)
		if s != tt.subject || tp != tt.topic || ok != tt.ok {
			t.Errorf("FromQuizDir(%q) = (%q, %q, %v), want (%q, %q, %v)", tt.rel, s, tp, ok, tt.subject, tt.topic, tt.ok)
		}
	}
}

func TestIsPDF(t *testing.T) {
	for name, want := range map[string]bool{
		"a.pdf": true, "b.PDF": true, "c.Pdf": true, "d.txt": false, "pdf": false,
	} {
		if got := IsPDF(name); got != want {
			t.Errorf("IsPDF(%q) = %v, want %v", name, got, want)
		}
	}
}
