// Package taxonomy walks a resources tree and derives (subject, topic) from
// where each PDF sits in it.
package taxonomy

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultQuizFolderName marks a directory whose PDFs are quizzes.
	DefaultQuizFolderName = "Practice Questions"
	// General is used when a resource sits too shallow to have a subject or topic.
	General = "General"
)

// ErrRootNotFound is returned before any processing when the scan root is
// missing or is not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// QuizFolder is a quiz-source folder and the PDFs directly inside it.
type QuizFolder struct {
	Path    string
	Subject string
	Topic   string
	PDFs    []string
}

// ResourceFile is a PDF found outside any quiz-source folder.
type ResourceFile struct {
	Path    string
	RelDir  string // slash-separated, "." for the root itself
	Name    string
	Subject string
	Topic   string
}

// Walker enumerates a resources tree. QuizFolderName defaults to
// DefaultQuizFolderName.
type Walker struct {
	Root           string
	QuizFolderName string
}

func (w Walker) marker() string {
	if w.QuizFolderName == "" {
		return DefaultQuizFolderName
	}
	return w.QuizFolderName
}

// QuizFolders calls fn for every quiz-source folder under the root, in
// lexical order. Folders fewer than three levels below the root are skipped.
// An error from fn stops the walk and is returned.
func (w Walker) QuizFolders(fn func(QuizFolder) error) error {
	if err := checkRoot(w.Root); err != nil {
		return err
	}
	marker := w.marker()

	return filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() || d.Name() != marker || path == w.Root {
			return nil
		}

		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return nil
		}
		subject, topic, ok := FromQuizDir(filepath.ToSlash(rel), marker)
		if !ok {
			slog.Debug("quiz folder too shallow for a subject and topic", "path", path)
			return nil
		}

		pdfs, err := listPDFs(path)
		if err != nil {
			slog.Warn("skipping unreadable quiz folder", "path", path, "error", err)
			return nil
		}
		return fn(QuizFolder{Path: path, Subject: subject, Topic: topic, PDFs: pdfs})
	})
}

// Resources calls fn for every PDF under the root that is not inside a
// quiz-source folder, in lexical order. Quiz-source folders are pruned.
func (w Walker) Resources(fn func(ResourceFile) error) error {
	if err := checkRoot(w.Root); err != nil {
		return err
	}
	marker := w.marker()

	return filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if d.Name() == marker && path != w.Root {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsPDF(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(w.Root, filepath.Dir(path))
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		subject, topic := FromResourceDir(rel)
		return fn(ResourceFile{
			Path:    path,
			RelDir:  rel,
			Name:    d.Name(),
			Subject: subject,
			Topic:   topic,
		})
	})
}

// FromQuizDir derives subject and topic from the slash-separated path of a
// quiz-source folder relative to the scan root: the subject is three
// components from the end and the topic two.
func FromQuizDir(relDir, marker string) (subject, topic string, ok bool) {
	parts := strings.Split(relDir, "/")
	n := len(parts)
	if n < 3 || parts[n-1] != marker {
		return "", "", false
	}
	return parts[n-3], parts[n-2], true
}

// FromResourceDir derives subject and topic from the first two components
// of a resource's directory relative to the scan root.
func FromResourceDir(relDir string) (subject, topic string) {
	subject, topic = General, General
	if relDir == "." || relDir == "" {
		return subject, topic
	}
	parts := strings.Split(relDir, "/")
	subject = parts[0]
	if len(parts) > 1 {
		topic = parts[1]
	}
	return subject, topic
}

// IsPDF reports whether name has a .pdf extension, ignoring case.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRootNotFound, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}
	return nil
}

func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var pdfs []string
	for _, e := range entries {
		if !e.IsDir() && IsPDF(e.Name()) {
			pdfs = append(pdfs, filepath.Join(dir, e.Name()))
		}
	}
	return pdfs, nil
}
