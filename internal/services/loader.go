package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Lllllllleong/examedgecontent/internal/extract"
	"github.com/Lllllllleong/examedgecontent/internal/models"
	"github.com/Lllllllleong/examedgecontent/internal/naming"
	"github.com/Lllllllleong/examedgecontent/internal/pdftext"
	"github.com/Lllllllleong/examedgecontent/internal/store"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
)

// ErrNoQuestions is returned by ProcessFile when a PDF yields no questions.
var ErrNoQuestions = errors.New("no questions found")

// LoaderConfig holds configuration for the quiz loader.
type LoaderConfig struct {
	Root                string
	QuizFolderName      string
	QuizzesCollection   string
	QuestionsCollection string
}

// QuizLoader turns quiz PDFs into quiz and question records.
type QuizLoader struct {
	store   store.Store
	decoder pdftext.Decoder
	policy  naming.DifficultyPolicy
	config  LoaderConfig
}

// QuizSource is one quiz PDF and its taxonomy. Name is the filename without
// extension and defaults to the base name of Path.
type QuizSource struct {
	Path    string
	Name    string
	Subject string
	Topic   string
}

// LoaderSummary counts what a loader run did.
type LoaderSummary struct {
	FoldersFound     int
	FilesSeen        int
	QuizzesWritten   int
	QuestionsWritten int
	EmptyFiles       int
	FailedFiles      int
}

// String renders the summary line printed by the loader CLI.
func (s LoaderSummary) String() string {
	return fmt.Sprintf("%d quiz folders, %d PDFs: %d quizzes with %d questions written, %d without questions, %d failed",
		s.FoldersFound, s.FilesSeen, s.QuizzesWritten, s.QuestionsWritten, s.EmptyFiles, s.FailedFiles)
}

// NewQuizLoader creates a QuizLoader. A nil policy picks difficulties at random.
func NewQuizLoader(st store.Store, decoder pdftext.Decoder, policy naming.DifficultyPolicy, config LoaderConfig) *QuizLoader {
	if policy == nil {
		policy = naming.RandomDifficulty(nil)
	}
	if config.QuizzesCollection == "" {
		config.QuizzesCollection = "quizzes"
	}
	if config.QuestionsCollection == "" {
		config.QuestionsCollection = "questions"
	}
	return &QuizLoader{store: st, decoder: decoder, policy: policy, config: config}
}

// Run walks the root and loads every PDF found in a quiz-source folder, one
// at a time. Only a missing root aborts the run; per-file failures are
// logged and counted.
func (l *QuizLoader) Run(ctx context.Context) (*LoaderSummary, error) {
	slog.Info("Starting quiz load.", "root", l.config.Root)

	summary := &LoaderSummary{}
	walker := taxonomy.Walker{Root: l.config.Root, QuizFolderName: l.config.QuizFolderName}
	err := walker.QuizFolders(func(folder taxonomy.QuizFolder) error {
		summary.FoldersFound++
		slog.Info("Found quiz folder.", "subject", folder.Subject, "topic", folder.Topic, "pdfCount", len(folder.PDFs))

		for _, pdfPath := range folder.PDFs {
			summary.FilesSeen++
			quiz, err := l.ProcessFile(ctx, QuizSource{Path: pdfPath, Subject: folder.Subject, Topic: folder.Topic})
			switch {
			case err == nil:
				summary.QuizzesWritten++
				summary.QuestionsWritten += quiz.QuestionCount
			case errors.Is(err, ErrNoQuestions):
				summary.EmptyFiles++
			default:
				summary.FailedFiles++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("quiz load aborted: %w", err)
	}

	slog.Info("Quiz load complete.", "summary", summary.String())
	return summary, nil
}

// ProcessFile extracts the questions of one PDF and writes them, followed by
// their quiz. It returns ErrNoQuestions when nothing was extracted. Errors
// are logged here with file context.
func (l *QuizLoader) ProcessFile(ctx context.Context, src QuizSource) (*models.Quiz, error) {
	name := src.Name
	if name == "" {
		base := filepath.Base(src.Path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	logCtx := slog.With("subject", src.Subject, "topic", src.Topic, "file", name)
	logCtx.Info("Processing PDF.")

	pages, err := l.decoder.Pages(ctx, src.Path)
	if err != nil {
		logCtx.Error("Failed to read PDF", "path", src.Path, "error", err)
		return nil, fmt.Errorf("failed to read PDF %s: %w", src.Path, err)
	}

	questions := extract.Questions(extract.JoinPages(pages))
	if len(questions) == 0 {
		logCtx.Warn("No questions found in PDF.", "path", src.Path)
		return nil, fmt.Errorf("%s: %w", src.Path, ErrNoQuestions)
	}

	quiz := AssembleQuiz(src.Subject, src.Topic, name, questions, l.policy)
	logCtx = logCtx.With("quizId", quiz.ID)
	logCtx.Info("Found questions. Uploading quiz.", "questionCount", len(questions))

	for i, q := range questions {
		if _, err := l.store.AddToCollection(ctx, l.config.QuestionsCollection, q); err != nil {
			logCtx.Error("Failed to write question", "questionIndex", i, "error", err)
			return nil, fmt.Errorf("failed to write question %d of quiz %s: %w", i+1, quiz.ID, err)
		}
	}
	if err := l.store.SetDocument(ctx, l.config.QuizzesCollection, quiz.ID, quiz); err != nil {
		logCtx.Error("Failed to write quiz", "error", err)
		return nil, fmt.Errorf("failed to write quiz %s: %w", quiz.ID, err)
	}

	logCtx.Info("Quiz created.", "difficulty", quiz.Difficulty, "timeLimit", quiz.TimeLimit)
	return &quiz, nil
}
