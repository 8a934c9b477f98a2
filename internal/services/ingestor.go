package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Lllllllleong/examedgecontent/internal/gcp"
	"github.com/Lllllllleong/examedgecontent/internal/models"
	"github.com/Lllllllleong/examedgecontent/internal/pdftext"
	"github.com/Lllllllleong/examedgecontent/internal/store"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
)

// openStore is replaced in tests.
var openStore = store.Open

type fetchFunc func(ctx context.Context, bucket, object, destPath string) error

// ObjectIngestor loads a single quiz PDF uploaded to Cloud Storage. The
// object name plays the role of the path below the scan root.
type ObjectIngestor struct {
	loader         *QuizLoader
	fetch          fetchFunc
	quizFolderName string
}

// NewObjectIngestor wires the store, decoder and storage client from the
// environment.
func NewObjectIngestor(ctx context.Context) (*ObjectIngestor, error) {
	st, err := openStore(ctx, LoadStoreConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	decoder, err := pdftext.New(ctx, LoadDecoderConfig())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to create pdf decoder: %w", err)
	}
	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		if c, ok := decoder.(io.Closer); ok {
			c.Close()
		}
		st.Close()
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	config := LoadLoaderConfig()
	f := &ObjectIngestor{
		loader: NewQuizLoader(st, decoder, nil, config),
		fetch: func(ctx context.Context, bucket, object, destPath string) error {
			return gcp.DownloadObject(ctx, storageClient, bucket, object, destPath)
		},
		quizFolderName: config.QuizFolderName,
	}
	slog.Info("Object ingestor initialized.", "quizFolder", config.QuizFolderName)
	return f, nil
}

// Process loads the object named by e if it is a PDF inside a quiz-source
// folder. Decode, extraction and store failures are logged and swallowed so
// the event is not redelivered; only a failed download is returned.
func (f *ObjectIngestor) Process(ctx context.Context, e models.GCSEvent) error {
	logCtx := slog.With("gcsBucket", e.Bucket, "gcsObject", e.Name)

	if !taxonomy.IsPDF(e.Name) {
		logCtx.Info("Object is not a PDF. Skipping.")
		return nil
	}
	subject, topic, ok := taxonomy.FromQuizDir(path.Dir(e.Name), f.quizFolderName)
	if !ok {
		logCtx.Info("Object is not inside a quiz folder. Skipping.")
		return nil
	}

	tempDir, err := os.MkdirTemp("", "quiz-ingest-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	localPath := filepath.Join(tempDir, "source.pdf")
	if err := f.fetch(ctx, e.Bucket, e.Name, localPath); err != nil {
		logCtx.Error("Failed to download source PDF", "error", err)
		return err
	}

	base := path.Base(e.Name)
	src := QuizSource{
		Path:    localPath,
		Name:    strings.TrimSuffix(base, path.Ext(base)),
		Subject: subject,
		Topic:   topic,
	}
	quiz, err := f.loader.ProcessFile(ctx, src)
	if err != nil {
		if !errors.Is(err, ErrNoQuestions) {
			logCtx.Error("Skipping object after processing failure.", "error", err)
		}
		return nil
	}

	logCtx.Info("Object ingested.", "quizId", quiz.ID, "questionCount", quiz.QuestionCount)
	return nil
}
