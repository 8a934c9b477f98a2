package services

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Lllllllleong/examedgecontent/internal/gcp"
	"github.com/Lllllllleong/examedgecontent/internal/pdftext"
	"github.com/Lllllllleong/examedgecontent/internal/store"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
)

// LoadLoaderConfig reads the loader pipeline settings from the environment.
func LoadLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Root:                gcp.GetEnv("RESOURCES_ROOT", "./resources"),
		QuizFolderName:      gcp.GetEnv("QUIZ_FOLDER_NAME", taxonomy.DefaultQuizFolderName),
		QuizzesCollection:   gcp.GetEnv("QUIZZES_COLLECTION", "quizzes"),
		QuestionsCollection: gcp.GetEnv("QUESTIONS_COLLECTION", "questions"),
	}
}

// LoadCatalogConfig reads the catalog pipeline settings from the environment.
func LoadCatalogConfig() CatalogConfig {
	return CatalogConfig{
		Root:           gcp.GetEnv("CATALOG_ROOT", "./public/resources"),
		QuizFolderName: gcp.GetEnv("QUIZ_FOLDER_NAME", taxonomy.DefaultQuizFolderName),
		OutputPath:     gcp.GetEnv("CATALOG_OUTPUT", "./src/data/resources.json"),
		URLPrefix:      gcp.GetEnv("CATALOG_URL_PREFIX", "/resources"),
		Bucket:         gcp.GetEnv("CATALOG_BUCKET", ""),
		Object:         gcp.GetEnv("CATALOG_OBJECT", "resources.json"),
	}
}

// LoadStoreConfig reads the document store settings from the environment.
func LoadStoreConfig() store.Config {
	return store.Config{
		Backend:         gcp.GetEnv("STORE_BACKEND", store.BackendFirestore),
		ProjectID:       gcp.GetEnv("PROJECT_ID", ""),
		CredentialsFile: gcp.GetEnv("GOOGLE_APPLICATION_CREDENTIALS_FILE", ""),
		MongoURI:        gcp.GetEnv("MONGO_URI", ""),
		MongoDatabase:   gcp.GetEnv("MONGO_DATABASE", "examedge"),
	}
}

// LoadDecoderConfig reads the PDF decoder settings from the environment.
func LoadDecoderConfig() pdftext.Config {
	return pdftext.Config{
		Name:          gcp.GetEnv("PDF_DECODER", pdftext.DecoderTextLayer),
		PdftotextPath: gcp.GetEnv("PDFTOTEXT_PATH", ""),
		ProjectID:     gcp.GetEnv("PROJECT_ID", ""),
		Region:        gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
	}
}

// SetupLogging installs the default slog logger from LOG_LEVEL and LOG_FORMAT.
func SetupLogging() {
	var level slog.Level
	switch strings.ToLower(gcp.GetEnv("LOG_LEVEL", "info")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(gcp.GetEnv("LOG_FORMAT", "json"), "text") {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
