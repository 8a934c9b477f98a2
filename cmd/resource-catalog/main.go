package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Lllllllleong/examedgecontent/internal/services"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	services.SetupLogging()

	config := services.LoadCatalogConfig()
	flag.StringVar(&config.Root, "root", config.Root, "Directory tree to scan for resource PDFs")
	flag.StringVar(&config.OutputPath, "output", config.OutputPath, "Path of the generated resources.json")
	flag.StringVar(&config.URLPrefix, "url-prefix", config.URLPrefix, "URL prefix of resource links")
	flag.StringVar(&config.QuizFolderName, "quiz-folder", config.QuizFolderName, "Name of the folders excluded from the catalog")
	flag.StringVar(&config.Bucket, "bucket", config.Bucket, "Optional GCS bucket that also receives the catalog")
	flag.Parse()

	summary, err := run(context.Background(), config)
	if err != nil {
		if errors.Is(err, taxonomy.ErrRootNotFound) {
			fmt.Fprintf(os.Stderr, "Error: resources directory not found: %s\n", config.Root)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Successfully %s\n", summary)
}

// run owns the catalog builder so its storage client is closed on every
// return path.
func run(ctx context.Context, config services.CatalogConfig) (*services.CatalogSummary, error) {
	builder, err := services.NewCatalogBuilder(ctx, config, nil)
	if err != nil {
		slog.Error("Failed to initialize catalog builder", "error", err)
		return nil, err
	}
	defer builder.Close()

	return builder.Run(ctx)
}
