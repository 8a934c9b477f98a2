package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lllllllleong/examedgecontent/internal/pdftext"
	"github.com/Lllllllleong/examedgecontent/internal/services"
	"github.com/Lllllllleong/examedgecontent/internal/store"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
	"github.com/joho/godotenv"
)

// openStore is replaced in tests.
var openStore = store.Open

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	services.SetupLogging()

	config := services.LoadLoaderConfig()
	storeConfig := services.LoadStoreConfig()
	decoderConfig := services.LoadDecoderConfig()

	flag.StringVar(&config.Root, "root", config.Root, "Directory tree to scan for quiz PDFs")
	flag.StringVar(&config.QuizFolderName, "quiz-folder", config.QuizFolderName, "Name of the folders holding quiz PDFs")
	flag.StringVar(&storeConfig.Backend, "store", storeConfig.Backend, "Document store: firestore, mongo or memory")
	flag.StringVar(&decoderConfig.Name, "decoder", decoderConfig.Name, "PDF decoder: textlayer, pdftotext or gemini")
	dryRun := flag.Bool("dry-run", false, "Extract and count without writing to a real store")
	flag.Parse()

	if *dryRun {
		storeConfig.Backend = store.BackendMemory
	}

	summary, err := run(context.Background(), config, storeConfig, decoderConfig)
	if err != nil {
		if errors.Is(err, taxonomy.ErrRootNotFound) {
			fmt.Fprintf(os.Stderr, "Error: resources directory not found: %s\n", config.Root)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *dryRun {
		fmt.Print("[dry run] ")
	}
	fmt.Printf("Quiz upload complete: %s\n", summary)
}

// run owns the store and decoder so they are closed on every return path.
func run(ctx context.Context, config services.LoaderConfig, storeConfig store.Config, decoderConfig pdftext.Config) (*services.LoaderSummary, error) {
	st, err := openStore(ctx, storeConfig)
	if err != nil {
		slog.Error("Failed to initialize store", "backend", storeConfig.Backend, "error", err)
		return nil, fmt.Errorf("store initialization failed: %w", err)
	}
	defer st.Close()

	decoder, err := pdftext.New(ctx, decoderConfig)
	if err != nil {
		slog.Error("Failed to initialize PDF decoder", "decoder", decoderConfig.Name, "error", err)
		return nil, fmt.Errorf("pdf decoder initialization failed: %w", err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	return services.NewQuizLoader(st, decoder, nil, config).Run(ctx)
}
