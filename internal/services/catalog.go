package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/Lllllllleong/examedgecontent/internal/gcp"
	"github.com/Lllllllleong/examedgecontent/internal/models"
	"github.com/Lllllllleong/examedgecontent/internal/taxonomy"
)

// CatalogConfig holds configuration for the resource catalog.
type CatalogConfig struct {
	Root           string
	QuizFolderName string
	OutputPath     string
	URLPrefix      string
	// Bucket, when set, also receives the catalog as Object.
	Bucket string
	Object string
}

// CatalogBuilder lists the study-resource PDFs of a tree into resources.json.
type CatalogBuilder struct {
	storageClient *storage.Client
	duration      DurationPolicy
	config        CatalogConfig
}

// CatalogSummary describes a finished catalog run.
type CatalogSummary struct {
	Resources  int
	OutputPath string
	MirrorURI  string
}

// String renders the summary line printed by the catalog CLI.
func (s CatalogSummary) String() string {
	if s.MirrorURI != "" {
		return fmt.Sprintf("generated %s (mirrored to %s) with %d resources", s.OutputPath, s.MirrorURI, s.Resources)
	}
	return fmt.Sprintf("generated %s with %d resources", s.OutputPath, s.Resources)
}

// NewCatalogBuilder creates a CatalogBuilder. A storage client is only
// created when a mirror bucket is configured. A nil duration policy picks
// random durations.
func NewCatalogBuilder(ctx context.Context, config CatalogConfig, duration DurationPolicy) (*CatalogBuilder, error) {
	if config.OutputPath == "" {
		return nil, fmt.Errorf("catalog output path must be set")
	}
	if duration == nil {
		duration = RandomDuration(nil)
	}

	b := &CatalogBuilder{duration: duration, config: config}
	if config.Bucket != "" {
		storageClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		b.storageClient = storageClient
	}
	return b, nil
}

// Build walks the root and returns one resource per PDF outside quiz-source
// folders, numbered from 1 in walk order.
func (b *CatalogBuilder) Build() ([]models.Resource, error) {
	resources := make([]models.Resource, 0)
	walker := taxonomy.Walker{Root: b.config.Root, QuizFolderName: b.config.QuizFolderName}
	err := walker.Resources(func(file taxonomy.ResourceFile) error {
		resources = append(resources, AssembleResource(len(resources)+1, file, b.config.URLPrefix, b.duration))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Run builds the catalog and replaces the output file with it.
func (b *CatalogBuilder) Run(ctx context.Context) (*CatalogSummary, error) {
	slog.Info("Scanning for PDFs.", "root", b.config.Root)

	resources, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("catalog build aborted: %w", err)
	}

	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(b.config.OutputPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}
	if err := os.WriteFile(b.config.OutputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write catalog: %w", err)
	}

	summary := &CatalogSummary{Resources: len(resources), OutputPath: b.config.OutputPath}
	if b.storageClient != nil {
		bucketHandle := b.storageClient.Bucket(b.config.Bucket)
		if err := gcp.UploadObject(ctx, bucketHandle, b.config.Object, "application/json", data); err != nil {
			slog.Error("Failed to mirror catalog to GCS", "bucket", b.config.Bucket, "object", b.config.Object, "error", err)
		} else {
			summary.MirrorURI = fmt.Sprintf("gs://%s/%s", b.config.Bucket, b.config.Object)
		}
	}

	slog.Info("Catalog generated.", "outputPath", summary.OutputPath, "resourceCount", summary.Resources)
	return summary, nil
}

// Close releases the storage client, if one was created.
func (b *CatalogBuilder) Close() error {
	if b.storageClient != nil {
		return b.storageClient.Close()
	}
	return nil
}
