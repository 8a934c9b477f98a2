// Package pdftext turns PDF files into ordered page text.
package pdftext

import (
	"context"
	"fmt"

	"github.com/Lllllllleong/examedgecontent/internal/gcp"
)

// Decoder returns the text of each page of the PDF at path, in page order.
type Decoder interface {
	Pages(ctx context.Context, path string) ([]string, error)
}

// Decoder names accepted by New.
const (
	DecoderTextLayer = "textlayer"
	DecoderPdftotext = "pdftotext"
	DecoderGemini    = "gemini"
)

// Config selects and configures a Decoder.
type Config struct {
	Name          string
	PdftotextPath string
	ProjectID     string
	Region        string
}

// New creates the configured Decoder. Decoders holding clients also
// implement io.Closer.
func New(ctx context.Context, cfg Config) (Decoder, error) {
	switch cfg.Name {
	case DecoderTextLayer, "":
		return TextLayerDecoder{}, nil
	case DecoderPdftotext:
		return PopplerDecoder{Binary: cfg.PdftotextPath}, nil
	case DecoderGemini:
		vertexClient, err := gcp.NewVertexClient(ctx, cfg.ProjectID, cfg.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create vertex client: %w", err)
		}
		return NewGeminiDecoder(vertexClient), nil
	}
	return nil, fmt.Errorf("unknown pdf decoder %q", cfg.Name)
}
