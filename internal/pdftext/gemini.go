package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/Lllllllleong/examedgecontent/internal/gcp"
)

// GeminiDecoder asks a Gemini model to transcribe the whole PDF. It is meant
// for scanned documents without a text layer and returns a single page.
type GeminiDecoder struct {
	vertexClient *gcp.VertexClient
}

// NewGeminiDecoder creates a GeminiDecoder using the client's transcriber model.
func NewGeminiDecoder(vertexClient *gcp.VertexClient) *GeminiDecoder {
	return &GeminiDecoder{vertexClient: vertexClient}
}

// Pages transcribes the PDF at path as a single page.
func (d *GeminiDecoder) Pages(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	model := d.vertexClient.TranscriberModel
	prompt := genai.Text(gcp.TranscriberUserPrompt)
	filePart := genai.Blob{
		MIMEType: "application/pdf",
		Data:     data,
	}

	resp, err := model.GenerateContent(ctx, filePart, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe %s with gemini: %w", path, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini returned no text for %s", path)
	}
	return []string{text}, nil
}

// Close closes the underlying Vertex AI client.
func (d *GeminiDecoder) Close() error {
	return d.vertexClient.Close()
}

// responseText concatenates the text parts of the first candidate and strips
// any code fence the model wrapped them in.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var contentBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			contentBuilder.WriteString(string(txt))
		}
	}

	contentStr := strings.TrimSpace(contentBuilder.String())
	contentStr = strings.TrimPrefix(contentStr, "```text")
	contentStr = strings.TrimPrefix(contentStr, "```")
	contentStr = strings.TrimSuffix(contentStr, "```")
	return strings.TrimSpace(contentStr)
}
