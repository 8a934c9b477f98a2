package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
)

// --- Transcriber Model Prompts ---
const TranscriberSystemPrompt = "You are a document transcription tool. Your task is to reproduce the text of a PDF document exactly as printed, as plain text."
const TranscriberUserPrompt = `You will be provided with a PDF document.

Follow these instructions to transcribe it:

1.  Output every line of text in reading order, one printed line per output line.
2.  Keep numbering, option labels such as "A)" and lines such as "Answer: B" exactly as printed.
3.  Separate pages with a single blank line.
4.  Do not add headings, commentary, markdown formatting or code fences.
5.  Ignore images, page numbers, headers and footers.

Return ONLY the transcribed text.`

// VertexClient holds the pre-configured generative models used by the pipelines.
type VertexClient struct {
	TranscriberModel *genai.GenerativeModel
	baseClient       *genai.Client
}

// NewVertexClient creates a new client holding all necessary models.
func NewVertexClient(ctx context.Context, projectID, region string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	transcriberModel := baseClient.GenerativeModel("gemini-1.5-pro")
	transcriberModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(TranscriberSystemPrompt)},
	}
	transcriberModel.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "text/plain",
		Temperature:      genai.Ptr[float32](0.0), // verbatim output
	}

	return &VertexClient{
		TranscriberModel: transcriberModel,
		baseClient:       baseClient,
	}, nil
}

// Close closes the underlying genai client.
func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}
