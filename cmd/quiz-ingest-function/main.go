package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/Lllllllleong/examedgecontent/internal/models"
	"github.com/Lllllllleong/examedgecontent/internal/services"
	cloudevents "github.com/cloudevents/sdk-go/v2"
)

var (
	ingestorInstance *services.ObjectIngestor
	once             sync.Once
	initErr          error
)

func init() {
	services.SetupLogging()

	functions.CloudEvent("IngestQuizPDF", ingestQuizPDF)
}

// main is required by the Go Functions Framework.
func main() {}

// ingestQuizPDF loads one quiz PDF after it is finalized in Cloud Storage.
func ingestQuizPDF(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		ingestorInstance, initErr = services.NewObjectIngestor(context.Background())
	})
	if initErr != nil {
		slog.Error("Critical error during function initialization", "error", initErr)
		return initErr
	}

	var gcsEvent models.GCSEvent
	if err := json.Unmarshal(e.Data(), &gcsEvent); err != nil {
		slog.Error("Failed to unmarshal event data", "error", err, "data", string(e.Data()))
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return ingestorInstance.Process(ctx, gcsEvent)
}
