// Package store writes quiz and question records to a document store.
package store

import (
	"context"
	"fmt"

	"github.com/Lllllllleong/examedgecontent/internal/gcp"
)

// Store is the document store the loader writes to. Writes are independent;
// there is no batching or transaction between them.
type Store interface {
	// AddToCollection stores record under a generated key and returns the key.
	AddToCollection(ctx context.Context, collection string, record any) (string, error)
	// SetDocument stores record at key, replacing whatever was there.
	SetDocument(ctx context.Context, collection, key string, record any) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
	BackendMemory    = "memory"
)

// Config selects and configures a Store backend.
type Config struct {
	Backend         string
	ProjectID       string
	CredentialsFile string
	MongoURI        string
	MongoDatabase   string
}

// Open creates the configured Store. Any error here is fatal for a run.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFirestore, "":
		client, err := gcp.NewFirestoreClient(ctx, cfg.ProjectID, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		return NewFirestoreStore(client), nil
	case BackendMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
