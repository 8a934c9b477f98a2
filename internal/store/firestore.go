package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// FirestoreStore writes records to Cloud Firestore collections.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an open Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// AddToCollection adds record as a new document with a Firestore-generated ID.
func (s *FirestoreStore) AddToCollection(ctx context.Context, collection string, record any) (string, error) {
	docRef, _, err := s.client.Collection(collection).Add(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to add document to %s: %w", collection, err)
	}
	return docRef.ID, nil
}

// SetDocument overwrites the document at collection/key.
func (s *FirestoreStore) SetDocument(ctx context.Context, collection, key string, record any) error {
	if _, err := s.client.Collection(collection).Doc(key).Set(ctx, record); err != nil {
		return fmt.Errorf("failed to set document %s/%s: %w", collection, key, err)
	}
	return nil
}

// Close closes the Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
