// Package storage provides blob storage for uploaded image bytes.
// It defines a System interface and a filesystem implementation suitable
// for development and single-node deployments.
package storage

import (
	"context"

	"github.com/JaimeStill/wordmap/pkg/lifecycle"
)

// System defines blob storage operations.
type System interface {
	// Store saves data at key, overwriting any existing blob.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the data at key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is accessible.
	Validate(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}
