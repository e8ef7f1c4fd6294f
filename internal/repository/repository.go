// Package repository defines the contract every product data source honors.
//
// Concrete implementations live in the sqlite and csvfile subpackages. Each
// one reads a different backing medium but exposes the same two operations,
// so the catalog service can swap them freely.
package repository

import (
	"context"
	"errors"

	"github.com/HarounMinhas/product-catalog/internal/domain/models"
)

// ErrSourceUnavailable indicates the backing store is missing or unreadable.
// It propagates unmodified to the caller; nothing is retried and no partial
// result is ever returned alongside it.
var ErrSourceUnavailable = errors.New("source unavailable")

// ProductSource is an interchangeable provider of product records.
type ProductSource interface {
	// ListAll returns every record present in the backing store, in storage
	// order, performing no filtering.
	ListAll(ctx context.Context) ([]models.Product, error)

	// Close releases any resource handle held by the source.
	Close() error
}
