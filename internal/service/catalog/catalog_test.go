package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/HarounMinhas/product-catalog/internal/config"
	"github.com/HarounMinhas/product-catalog/internal/repository"
	"github.com/HarounMinhas/product-catalog/internal/seed"
)

func seededConfig(t *testing.T) config.CatalogConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := config.CatalogConfig{
		DatabasePath: filepath.Join(dir, "products.db"),
		CSVPath:      filepath.Join(dir, "products.csv"),
		StaticDir:    dir,
		ImagesDir:    filepath.Join(dir, "images"),
	}
	if err := seed.Database(cfg.DatabasePath); err != nil {
		t.Fatalf("seed database: %v", err)
	}
	if err := seed.CSV(cfg.CSVPath); err != nil {
		t.Fatalf("seed csv: %v", err)
	}
	return cfg
}

func TestListProductsBothSources(t *testing.T) {
	svc := NewService(seededConfig(t), nil)

	for _, sourceType := range SourceTypes() {
		products, err := svc.ListProducts(context.Background(), sourceType)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", sourceType, err)
		}
		if len(products) != len(seed.SampleProducts) {
			t.Fatalf("%s: expected %d products, got %d", sourceType, len(seed.SampleProducts), len(products))
		}
		for i, want := range seed.SampleProducts {
			got := products[i]
			if got["id"] != want.ID {
				t.Fatalf("%s: product %d: expected id %d, got %v", sourceType, i, want.ID, got["id"])
			}
			if got["name"] != want.Name {
				t.Fatalf("%s: product %d: expected name %q, got %v", sourceType, i, want.Name, got["name"])
			}
			if got["price"] != want.Price {
				t.Fatalf("%s: product %d: expected price %v, got %v", sourceType, i, want.Price, got["price"])
			}
			if got["stock"] != want.Stock {
				t.Fatalf("%s: product %d: expected stock %d, got %v", sourceType, i, want.Stock, got["stock"])
			}
		}
	}
}

func TestListProductsUnsupportedSource(t *testing.T) {
	svc := NewService(seededConfig(t), nil)

	products, err := svc.ListProducts(context.Background(), "spreadsheet")
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
	if products != nil {
		t.Fatalf("expected no partial result, got %d products", len(products))
	}
}

func TestListProductsMissingDatabase(t *testing.T) {
	cfg := seededConfig(t)
	cfg.DatabasePath = filepath.Join(t.TempDir(), "nope.db")
	svc := NewService(cfg, nil)

	_, err := svc.ListProducts(context.Background(), SourceDatabase)
	if !errors.Is(err, repository.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestListProductsMissingCSV(t *testing.T) {
	cfg := seededConfig(t)
	cfg.CSVPath = filepath.Join(t.TempDir(), "nope.csv")
	svc := NewService(cfg, nil)

	_, err := svc.ListProducts(context.Background(), SourceCSV)
	if !errors.Is(err, repository.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestSerializedImageFallsBackToPlaceholder(t *testing.T) {
	svc := NewService(seededConfig(t), nil)

	products, err := svc.ListProducts(context.Background(), SourceCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range products {
		if p["image"] != "placeholder.png" {
			t.Fatalf("expected placeholder image when files are absent, got %v", p["image"])
		}
	}
}
