package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/HarounMinhas/product-catalog/internal/domain/models"
	"github.com/HarounMinhas/product-catalog/internal/repository"
)

var fixture = []models.Product{
	{ID: 1, Name: "Laptop", Description: "13 inch ultrabook", Price: 1299.99, Stock: 15, ImagePath: "laptop.png"},
	{ID: 2, Name: "Muis", Description: "Draadloze muis", Price: 99.99, Stock: 42, ImagePath: "mouse.png"},
	{ID: 3, Name: "Toetsenbord", Description: "Mechanisch, RGB", Price: 89.99, Stock: 28, ImagePath: "keyboard.png"},
}

func seedFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.db")
	if err := Seed(path, fixture); err != nil {
		t.Fatalf("seed database: %v", err)
	}
	return path
}

func TestListAllReturnsEveryRowInOrder(t *testing.T) {
	src, err := New(seedFixture(t))
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	defer src.Close()

	products, err := src.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != len(fixture) {
		t.Fatalf("expected %d products, got %d", len(fixture), len(products))
	}
	for i, want := range fixture {
		if products[i] != want {
			t.Fatalf("product %d: expected %+v, got %+v", i, want, products[i])
		}
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.db"))
	if !errors.Is(err, repository.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestListAllCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	src, err := New(path)
	if err == nil {
		defer src.Close()
		_, err = src.ListAll(context.Background())
	}
	if !errors.Is(err, repository.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable for corrupt file, got %v", err)
	}
}

func TestListAllEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	if err := Seed(path, nil); err != nil {
		t.Fatalf("seed database: %v", err)
	}

	src, err := New(path)
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	defer src.Close()

	products, err := src.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %d", len(products))
	}
}

func TestSeedReplacesPreviousDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.db")
	if err := Seed(path, fixture); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(path, fixture[:1]); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	src, err := New(path)
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	defer src.Close()

	products, err := src.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product after reseed, got %d", len(products))
	}
}
