// Package csvfile implements the product source backed by a delimited text file.
//
// The file carries a header row naming the columns; data rows are matched to
// columns by header name, so column order in the file does not matter.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/HarounMinhas/product-catalog/internal/domain/models"
	"github.com/HarounMinhas/product-catalog/internal/repository"
)

var columns = []string{"id", "name", "description", "price", "stock", "image_path"}

// Source reads products from a CSV file. The file handle is opened lazily by
// ListAll and released again before it returns; Close exists to satisfy the
// source contract.
type Source struct {
	path string
}

// New builds a CSV backed source for the given file path.
func New(path string) *Source {
	return &Source{path: path}
}

// ListAll parses every data line of the file into a product, in line order.
func (s *Source) ListAll(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: csv file %s: %v", repository.ErrSourceUnavailable, s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header in %s: %v", repository.ErrSourceUnavailable, s.path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: csv file %s misses column %q", repository.ErrSourceUnavailable, s.path, name)
		}
	}

	var products []models.Product
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv line %d in %s: %v", repository.ErrSourceUnavailable, line, s.path, err)
		}

		product, err := parseRow(row, index)
		if err != nil {
			return nil, fmt.Errorf("%w: csv line %d in %s: %v", repository.ErrSourceUnavailable, line, s.path, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// Close is a no-op; ListAll does not leave an open handle behind.
func (s *Source) Close() error {
	return nil
}

func parseRow(row []string, index map[string]int) (models.Product, error) {
	cell := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	id, err := strconv.Atoi(cell("id"))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid id %q", cell("id"))
	}

	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price %q", cell("price"))
	}

	stock, err := strconv.Atoi(cell("stock"))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid stock %q", cell("stock"))
	}

	return models.Product{
		ID:          id,
		Name:        cell("name"),
		Description: cell("description"),
		Price:       price,
		Stock:       stock,
		ImagePath:   cell("image_path"),
	}, nil
}

// Write recreates the file at path with a header row and one line per
// product, in the given order.
func Write(path string, products []models.Product) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		file.Close()
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range products {
		record := []string{
			strconv.Itoa(p.ID),
			p.Name,
			p.Description,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			p.ImagePath,
		}
		if err := writer.Write(record); err != nil {
			file.Close()
			return fmt.Errorf("write csv record %d: %w", p.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("flush csv file %s: %w", path, err)
	}

	return file.Close()
}
