// Package catalog dispatches product listing requests to the selected source.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HarounMinhas/product-catalog/internal/config"
	"github.com/HarounMinhas/product-catalog/internal/repository"
	"github.com/HarounMinhas/product-catalog/internal/repository/csvfile"
	"github.com/HarounMinhas/product-catalog/internal/repository/sqlite"
)

// Valid source selector values.
const (
	SourceDatabase = "database"
	SourceCSV      = "csv"
)

// ErrUnsupportedSource indicates the selector matches no known source kind.
var ErrUnsupportedSource = errors.New("unsupported source")

// SourceTypes lists every selector the service accepts.
func SourceTypes() []string {
	return []string{SourceDatabase, SourceCSV}
}

// Service selects and invokes a product source implementation. It keeps no
// state across calls; every call acquires and releases its own handle.
type Service struct {
	cfg    config.CatalogConfig
	logger *zap.Logger
}

// NewService wires a new catalog service instance.
func NewService(cfg config.CatalogConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, logger: logger}
}

// ListProducts reads every product from the source named by sourceType and
// returns the records serialized to their mapping form. Source errors
// propagate unmodified; an unknown selector yields ErrUnsupportedSource.
func (s *Service) ListProducts(ctx context.Context, sourceType string) ([]map[string]any, error) {
	source, err := s.openSource(sourceType)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := source.Close(); err != nil {
			s.logger.Warn("failed to close source", zap.String("source", sourceType), zap.Error(err))
		}
	}()

	products, err := source.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	serialized := make([]map[string]any, 0, len(products))
	for _, product := range products {
		serialized = append(serialized, product.ToMap(s.cfg.ImagesDir))
	}

	s.logger.Debug("listed products",
		zap.String("source", sourceType),
		zap.Int("count", len(serialized)))

	return serialized, nil
}

func (s *Service) openSource(sourceType string) (repository.ProductSource, error) {
	switch sourceType {
	case SourceDatabase:
		return sqlite.New(s.cfg.DatabasePath)
	case SourceCSV:
		return csvfile.New(s.cfg.CSVPath), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, sourceType)
	}
}
