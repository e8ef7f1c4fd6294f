// Package sqlite implements the product source backed by a SQLite database.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/HarounMinhas/product-catalog/internal/domain/models"
	"github.com/HarounMinhas/product-catalog/internal/repository"
)

// productRow mirrors one row of the products table.
type productRow struct {
	ID          int `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
	Stock       int
	ImagePath   string
}

func (productRow) TableName() string { return "products" }

// Source reads products from a SQLite database file. A handle is held from
// construction until Close.
type Source struct {
	db   *gorm.DB
	path string
}

// New opens the database at path. A missing file maps to
// repository.ErrSourceUnavailable rather than letting the driver create an
// empty database on the fly.
func New(path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: database file %s: %v", repository.ErrSourceUnavailable, path, err)
	}

	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open database %s: %v", repository.ErrSourceUnavailable, path, err)
	}

	return &Source{db: db, path: path}, nil
}

// ListAll returns every product in the table ordered by id.
func (s *Source) ListAll(ctx context.Context) ([]models.Product, error) {
	var rows []productRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: query products in %s: %v", repository.ErrSourceUnavailable, s.path, err)
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, models.Product{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Price:       row.Price,
			Stock:       row.Stock,
			ImagePath:   row.ImagePath,
		})
	}

	return products, nil
}

// Close releases the underlying database handle.
func (s *Source) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap database handle: %w", err)
	}
	return sqlDB.Close()
}

// Seed recreates the database at path with the products table holding exactly
// the given records. Any previous database file is replaced.
func Seed(path string, products []models.Product) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove previous database %s: %w", path, err)
	}

	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("create database %s: %w", path, err)
	}
	defer func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := db.AutoMigrate(&productRow{}); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			ImagePath:   p.ImagePath,
		})
	}

	if len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
	}

	return nil
}
