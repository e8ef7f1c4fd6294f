package models

import (
	"os"
	"path/filepath"
)

// PlaceholderImage is served when a product's own image is missing on disk.
const PlaceholderImage = "placeholder.png"

// Product represents one catalog item as stored in either backing source.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImagePath   string  `json:"image_path"`
}

// DisplayImage returns the image file to show for the product. When the
// referenced file does not exist under imagesDir the placeholder is used, so
// the repository never has to carry binary assets.
func (p Product) DisplayImage(imagesDir string) string {
	if p.ImagePath == "" {
		return PlaceholderImage
	}
	if _, err := os.Stat(filepath.Join(imagesDir, p.ImagePath)); err != nil {
		return PlaceholderImage
	}
	return p.ImagePath
}

// ToMap converts the product into the generic key/value form rendered by the
// API. The image key carries the display image, not the raw stored path.
func (p Product) ToMap(imagesDir string) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"image":       p.DisplayImage(imagesDir),
	}
}
