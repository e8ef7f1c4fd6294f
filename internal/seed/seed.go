// Package seed holds the sample catalog and populates both backing stores.
package seed

import (
	"github.com/HarounMinhas/product-catalog/internal/domain/models"
	"github.com/HarounMinhas/product-catalog/internal/repository/csvfile"
	"github.com/HarounMinhas/product-catalog/internal/repository/sqlite"
)

// SampleProducts is the demo catalog written by the init tool. Both backing
// stores carry the exact same records so the sources stay interchangeable.
var SampleProducts = []models.Product{
	{
		ID:          1,
		Name:        "Laptop Dell XPS 13",
		Description: "Krachtige ultrabook met 13 inch scherm, Intel i7 processor en 16GB RAM",
		Price:       1299.99,
		Stock:       15,
		ImagePath:   "laptop.png",
	},
	{
		ID:          2,
		Name:        "Draadloze Muis Logitech MX Master 3",
		Description: "Ergonomische draadloze muis met precisie tracking en oplaadbare batterij",
		Price:       99.99,
		Stock:       42,
		ImagePath:   "mouse.png",
	},
	{
		ID:          3,
		Name:        "Mechanisch Toetsenbord Keychron K2",
		Description: "Compact 75% mechanisch toetsenbord met RGB verlichting en hot-swappable switches",
		Price:       89.99,
		Stock:       28,
		ImagePath:   "keyboard.png",
	},
	{
		ID:          4,
		Name:        "Monitor LG UltraWide 34\"",
		Description: "Ultrawide QHD monitor (3440x1440) met IPS panel en 75Hz refresh rate",
		Price:       449.99,
		Stock:       8,
		ImagePath:   "monitor.png",
	},
	{
		ID:          5,
		Name:        "USB-C Hub Anker 7-in-1",
		Description: "7-poorts USB-C hub met HDMI, USB 3.0, SD kaartlezer en 100W Power Delivery",
		Price:       54.99,
		Stock:       67,
		ImagePath:   "usb-hub.png",
	},
}

// Database recreates the SQLite store at path with the sample catalog.
func Database(path string) error {
	return sqlite.Seed(path, SampleProducts)
}

// CSV recreates the CSV store at path with the sample catalog.
func CSV(path string) error {
	return csvfile.Write(path, SampleProducts)
}
