package main

import (
	"context"
	"log"

	"tienda/internal/models"
	"tienda/internal/repositories"
)

// sampleCatalog returns the initial product set used to populate an
// empty store for local development and demos.
func sampleCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "MacBook Pro 16\"",
			Brand:       "Apple",
			Category:    "Laptops",
			Price:       2499.99,
			Stock:       8,
			Description: "Professional Apple laptop with the M3 Max processor",
			Rating:      4.9,
			Specifications: map[string]string{
				"processor": "Apple M3 Max",
				"ram":       "36GB",
				"storage":   "1TB SSD",
				"display":   "16-inch Liquid Retina XDR",
			},
		},
		{
			Name:        "Dell XPS 13",
			Brand:       "Dell",
			Category:    "Laptops",
			Price:       1299.99,
			Stock:       12,
			Description: "Compact and powerful Dell ultrabook",
			Rating:      4.7,
			Specifications: map[string]string{
				"processor": "Intel Core i7-13700H",
				"ram":       "16GB DDR5",
				"storage":   "512GB SSD NVMe",
				"display":   "13.4-inch OLED",
			},
		},
		{
			Name:        "Lenovo ThinkPad X1",
			Brand:       "Lenovo",
			Category:    "Laptops",
			Price:       1199.99,
			Stock:       15,
			Description: "Reliable Lenovo business laptop",
			Rating:      4.6,
			Specifications: map[string]string{
				"processor": "Intel Core i5-1335U",
				"ram":       "16GB",
				"storage":   "512GB SSD",
				"display":   "14-inch FHD",
			},
		},
		{
			Name:        "iPhone 15 Pro Max",
			Brand:       "Apple",
			Category:    "Smartphones",
			Price:       1199.99,
			Stock:       20,
			Description: "Premium Apple smartphone with an advanced camera",
			Rating:      4.8,
			Specifications: map[string]string{
				"processor": "Apple A17 Pro",
				"ram":       "8GB",
				"storage":   "256GB",
				"display":   "6.7-inch Super Retina XDR",
			},
		},
		{
			Name:        "Samsung Galaxy S24 Ultra",
			Brand:       "Samsung",
			Category:    "Smartphones",
			Price:       1299.99,
			Stock:       18,
			Description: "Samsung flagship with S Pen and a 200MP camera",
			Rating:      4.7,
			Specifications: map[string]string{
				"processor": "Snapdragon 8 Gen 3",
				"ram":       "12GB",
				"storage":   "512GB",
				"display":   "6.8-inch Dynamic AMOLED",
			},
		},
		{
			Name:        "Google Pixel 8",
			Brand:       "Google",
			Category:    "Smartphones",
			Price:       699.99,
			Stock:       25,
			Description: "Google smartphone with computational photography",
			Rating:      4.5,
			Specifications: map[string]string{
				"processor": "Google Tensor G3",
				"ram":       "8GB",
				"storage":   "128GB",
				"display":   "6.2-inch OLED",
			},
		},
		{
			Name:        "iPad Pro 12.9\"",
			Brand:       "Apple",
			Category:    "Tablets",
			Price:       1099.99,
			Stock:       10,
			Description: "Apple professional tablet with the M2 chip",
			Rating:      4.8,
			Specifications: map[string]string{
				"processor": "Apple M2",
				"ram":       "8GB",
				"storage":   "256GB",
				"display":   "12.9-inch Liquid Retina XDR",
			},
		},
		{
			Name:        "Samsung Galaxy Tab S9",
			Brand:       "Samsung",
			Category:    "Tablets",
			Price:       799.99,
			Stock:       14,
			Description: "Samsung tablet with AMOLED display and S Pen included",
			Rating:      4.6,
			Specifications: map[string]string{
				"processor": "Snapdragon 8 Gen 2",
				"ram":       "8GB",
				"storage":   "128GB",
				"display":   "11-inch Dynamic AMOLED",
			},
		},
		{
			Name:        "Sony WH-1000XM5",
			Brand:       "Sony",
			Category:    "Accessories",
			Price:       399.99,
			Stock:       30,
			Description: "Wireless headphones with industry-leading noise cancellation",
			Rating:      4.8,
			Specifications: map[string]string{
				"battery":      "30 hours",
				"connectivity": "Bluetooth 5.2",
				"weight":       "250g",
			},
		},
		{
			Name:        "Logitech MX Master 3S",
			Brand:       "Logitech",
			Category:    "Accessories",
			Price:       99.99,
			Stock:       45,
			Description: "Ergonomic wireless mouse for productivity",
			Rating:      4.7,
			Specifications: map[string]string{
				"sensor":       "8000 DPI",
				"battery":      "70 days",
				"connectivity": "Bluetooth / USB receiver",
			},
		},
		{
			Name:        "NVIDIA GeForce RTX 4070",
			Brand:       "NVIDIA",
			Category:    "Components",
			Price:       599.99,
			Stock:       6,
			Description: "Graphics card for gaming and content creation",
			Rating:      4.6,
			Specifications: map[string]string{
				"memory":    "12GB GDDR6X",
				"interface": "PCIe 4.0",
				"power":     "200W",
			},
		},
		{
			Name:        "Samsung 990 Pro 2TB",
			Brand:       "Samsung",
			Category:    "Components",
			Price:       179.99,
			Stock:       22,
			Description: "High-performance NVMe SSD for demanding workloads",
			Rating:      4.9,
			Specifications: map[string]string{
				"capacity":  "2TB",
				"interface": "PCIe 4.0 NVMe",
				"read":      "7450 MB/s",
			},
		},
	}
}

// seedCatalog inserts the sample products when the store is empty. An
// already-populated store is left untouched.
func seedCatalog(ctx context.Context, repo repositories.ProductRepository) error {
	existing, err := repo.FetchAll(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d products, skipping seed", len(existing))
		return nil
	}

	for _, product := range sampleCatalog() {
		id, err := repo.Insert(ctx, &product)
		if err != nil {
			log.Printf("Error seeding product %s: %v", product.Name, err)
			continue
		}
		log.Printf("Seeded product: %s (ID: %s)", product.Name, id)
	}
	return nil
}
