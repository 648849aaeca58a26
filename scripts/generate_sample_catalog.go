package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"plateperfect/internal/catalog"
	"plateperfect/internal/model"
)

// generateSampleCatalog writes catalog documents for local runs and S3 uploads:
// catalog.yaml holds the built-in dishes, catalog-extended.yaml.gz adds a few more.
// Point CATALOG_PATH at either file.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	extended, err := catalog.New(map[model.Course][]model.Dish{
		model.CourseStarter: {
			{ID: "1", Name: "Bruschetta", Price: 50},
			{ID: "2", Name: "Stuffed Mushrooms", Price: 70},
			{ID: "7", Name: "Chicken Livers Peri-Peri", Price: 65},
		},
		model.CourseMainCourse: {
			{ID: "3", Name: "Grilled Salmon", Price: 120},
			{ID: "4", Name: "Beef Wellington", Price: 200},
			{ID: "8", Name: "Bobotie", Price: 110},
		},
		model.CourseDessert: {
			{ID: "5", Name: "Chocolate Fondant", Price: 80},
			{ID: "6", Name: "Lemon Tart", Price: 70},
			{ID: "9", Name: "Malva Pudding", Price: 60},
		},
	})
	if err != nil {
		log.Fatalf("Failed to build extended catalog: %v", err)
	}

	files := []struct {
		name     string
		catalog  catalog.Catalog
		compress bool
	}{
		{name: "catalog.yaml", catalog: catalog.Default(), compress: false},
		{name: "catalog-extended.yaml.gz", catalog: extended, compress: true},
	}

	for _, f := range files {
		filePath := filepath.Join(dataDir, f.name)

		if err := writeCatalog(filePath, f.catalog, f.compress); err != nil {
			log.Fatalf("Failed to create %s: %v", f.name, err)
		}

		fmt.Printf("Created %s with %d dishes\n", filePath, f.catalog.Size())
	}

	fmt.Println("\nSample catalog files created successfully!")
}

func writeCatalog(filePath string, c catalog.Catalog, compress bool) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := catalog.Encode(file, c, compress); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	return nil
}
