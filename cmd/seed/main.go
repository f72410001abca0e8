package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/solemate/solemate-backend/config"
	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/internal/app/repository"
	"github.com/solemate/solemate-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports the shoe catalog from an XLSX sheet. Expected columns:
//
//	0 name | 1 description | 2 price | 3 rating | 4 gender | 5 style
//	6 brand | 7 product_url | 8 image_url | 9 conditions | 10 primary_image
//
// "conditions" is a comma-separated list of condition names or slugs; they
// must already exist (the migration seeds the supported set).
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	catalogRepo := repository.NewCatalogRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readCatalogRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total shoes to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	if err := importCatalog(catalogRepo, rows); err != nil {
		log.Fatal("Failed to import catalog:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total shoes imported: %d\n", len(rows))
}

type catalogRow struct {
	shoe         model.Shoe
	styleName    string
	brandName    string
	conditions   []string
	primaryImage string
}

func readCatalogRows(filePath string) ([]catalogRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var result []catalogRow
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			// header row
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 9 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			skippedCount++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil || price < 0 {
			fmt.Printf("Row %d: invalid price %q, skipping\n", i+1, row[2])
			skippedCount++
			continue
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil || rating < 0 || rating > 5 {
			fmt.Printf("Row %d: invalid rating %q, skipping\n", i+1, row[3])
			skippedCount++
			continue
		}

		gender := model.Gender(strings.ToLower(strings.TrimSpace(row[4])))
		switch gender {
		case model.GenderMen, model.GenderWomen, model.GenderUnisex:
		default:
			fmt.Printf("Row %d: unknown gender %q, skipping\n", i+1, row[4])
			skippedCount++
			continue
		}

		entry := catalogRow{
			shoe: model.Shoe{
				Name:        name,
				Description: strings.TrimSpace(row[1]),
				Price:       price,
				Rating:      rating,
				Gender:      gender,
				ProductURL:  strings.TrimSpace(row[7]),
				ImageURL:    strings.TrimSpace(row[8]),
			},
			styleName: strings.TrimSpace(row[5]),
			brandName: strings.TrimSpace(row[6]),
		}

		if len(row) > 9 {
			for _, c := range strings.Split(row[9], ",") {
				if trimmed := strings.TrimSpace(c); trimmed != "" {
					entry.conditions = append(entry.conditions, trimmed)
				}
			}
		}
		if len(row) > 10 {
			entry.primaryImage = strings.TrimSpace(row[10])
		}

		result = append(result, entry)
	}

	if skippedCount > 0 {
		fmt.Printf("Skipped %d invalid rows\n", skippedCount)
	}
	return result, nil
}

func importCatalog(catalogRepo repository.CatalogRepository, rows []catalogRow) error {
	conditions, err := catalogRepo.FindAllConditions()
	if err != nil {
		return fmt.Errorf("failed to load conditions: %w", err)
	}
	conditionsBySlug := make(map[string]model.Condition, len(conditions))
	for _, condition := range conditions {
		conditionsBySlug[catalog.Slugify(condition.Name)] = condition
	}

	// Resolve styles and brands up front; both are created on first use.
	for i := range rows {
		if rows[i].styleName != "" {
			style, err := catalogRepo.FindOrCreateStyle(rows[i].styleName)
			if err != nil {
				return fmt.Errorf("failed to resolve style %q: %w", rows[i].styleName, err)
			}
			rows[i].shoe.StyleID = style.ID
		}
		if rows[i].brandName != "" {
			brand, err := catalogRepo.FindOrCreateBrand(rows[i].brandName)
			if err != nil {
				return fmt.Errorf("failed to resolve brand %q: %w", rows[i].brandName, err)
			}
			rows[i].shoe.BrandID = brand.ID
		}
	}

	shoes := make([]model.Shoe, len(rows))
	for i := range rows {
		shoes[i] = rows[i].shoe
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := catalogRepo.BulkCreateShoes(shoes, batchSize); err != nil {
		return fmt.Errorf("failed to bulk create shoes: %w", err)
	}

	// Associations need the generated shoe ids, so they come after the bulk
	// insert; the shoes slice is index-aligned with rows.
	for i := range rows {
		for _, raw := range rows[i].conditions {
			condition, ok := conditionsBySlug[catalog.Slugify(raw)]
			if !ok {
				fmt.Printf("Shoe %q: unknown condition %q, skipping association\n", rows[i].shoe.Name, raw)
				continue
			}
			sc := &model.ShoeCondition{ShoeID: shoes[i].ID, ConditionID: condition.ID}
			if err := catalogRepo.CreateShoeCondition(sc); err != nil {
				return fmt.Errorf("failed to associate shoe %q with condition %q: %w", rows[i].shoe.Name, raw, err)
			}
		}

		if rows[i].primaryImage != "" {
			image := &model.ShoeImage{ShoeID: shoes[i].ID, URL: rows[i].primaryImage}
			if err := catalogRepo.CreateShoeImage(image); err != nil {
				return fmt.Errorf("failed to create image for shoe %q: %w", rows[i].shoe.Name, err)
			}
		}
	}

	return nil
}
