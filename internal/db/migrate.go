package db

import (
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Style{},
		&model.Brand{},
		&model.Condition{},
		&model.Shoe{},
		&model.ShoeCondition{},
		&model.ShoeImage{},
		&model.Match{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedReferenceData(); err != nil {
		logger.Error("Failed to seed reference data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds the reference data the query surface depends on (optional to
// call separately; Migrate already runs it).
func Seed() error {
	return seedReferenceData()
}

func seedReferenceData() error {
	logger.Info("Seeding reference data...")

	if err := seedConditions(); err != nil {
		logger.Error("Failed to seed conditions", err)
		return err
	}
	if err := seedStyles(); err != nil {
		logger.Error("Failed to seed styles", err)
		return err
	}

	logger.Info("Reference data seeded successfully")
	return nil
}

// seedConditions creates the fixed condition set. The names are chosen so
// that slug derivation yields the five slugs the search surface recognizes.
func seedConditions() error {
	var count int64
	if err := DB.Model(&model.Condition{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Conditions already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	conditions := []model.Condition{
		{Name: "Plantar Fasciitis", Description: "Shoes with arch support and heel cushioning to reduce plantar fascia strain"},
		{Name: "Diabetic Friendly", Description: "Diabetic-friendly shoes with extra depth and protective features"},
		{Name: "Wide Foot", Description: "Extra width in the toe area for comfort and natural toe spread"},
		{Name: "Foot Pain", Description: "General foot pain requiring cushioned, supportive footwear"},
		{Name: "Orthopedic", Description: "Shoes designed to support proper foot alignment and comfort"},
	}

	for _, condition := range conditions {
		if err := DB.Create(&condition).Error; err != nil {
			logger.Error("Failed to create condition", err, map[string]interface{}{
				"condition": condition.Name,
			})
			return err
		}
	}

	logger.Info("Conditions seeded successfully", map[string]interface{}{
		"total_conditions": len(conditions),
	})
	return nil
}

func seedStyles() error {
	var count int64
	if err := DB.Model(&model.Style{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Styles already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	styles := []model.Style{
		{Name: "Athletic"},
		{Name: "Casual"},
		{Name: "Dress"},
		{Name: "Boots"},
		{Name: "Sandals"},
	}

	for _, style := range styles {
		if err := DB.Create(&style).Error; err != nil {
			logger.Error("Failed to create style", err, map[string]interface{}{
				"style": style.Name,
			})
			return err
		}
	}

	logger.Info("Styles seeded successfully", map[string]interface{}{
		"total_styles": len(styles),
	})
	return nil
}
