package repository

import (
	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/pkg/logger"
	"gorm.io/gorm"
)

// CatalogRepository loads the catalog reference tables and supports the bulk
// importer. Query traffic never goes through it; searches run against the
// snapshot it loads.
type CatalogRepository interface {
	LoadSnapshot() (*catalog.Snapshot, error)
	FindOrCreateStyle(name string) (*model.Style, error)
	FindOrCreateBrand(name string) (*model.Brand, error)
	FindAllConditions() ([]model.Condition, error)
	BulkCreateShoes(shoes []model.Shoe, batchSize int) error
	CreateShoeCondition(sc *model.ShoeCondition) error
	CreateShoeImage(image *model.ShoeImage) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// LoadSnapshot reads all six catalog tables and builds the indexed snapshot.
// Shoes are ordered by id ascending; that order is the catalog order every
// search result preserves.
func (r *catalogRepository) LoadSnapshot() (*catalog.Snapshot, error) {
	logger.Debug("Loading catalog snapshot from database", nil)

	var shoes []model.Shoe
	if err := r.db.Order("id ASC").Find(&shoes).Error; err != nil {
		logger.Error("Failed to load shoes", err, nil)
		return nil, err
	}

	var styles []model.Style
	if err := r.db.Order("id ASC").Find(&styles).Error; err != nil {
		logger.Error("Failed to load styles", err, nil)
		return nil, err
	}

	var brands []model.Brand
	if err := r.db.Order("id ASC").Find(&brands).Error; err != nil {
		logger.Error("Failed to load brands", err, nil)
		return nil, err
	}

	var conditions []model.Condition
	if err := r.db.Order("id ASC").Find(&conditions).Error; err != nil {
		logger.Error("Failed to load conditions", err, nil)
		return nil, err
	}

	var shoeConditions []model.ShoeCondition
	if err := r.db.Find(&shoeConditions).Error; err != nil {
		logger.Error("Failed to load shoe conditions", err, nil)
		return nil, err
	}

	var images []model.ShoeImage
	if err := r.db.Order("id ASC").Find(&images).Error; err != nil {
		logger.Error("Failed to load shoe images", err, nil)
		return nil, err
	}

	snapshot, err := catalog.NewSnapshot(shoes, styles, brands, conditions, shoeConditions, images)
	if err != nil {
		logger.Error("Catalog data failed validation", err, nil)
		return nil, err
	}

	logger.Debug("Catalog snapshot loaded", map[string]interface{}{
		"shoes":      len(shoes),
		"styles":     len(styles),
		"brands":     len(brands),
		"conditions": len(conditions),
	})
	return snapshot, nil
}

func (r *catalogRepository) FindOrCreateStyle(name string) (*model.Style, error) {
	var style model.Style
	if err := r.db.Where("name = ?", name).FirstOrCreate(&style, model.Style{Name: name}).Error; err != nil {
		logger.Error("Failed to find or create style", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}
	return &style, nil
}

func (r *catalogRepository) FindOrCreateBrand(name string) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.Where("name = ?", name).FirstOrCreate(&brand, model.Brand{Name: name}).Error; err != nil {
		logger.Error("Failed to find or create brand", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}
	return &brand, nil
}

func (r *catalogRepository) FindAllConditions() ([]model.Condition, error) {
	var conditions []model.Condition
	if err := r.db.Order("id ASC").Find(&conditions).Error; err != nil {
		logger.Error("Failed to load conditions", err, nil)
		return nil, err
	}
	return conditions, nil
}

func (r *catalogRepository) BulkCreateShoes(shoes []model.Shoe, batchSize int) error {
	logger.Debug("Bulk creating shoes", map[string]interface{}{
		"count":      len(shoes),
		"batch_size": batchSize,
	})

	if err := r.db.CreateInBatches(shoes, batchSize).Error; err != nil {
		logger.Error("Failed to bulk create shoes", err, map[string]interface{}{
			"count": len(shoes),
		})
		return err
	}
	return nil
}

func (r *catalogRepository) CreateShoeCondition(sc *model.ShoeCondition) error {
	if err := r.db.Create(sc).Error; err != nil {
		logger.Error("Failed to create shoe condition", err, map[string]interface{}{
			"shoe_id":      sc.ShoeID,
			"condition_id": sc.ConditionID,
		})
		return err
	}
	return nil
}

func (r *catalogRepository) CreateShoeImage(image *model.ShoeImage) error {
	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to create shoe image", err, map[string]interface{}{
			"shoe_id": image.ShoeID,
		})
		return err
	}
	return nil
}
