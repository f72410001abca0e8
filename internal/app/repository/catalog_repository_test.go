package repository

import (
	"testing"

	"github.com/solemate/solemate-backend/internal/app/catalog"
	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogTest(t *testing.T) (*gorm.DB, CatalogRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewCatalogRepository(testDB)
	return testDB, repo
}

func seedCatalog(t *testing.T, testDB *gorm.DB) {
	styles := []model.Style{{Name: "Athletic"}, {Name: "Boots"}}
	require.NoError(t, testDB.Create(&styles).Error)

	brands := []model.Brand{{Name: "OrthoFeet"}, {Name: "NewStep"}}
	require.NoError(t, testDB.Create(&brands).Error)

	conditions := []model.Condition{
		{Name: "Plantar Fasciitis", Description: "Heel and arch support"},
		{Name: "Wide Foot", Description: "Roomy toe box"},
	}
	require.NoError(t, testDB.Create(&conditions).Error)

	shoes := []model.Shoe{
		{
			Name:     "Arch Support Runner",
			Price:    100,
			Rating:   4.5,
			Gender:   model.GenderMen,
			StyleID:  styles[0].ID,
			BrandID:  brands[0].ID,
			ImageURL: "https://img.example.com/a.jpg",
		},
		{
			Name:     "CloudStep Walker",
			Price:    250,
			Rating:   4.8,
			Gender:   model.GenderUnisex,
			StyleID:  styles[1].ID,
			BrandID:  brands[1].ID,
			ImageURL: "https://img.example.com/b.jpg",
		},
	}
	require.NoError(t, testDB.Create(&shoes).Error)

	require.NoError(t, testDB.Create(&model.ShoeCondition{
		ShoeID:      shoes[0].ID,
		ConditionID: conditions[0].ID,
	}).Error)
	require.NoError(t, testDB.Create(&model.ShoeImage{
		ShoeID: shoes[1].ID,
		URL:    "https://img.example.com/primary-b.jpg",
	}).Error)
}

func TestCatalogRepository_LoadSnapshot(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	seedCatalog(t, testDB)

	snapshot, err := repo.LoadSnapshot()
	assert.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 2, snapshot.Size())

	// The snapshot carries the full condition and style vocabularies.
	assert.Len(t, snapshot.Conditions(), 2)
	assert.Len(t, snapshot.Styles(), 2)

	// Linked data is wired into search results.
	results := snapshot.Match(catalog.Query{Condition: "plantar-fasciitis"})
	require.Len(t, results, 1)
	assert.Equal(t, "Arch Support Runner", results[0].Name)

	// The image table row wins over the inline column.
	all := snapshot.Match(catalog.Query{})
	require.Len(t, all, 2)
	assert.Equal(t, "https://img.example.com/primary-b.jpg", all[1].Image)
}

func TestCatalogRepository_LoadSnapshot_EmptyCatalog(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	snapshot, err := repo.LoadSnapshot()
	assert.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.Size())
	assert.Empty(t, snapshot.Match(catalog.Query{}))
}

func TestCatalogRepository_FindOrCreateStyle(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := repo.FindOrCreateStyle("Athletic")
	assert.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	// Second call returns the existing row instead of creating another.
	found, err := repo.FindOrCreateStyle("Athletic")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	var count int64
	testDB.Model(&model.Style{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCatalogRepository_FindOrCreateBrand(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	created, err := repo.FindOrCreateBrand("OrthoFeet")
	assert.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	found, err := repo.FindOrCreateBrand("OrthoFeet")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestCatalogRepository_FindAllConditions(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	seedCatalog(t, testDB)

	conditions, err := repo.FindAllConditions()
	assert.NoError(t, err)
	require.Len(t, conditions, 2)
	assert.Equal(t, "Plantar Fasciitis", conditions[0].Name)
	assert.Equal(t, "Wide Foot", conditions[1].Name)
}

func TestCatalogRepository_BulkCreateShoes(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	style, err := repo.FindOrCreateStyle("Casual")
	require.NoError(t, err)
	brand, err := repo.FindOrCreateBrand("NewStep")
	require.NoError(t, err)

	shoes := make([]model.Shoe, 0, 5)
	for i := 0; i < 5; i++ {
		shoes = append(shoes, model.Shoe{
			Name:    "Bulk Shoe",
			Price:   50,
			Rating:  4,
			Gender:  model.GenderUnisex,
			StyleID: style.ID,
			BrandID: brand.ID,
		})
	}

	err = repo.BulkCreateShoes(shoes, 2)
	assert.NoError(t, err)

	// IDs are backfilled so the importer can link conditions and images.
	for _, s := range shoes {
		assert.NotZero(t, s.ID)
	}

	var count int64
	testDB.Model(&model.Shoe{}).Count(&count)
	assert.Equal(t, int64(5), count)
}

func TestCatalogRepository_CreateShoeConditionAndImage(t *testing.T) {
	testDB, repo := setupCatalogTest(t)
	defer db.CleanupTestDB(testDB)

	seedCatalog(t, testDB)

	var shoe model.Shoe
	require.NoError(t, testDB.First(&shoe, "name = ?", "CloudStep Walker").Error)
	var condition model.Condition
	require.NoError(t, testDB.First(&condition, "name = ?", "Wide Foot").Error)

	err := repo.CreateShoeCondition(&model.ShoeCondition{
		ShoeID:      shoe.ID,
		ConditionID: condition.ID,
	})
	assert.NoError(t, err)

	var otherShoe model.Shoe
	require.NoError(t, testDB.First(&otherShoe, "name = ?", "Arch Support Runner").Error)
	err = repo.CreateShoeImage(&model.ShoeImage{
		ShoeID: otherShoe.ID,
		URL:    "https://img.example.com/primary-a.jpg",
	})
	assert.NoError(t, err)

	snapshot, err := repo.LoadSnapshot()
	require.NoError(t, err)
	results := snapshot.Match(catalog.Query{Condition: "wide-foot"})
	require.Len(t, results, 1)
	assert.Equal(t, shoe.ID, results[0].ID)
}
