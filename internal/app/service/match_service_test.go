package service

import (
	"context"
	"testing"
	"time"

	"github.com/solemate/solemate-backend/internal/app/repository"
	"github.com/solemate/solemate-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMatchServiceTest(t *testing.T) (MatchService, CatalogService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	catalogRepo := repository.NewCatalogRepository(testDB)
	matchRepo := repository.NewMatchRepository(testDB)

	catalogService := NewCatalogService(catalogRepo, false, time.Minute)
	matchService := NewMatchService(matchRepo, catalogService)

	seedCatalogData(t, testDB)
	require.NoError(t, catalogService.Reload(context.Background()))

	return matchService, catalogService, testDB
}

func TestMatchService_SaveMatch(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	match, err := matchService.SaveMatch("local-user", 1)
	assert.NoError(t, err)
	require.NotNil(t, match)
	assert.NotZero(t, match.ID)
	assert.Equal(t, "local-user", match.UserID)
	assert.Equal(t, uint(1), match.ShoeID)
}

func TestMatchService_SaveMatch_MissingShoeID(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	_, err := matchService.SaveMatch("local-user", 0)
	assert.ErrorIs(t, err, ErrShoeIDRequired)
}

func TestMatchService_SaveMatch_NoCatalogCheck(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	// Saving accepts any non-zero id, even one the catalog has never seen.
	match, err := matchService.SaveMatch("local-user", 9999)
	assert.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, uint(9999), match.ShoeID)
}

func TestMatchService_SaveListRemoveCycle(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	// Saving the same shoe twice yields two distinct matches.
	first, err := matchService.SaveMatch("local-user", 1)
	require.NoError(t, err)
	second, err := matchService.SaveMatch("local-user", 1)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	matches, err := matchService.ListMatches("local-user")
	assert.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, first.ID, matches[0].ID)
	assert.Equal(t, second.ID, matches[1].ID)

	// Removing the first leaves only the second.
	require.NoError(t, matchService.RemoveMatch("local-user", first.ID))

	matches, err = matchService.ListMatches("local-user")
	assert.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, second.ID, matches[0].ID)
}

func TestMatchService_ListMatches_JoinsEnrichedShoe(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	_, err := matchService.SaveMatch("local-user", 1)
	require.NoError(t, err)

	matches, err := matchService.ListMatches("local-user")
	assert.NoError(t, err)
	require.Len(t, matches, 1)

	shoe := matches[0].Shoe
	assert.Equal(t, uint(1), shoe.ID)
	assert.Equal(t, "Arch Support Runner", shoe.Name)
	assert.Contains(t, shoe.MedicalConditions, "plantar-fasciitis")
	assert.False(t, matches[0].SavedAt.IsZero())
}

func TestMatchService_ListMatches_DropsDanglingShoes(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	_, err := matchService.SaveMatch("local-user", 1)
	require.NoError(t, err)
	_, err = matchService.SaveMatch("local-user", 9999)
	require.NoError(t, err)

	// The match pointing at a shoe the catalog does not carry is dropped
	// from the listing rather than failing it.
	matches, err := matchService.ListMatches("local-user")
	assert.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint(1), matches[0].Shoe.ID)
}

func TestMatchService_ListMatches_Empty(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	matches, err := matchService.ListMatches("local-user")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchService_ListMatches_ScopedToUser(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	_, err := matchService.SaveMatch("alice", 1)
	require.NoError(t, err)
	_, err = matchService.SaveMatch("bob", 2)
	require.NoError(t, err)

	matches, err := matchService.ListMatches("alice")
	assert.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, uint(1), matches[0].Shoe.ID)
}

func TestMatchService_RemoveMatch_NotFound(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	err := matchService.RemoveMatch("local-user", 9999)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestMatchService_RemoveMatch_OtherUsersMatch(t *testing.T) {
	matchService, _, _ := setupMatchServiceTest(t)

	match, err := matchService.SaveMatch("alice", 1)
	require.NoError(t, err)

	// Bob cannot remove Alice's match, and it stays listed for her.
	err = matchService.RemoveMatch("bob", match.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	matches, err := matchService.ListMatches("alice")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}
