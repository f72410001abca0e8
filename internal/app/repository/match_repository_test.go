package repository

import (
	"testing"

	"github.com/solemate/solemate-backend/internal/app/model"
	"github.com/solemate/solemate-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMatchTest(t *testing.T) (*gorm.DB, MatchRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewMatchRepository(testDB)
	return testDB, repo
}

func TestMatchRepository_Create(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	match := &model.Match{
		UserID: "local-user",
		ShoeID: 1,
	}

	err := repo.Create(match)
	assert.NoError(t, err)
	assert.NotZero(t, match.ID)
}

func TestMatchRepository_Create_DuplicatesAllowed(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	first := &model.Match{UserID: "local-user", ShoeID: 7}
	second := &model.Match{UserID: "local-user", ShoeID: 7}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.NotEqual(t, first.ID, second.ID)

	matches, err := repo.FindByUserID("local-user")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestMatchRepository_FindByUserID(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.Match{UserID: "alice", ShoeID: 1}))
	require.NoError(t, repo.Create(&model.Match{UserID: "alice", ShoeID: 2}))
	require.NoError(t, repo.Create(&model.Match{UserID: "bob", ShoeID: 3}))

	matches, err := repo.FindByUserID("alice")
	assert.NoError(t, err)
	require.Len(t, matches, 2)

	// Save order is preserved, and other users' matches are not visible.
	assert.Equal(t, uint(1), matches[0].ShoeID)
	assert.Equal(t, uint(2), matches[1].ShoeID)
	for _, m := range matches {
		assert.Equal(t, "alice", m.UserID)
	}
}

func TestMatchRepository_FindByUserID_Empty(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	matches, err := repo.FindByUserID("nobody")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchRepository_DeleteByIDForUser(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	match := &model.Match{UserID: "alice", ShoeID: 5}
	require.NoError(t, repo.Create(match))

	deleted, err := repo.DeleteByIDForUser("alice", match.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	matches, err := repo.FindByUserID("alice")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchRepository_DeleteByIDForUser_WrongUser(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	match := &model.Match{UserID: "alice", ShoeID: 5}
	require.NoError(t, repo.Create(match))

	deleted, err := repo.DeleteByIDForUser("bob", match.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	// Alice's match is untouched.
	matches, err := repo.FindByUserID("alice")
	assert.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestMatchRepository_DeleteByIDForUser_NotFound(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	deleted, err := repo.DeleteByIDForUser("alice", 9999)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestMatchRepository_DeleteByIDForUser_OnlyTargetRemoved(t *testing.T) {
	testDB, repo := setupMatchTest(t)
	defer db.CleanupTestDB(testDB)

	first := &model.Match{UserID: "alice", ShoeID: 7}
	second := &model.Match{UserID: "alice", ShoeID: 7}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	deleted, err := repo.DeleteByIDForUser("alice", first.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	matches, err := repo.FindByUserID("alice")
	assert.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, second.ID, matches[0].ID)
}
