package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/tests/testutil"
)

func setupClientTestDB(t *testing.T) *gorm.DB {
	db := testutil.SetupCleanTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestData(t, db)
	})
	return db
}

func TestClientRepository_CreateAndGet(t *testing.T) {
	db := setupClientTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	client := &domain.Client{
		FirstName: "Mari",
		LastName:  "Holm",
		Email:     "mari.holm@example.com",
		Phone:     "+47 900 00 001",
		Notes:     "prefers afternoon slots",
	}
	err := repo.Create(ctx, client)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, client.ID)

	found, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mari", found.FirstName)
	assert.Equal(t, "mari.holm@example.com", found.Email)
	assert.Equal(t, "prefers afternoon slots", found.Notes)
}

func TestClientRepository_GetByID_NotFound(t *testing.T) {
	db := setupClientTestDB(t)
	repo := repository.NewClientRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClientRepository_Update(t *testing.T) {
	db := setupClientTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	client := testutil.CreateTestClient(t, db, "Ola", "Nordmann")

	client.Phone = "+47 900 00 999"
	err := repo.Update(ctx, client)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "+47 900 00 999", found.Phone)
}

func TestClientRepository_List(t *testing.T) {
	db := setupClientTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	testutil.CreateTestClient(t, db, "Mari", "Holm")
	testutil.CreateTestClient(t, db, "Ola", "Nordmann")
	testutil.CreateTestClient(t, db, "Kari", "Vik")

	clients, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, clients, 2)

	clients, total, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, clients, 1)
}

func TestClientRepository_Search(t *testing.T) {
	db := setupClientTestDB(t)
	repo := repository.NewClientRepository(db)
	ctx := context.Background()

	testutil.CreateTestClient(t, db, "Mari", "Holm")
	testutil.CreateTestClient(t, db, "Ola", "Nordmann")

	results, err := repo.Search(ctx, "holm", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Mari", results[0].FirstName)

	results, err = repo.Search(ctx, "zzz", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
