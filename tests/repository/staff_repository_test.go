package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/tests/testutil"
)

func setupStaffTestDB(t *testing.T) *gorm.DB {
	db := testutil.SetupCleanTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestData(t, db)
	})
	return db
}

func TestStaffRepository_CreateAndGet(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	staff := &domain.StaffMember{
		FirstName: "Nora",
		LastName:  "Berg",
		Email:     "nora.berg@example.com",
		Role:      "stylist",
		Skills:    pq.StringArray{"coloring", "cutting"},
		IsActive:  true,
	}
	err := repo.Create(ctx, staff)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, staff.ID)

	found, err := repo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nora", found.FirstName)
	assert.Equal(t, "stylist", found.Role)
	assert.ElementsMatch(t, []string{"coloring", "cutting"}, []string(found.Skills))
}

func TestStaffRepository_Update(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	staff := testutil.CreateTestStaff(t, db, "Jonas", "Lien")

	staff.Role = "senior stylist"
	staff.IsActive = false
	err := repo.Update(ctx, staff)
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.Equal(t, "senior stylist", found.Role)
	assert.False(t, found.IsActive)
}

func TestStaffRepository_Delete(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	staff := testutil.CreateTestStaff(t, db, "Ida", "Strand")
	err := repo.Delete(ctx, staff.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, staff.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStaffRepository_List(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	testutil.CreateTestStaff(t, db, "Nora", "Berg")
	testutil.CreateTestStaff(t, db, "Jonas", "Lien")
	inactive := testutil.CreateTestStaff(t, db, "Emil", "Foss")
	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	t.Run("all", func(t *testing.T) {
		staff, total, err := repo.List(ctx, 1, 20, false, "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, staff, 3)
		// ordered by last name
		assert.Equal(t, "Berg", staff[0].LastName)
	})

	t.Run("active only", func(t *testing.T) {
		staff, total, err := repo.List(ctx, 1, 20, true, "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, staff, 2)
	})

	t.Run("by role", func(t *testing.T) {
		_, total, err := repo.List(ctx, 1, 20, false, "no-such-role")
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})
}

func TestStaffRepository_ListActive(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	testutil.CreateTestStaff(t, db, "Nora", "Berg")
	inactive := testutil.CreateTestStaff(t, db, "Emil", "Foss")
	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	staff, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "Nora", staff[0].FirstName)
}

func TestStaffRepository_Search(t *testing.T) {
	db := setupStaffTestDB(t)
	repo := repository.NewStaffRepository(db)
	ctx := context.Background()

	testutil.CreateTestStaff(t, db, "Nora", "Berg")
	testutil.CreateTestStaff(t, db, "Jonas", "Lien")

	results, err := repo.Search(ctx, "berg", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Nora", results[0].FirstName)

	results, err = repo.Search(ctx, "zzz", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
