package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/config"
	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/internal/service"
	"github.com/bookwell/booking-api/tests/testutil"
)

func setupSessionServiceTestDB(t *testing.T) *gorm.DB {
	db := testutil.SetupCleanTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestData(t, db)
	})
	return db
}

func sessionTestConfig(maxSessions int) *config.Config {
	return &config.Config{
		Pricing: config.PricingConfig{
			Mode:         "fixed",
			TaxRate:      0.20,
			BusinessType: "salon",
		},
		Session: config.SessionConfig{
			IdleTTL:     30,
			MaxSessions: maxSessions,
		},
	}
}

func createSessionService(db *gorm.DB, cfg *config.Config) *service.SessionService {
	catalogRepo := repository.NewCatalogRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	clientRepo := repository.NewClientRepository(db)
	logger := zap.NewNop()

	return service.NewSessionService(catalogRepo, staffRepo, clientRepo, nil, cfg, logger)
}

func TestSessionService_Create(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	testutil.CreateTestService(t, db, "Haircut", 6000)
	testutil.CreateTestStaff(t, db, "Nora", "Berg")
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateSessionRequest{})
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Empty(t, dto.LineItems)
	assert.Equal(t, domain.ClientKindExisting, dto.Client.Kind)
	assert.Equal(t, int64(0), dto.Totals.GrandTotal)
	assert.Equal(t, 1, svc.OpenCount())
}

func TestSessionService_Create_PricingModeOverride(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	dto, err := svc.Create(ctx, &domain.CreateSessionRequest{
		PricingMode:  domain.PricingModeHourly,
		BusinessType: domain.BusinessTypeHomeService,
	})
	require.NoError(t, err)
	require.NotNil(t, dto)

	_, err = svc.Create(ctx, &domain.CreateSessionRequest{PricingMode: "bogus"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.Create(ctx, &domain.CreateSessionRequest{BusinessType: "spaceport"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestSessionService_Create_SessionLimit(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(2))
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, nil)
	assert.ErrorIs(t, err, service.ErrSessionLimit)
	assert.Equal(t, 2, svc.OpenCount())
}

func TestSessionService_Get_NotFound(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(0))

	_, err := svc.Get(uuid.New())
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	_, err = svc.GetDTO(uuid.New())
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestSessionService_LineItemFlow(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	dto, err := svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)
	require.Len(t, dto.LineItems, 1)
	assert.Equal(t, "Haircut", dto.LineItems[0].Name)
	assert.Equal(t, 1, dto.LineItems[0].Quantity)
	assert.Equal(t, int64(6000), dto.Totals.Subtotal)

	dto, err = svc.SetQuantity(created.ID, svcRow.ID, &domain.SetQuantityRequest{Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, dto.LineItems[0].Quantity)
	assert.Len(t, dto.LineItems[0].Assignments, 3)
	assert.Equal(t, int64(18000), dto.Totals.Subtotal)

	dto, err = svc.RemoveLineItem(created.ID, svcRow.ID)
	require.NoError(t, err)
	assert.Empty(t, dto.LineItems)
	assert.Equal(t, int64(0), dto.Totals.Subtotal)
}

func TestSessionService_AssignStaffAndTimes(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	staff := testutil.CreateTestStaff(t, db, "Nora", "Berg")
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	dto, err := svc.AssignStaff(created.ID, svcRow.ID, &domain.AssignStaffRequest{
		UnitIndex: 0,
		StaffID:   &staff.ID,
	})
	require.NoError(t, err)
	require.Len(t, dto.LineItems[0].Assignments, 1)
	assert.Equal(t, "Nora Berg", dto.LineItems[0].Assignments[0].StaffName)

	dto, err = svc.SetAssignmentStart(created.ID, svcRow.ID, &domain.SetAssignmentTimeRequest{
		UnitIndex: 0,
		Time:      "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", dto.LineItems[0].Assignments[0].StartTime)
	assert.Equal(t, "10:45", dto.LineItems[0].Assignments[0].EndTime)

	dto, err = svc.SetAssignmentEnd(created.ID, svcRow.ID, &domain.SetAssignmentTimeRequest{
		UnitIndex: 0,
		Time:      "11:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", dto.LineItems[0].Assignments[0].EndTime)
}

func TestSessionService_UpdateBooking(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	startDate := "2026-09-01"
	startTime := "10:00"
	onSite := true
	travelFee := int64(80)
	dto, err := svc.UpdateBooking(created.ID, &domain.UpdateBookingRequest{
		StartDate: &startDate,
		StartTime: &startTime,
		OnSite:    &onSite,
		TravelFee: &travelFee,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", dto.Booking.StartDate)
	assert.Equal(t, "10:00", dto.Booking.StartTime)
	assert.True(t, dto.Booking.OnSite)
	assert.Equal(t, int64(80), dto.Booking.TravelFee)
	assert.Equal(t, int64(8000), dto.Totals.TravelFee)

	// a partial patch leaves the other booking fields alone
	endTime := "12:00"
	dto, err = svc.UpdateBooking(created.ID, &domain.UpdateBookingRequest{EndTime: &endTime})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", dto.Booking.StartDate)
	assert.Equal(t, "12:00", dto.Booking.EndTime)
	assert.True(t, dto.Booking.OnSite)
}

func TestSessionService_SetDiscount(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	dto, err := svc.SetDiscount(created.ID, &domain.SetDiscountRequest{
		Mode:  domain.DiscountModePercentage,
		Value: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(600), dto.Totals.DiscountAmount)
	assert.Equal(t, int64(5400), dto.Totals.NetAmount)

	_, err = svc.SetDiscount(created.ID, &domain.SetDiscountRequest{Mode: "coupon"})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestSessionService_SetClient(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	client := testutil.CreateTestClient(t, db, "Mari", "Holm")
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	// an existing-client selection pulls contact details from the row
	dto, err := svc.SetClient(ctx, created.ID, &domain.SetSessionClientRequest{
		Kind:     domain.ClientKindExisting,
		ClientID: &client.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mari", dto.Client.FirstName)
	assert.Equal(t, "Holm", dto.Client.LastName)

	unknown := uuid.New()
	_, err = svc.SetClient(ctx, created.ID, &domain.SetSessionClientRequest{
		Kind:     domain.ClientKindExisting,
		ClientID: &unknown,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	dto, err = svc.SetClient(ctx, created.ID, &domain.SetSessionClientRequest{
		Kind:      domain.ClientKindNew,
		FirstName: "Ola",
		LastName:  "Nordmann",
		Phone:     "+47 900 00 000",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ClientKindNew, dto.Client.Kind)
	assert.Equal(t, "Ola", dto.Client.FirstName)
}

func TestSessionService_Reset(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	dto, err := svc.Reset(created.ID)
	require.NoError(t, err)
	assert.Empty(t, dto.LineItems)
	assert.Equal(t, int64(0), dto.Totals.GrandTotal)

	// the session stays open and usable after a reset
	dto, err = svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)
	assert.Len(t, dto.LineItems, 1)
}

func TestSessionService_CancelAndRemove(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	err = svc.Cancel(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, svc.OpenCount())

	err = svc.Cancel(created.ID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	created, err = svc.Create(ctx, nil)
	require.NoError(t, err)
	svc.Remove(created.ID)
	assert.Equal(t, 0, svc.OpenCount())
	// removing an unknown id is a no-op
	svc.Remove(uuid.New())
}

func TestSessionService_SweepIdle(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	_, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, nil)
	require.NoError(t, err)

	// nothing is older than an hour yet
	swept := svc.SweepIdle(time.Hour)
	assert.Equal(t, 0, swept)
	assert.Equal(t, 2, svc.OpenCount())

	// with a negative TTL the cutoff is in the future, so everything sweeps
	swept = svc.SweepIdle(-time.Minute)
	assert.Equal(t, 2, swept)
	assert.Equal(t, 0, svc.OpenCount())
}

func TestSessionService_Totals(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)
	_, err = svc.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	totals, err := svc.Totals(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), totals.Subtotal)
	assert.Equal(t, int64(1200), totals.TaxAmount)
	assert.Equal(t, int64(7200), totals.GrandTotal)
}

func TestSessionService_Availability_NoGate(t *testing.T) {
	db := setupSessionServiceTestDB(t)
	testutil.CreateTestStaff(t, db, "Nora", "Berg")
	testutil.CreateTestStaff(t, db, "Jonas", "Lien")
	svc := createSessionService(db, sessionTestConfig(0))
	ctx := context.Background()

	created, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	// without a gate the full active roster stays available
	availability, err := svc.Availability(created.ID)
	require.NoError(t, err)
	assert.Len(t, availability.Available, 2)
	assert.Empty(t, availability.Busy)
}
