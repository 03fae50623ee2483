package service_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/repository"
	"github.com/bookwell/booking-api/internal/service"
	"github.com/bookwell/booking-api/internal/storage"
	"github.com/bookwell/booking-api/tests/testutil"
)

func setupQuoteServiceTestDB(t *testing.T) *gorm.DB {
	db := testutil.SetupCleanTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestData(t, db)
	})
	return db
}

func createQuoteService(t *testing.T, db *gorm.DB) (*service.QuoteService, *service.SessionService) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	sessions := createSessionService(db, sessionTestConfig(0))
	svc := service.NewQuoteService(
		repository.NewQuoteRepository(db),
		repository.NewClientRepository(db),
		repository.NewAttachmentRepository(db),
		sessions,
		store,
		zap.NewNop(),
	)
	return svc, sessions
}

// openSubmittableSession builds a session that passes validation: one line
// item, a booking date and time, and an existing client.
func openSubmittableSession(t *testing.T, db *gorm.DB, sessions *service.SessionService) uuid.UUID {
	ctx := context.Background()
	svcRow := testutil.CreateTestService(t, db, "Haircut", 6000)
	client := testutil.CreateTestClient(t, db, "Mari", "Holm")

	created, err := sessions.Create(ctx, nil)
	require.NoError(t, err)
	_, err = sessions.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	startDate := "2026-09-01"
	startTime := "10:00"
	_, err = sessions.UpdateBooking(created.ID, &domain.UpdateBookingRequest{
		StartDate: &startDate,
		StartTime: &startTime,
	})
	require.NoError(t, err)

	_, err = sessions.SetClient(ctx, created.ID, &domain.SetSessionClientRequest{
		Kind:     domain.ClientKindExisting,
		ClientID: &client.ID,
	})
	require.NoError(t, err)

	return created.ID
}

func TestQuoteService_Submit(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	sessionID := openSubmittableSession(t, db, sessions)

	q, err := svc.Submit(ctx, sessionID, &domain.SubmitQuoteRequest{Notes: "morning slot preferred"})
	require.NoError(t, err)
	require.NotNil(t, q)

	expectedNumber := fmt.Sprintf("Q-%d-00001", time.Now().Year())
	assert.Equal(t, expectedNumber, q.QuoteNumber)
	assert.Equal(t, domain.QuoteStatusPending, q.Status)
	assert.Equal(t, "2026-09-01", q.StartDate)
	assert.Equal(t, "Mari Holm", q.ClientName)
	require.Len(t, q.LineItems, 1)
	assert.Equal(t, "Haircut", q.LineItems[0].ServiceName)
	assert.Equal(t, int64(6000), q.LineItems[0].Amount)
	assert.Equal(t, int64(7200), q.GrandTotal)
	assert.NotEmpty(t, q.ValidUntil)

	// submission consumes the session
	_, err = sessions.Get(sessionID)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// and the quote is readable back with its lines
	stored, err := svc.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.QuoteNumber, stored.QuoteNumber)
	assert.Len(t, stored.LineItems, 1)
}

func TestQuoteService_Submit_NewClientCreatesRecord(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	svcRow := testutil.CreateTestService(t, db, "Deep clean", 20000)
	created, err := sessions.Create(ctx, nil)
	require.NoError(t, err)
	_, err = sessions.AddLineItem(created.ID, &domain.AddLineItemRequest{ServiceID: svcRow.ID})
	require.NoError(t, err)

	startDate := "2026-09-02"
	startTime := "09:00"
	_, err = sessions.UpdateBooking(created.ID, &domain.UpdateBookingRequest{
		StartDate: &startDate,
		StartTime: &startTime,
	})
	require.NoError(t, err)

	_, err = sessions.SetClient(ctx, created.ID, &domain.SetSessionClientRequest{
		Kind:      domain.ClientKindNew,
		FirstName: "Ola",
		LastName:  "Nordmann",
		Phone:     "+47 900 00 000",
	})
	require.NoError(t, err)

	q, err := svc.Submit(ctx, created.ID, &domain.SubmitQuoteRequest{})
	require.NoError(t, err)
	require.NotNil(t, q.ClientID)

	var client domain.Client
	err = db.First(&client, "id = ?", *q.ClientID).Error
	require.NoError(t, err)
	assert.Equal(t, "Ola", client.FirstName)
	assert.Equal(t, "Nordmann", client.LastName)
}

func TestQuoteService_Submit_ValidationFailure(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	created, err := sessions.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, created.ID, &domain.SubmitQuoteRequest{})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "at least one service must be selected")
	assert.Contains(t, verr.Fields, "booking start date is required")

	// a failed submit keeps the session open
	_, err = sessions.Get(created.ID)
	assert.NoError(t, err)
}

func TestQuoteService_Submit_SessionNotFound(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, _ := createQuoteService(t, db)

	_, err := svc.Submit(context.Background(), uuid.New(), &domain.SubmitQuoteRequest{})
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestQuoteService_UpdateStatus(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	sessionID := openSubmittableSession(t, db, sessions)
	q, err := svc.Submit(ctx, sessionID, &domain.SubmitQuoteRequest{})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, q.ID, &domain.UpdateQuoteStatusRequest{
		Status: domain.QuoteStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusConfirmed, updated.Status)

	// only pending quotes can change status
	_, err = svc.UpdateStatus(ctx, q.ID, &domain.UpdateQuoteStatusRequest{
		Status: domain.QuoteStatusDeclined,
	})
	assert.ErrorIs(t, err, service.ErrQuoteNotPending)

	_, err = svc.UpdateStatus(ctx, q.ID, &domain.UpdateQuoteStatusRequest{
		Status: domain.QuoteStatusExpired,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, uuid.New(), &domain.UpdateQuoteStatusRequest{
		Status: domain.QuoteStatusDeclined,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestQuoteService_List(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sessionID := openSubmittableSession(t, db, sessions)
		_, err := svc.Submit(ctx, sessionID, &domain.SubmitQuoteRequest{})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.TotalPages)

	pending := domain.QuoteStatusPending
	page, err = svc.List(ctx, 1, 20, &pending, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	confirmed := domain.QuoteStatusConfirmed
	page, err = svc.List(ctx, 1, 20, &confirmed, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	// out-of-range paging falls back to defaults
	page, err = svc.List(ctx, 0, 500, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
}

func TestQuoteService_ExpireQuotes(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	sessionID := openSubmittableSession(t, db, sessions)
	q, err := svc.Submit(ctx, sessionID, &domain.SubmitQuoteRequest{})
	require.NoError(t, err)

	// freshly submitted quotes are inside their validity window
	expired, err := svc.ExpireQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), expired)

	stale := time.Now().AddDate(0, 0, -1)
	err = db.Model(&domain.Quote{}).Where("id = ?", q.ID).Update("valid_until", stale).Error
	require.NoError(t, err)

	expired, err = svc.ExpireQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	stored, err := svc.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteStatusExpired, stored.Status)
}

func TestQuoteService_Attachments(t *testing.T) {
	db := setupQuoteServiceTestDB(t)
	svc, sessions := createQuoteService(t, db)
	ctx := context.Background()

	sessionID := openSubmittableSession(t, db, sessions)
	q, err := svc.Submit(ctx, sessionID, &domain.SubmitQuoteRequest{})
	require.NoError(t, err)

	attachment, err := svc.UploadAttachment(ctx, q.ID, "scope.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, "scope.pdf", attachment.Filename)
	assert.Equal(t, int64(len("pdf bytes")), attachment.Size)

	record, reader, err := svc.DownloadAttachment(ctx, attachment.ID)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
	assert.Equal(t, "application/pdf", record.ContentType)

	err = svc.DeleteAttachment(ctx, attachment.ID)
	require.NoError(t, err)

	_, _, err = svc.DownloadAttachment(ctx, attachment.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// uploads against unknown quotes are rejected
	_, err = svc.UploadAttachment(ctx, uuid.New(), "x.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, service.ErrNotFound)
}
