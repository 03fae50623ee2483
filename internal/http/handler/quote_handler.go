package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/service"
)

type QuoteHandler struct {
	quoteService *service.QuoteService
	maxUploadMB  int64
	logger       *zap.Logger
}

func NewQuoteHandler(quoteService *service.QuoteService, maxUploadMB int64, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		maxUploadMB:  maxUploadMB,
		logger:       logger,
	}
}

// @Summary List quotes
// @Tags Quotes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(pending, confirmed, declined, expired)
// @Param clientId query string false "Filter by client ID"
// @Success 200 {object} domain.PaginatedResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	var status *domain.QuoteStatus
	if s := r.URL.Query().Get("status"); s != "" {
		qs := domain.QuoteStatus(s)
		if !qs.IsValid() {
			respondWithError(w, http.StatusBadRequest, "Invalid status filter")
			return
		}
		status = &qs
	}

	var clientID *uuid.UUID
	if cid := r.URL.Query().Get("clientId"); cid != "" {
		if id, err := uuid.Parse(cid); err == nil {
			clientID = &id
		}
	}

	result, err := h.quoteService.List(r.Context(), page, pageSize, status, clientID)
	if err != nil {
		h.logger.Error("failed to list quotes", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list quotes")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Get quote
// @Tags Quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} domain.QuoteDTO
// @Failure 404 {object} domain.APIError
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	dto, err := h.quoteService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// @Summary Update quote status
// @Description Moves a pending quote to confirmed or declined. Expiry is
// @Description handled by the nightly job, not this endpoint.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body domain.UpdateQuoteStatusRequest true "New status"
// @Success 200 {object} domain.QuoteDTO
// @Failure 409 {object} domain.APIError "Quote is not pending"
// @Router /quotes/{id}/status [put]
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	var req domain.UpdateQuoteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.quoteService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// @Summary Upload attachment
// @Tags Quotes
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Quote ID"
// @Param file formData file true "File to upload"
// @Success 201 {object} domain.QuoteAttachmentDTO
// @Failure 413 {object} domain.APIError
// @Router /quotes/{id}/attachments [post]
func (h *QuoteHandler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid quote ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)
	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid file upload: file field is required")
		return
	}
	defer file.Close()

	dto, err := h.quoteService.UploadAttachment(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error("failed to upload attachment", zap.Error(err), zap.String("quote_id", id.String()))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// @Summary Download attachment
// @Tags Quotes
// @Produce application/octet-stream
// @Param id path string true "Quote ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 200
// @Failure 404 {object} domain.APIError
// @Router /quotes/{id}/attachments/{attachmentId} [get]
func (h *QuoteHandler) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := uuid.Parse(chi.URLParam(r, "attachmentId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid attachment ID")
		return
	}

	attachment, reader, err := h.quoteService.DownloadAttachment(r.Context(), attachmentID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", attachment.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+attachment.Filename+"\"")
	w.Header().Set("Content-Length", strconv.FormatInt(attachment.Size, 10))

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("failed to stream attachment", zap.Error(err), zap.String("attachment_id", attachmentID.String()))
	}
}

// @Summary Delete attachment
// @Tags Quotes
// @Param id path string true "Quote ID"
// @Param attachmentId path string true "Attachment ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /quotes/{id}/attachments/{attachmentId} [delete]
func (h *QuoteHandler) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentID, err := uuid.Parse(chi.URLParam(r, "attachmentId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid attachment ID")
		return
	}

	if err := h.quoteService.DeleteAttachment(r.Context(), attachmentID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
