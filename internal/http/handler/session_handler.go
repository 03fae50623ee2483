package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/service"
)

// SessionHandler exposes the quote-session workflow: open a session, build
// the quote interactively, read totals and availability, then submit or
// cancel.
type SessionHandler struct {
	sessionService *service.SessionService
	quoteService   *service.QuoteService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService *service.SessionService, quoteService *service.QuoteService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		quoteService:   quoteService,
		logger:         logger,
	}
}

func sessionID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func lineServiceID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "serviceId"))
	return id, err == nil
}

// @Summary Open quote session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body domain.CreateSessionRequest false "Session options"
// @Success 201 {object} domain.SessionDTO
// @Router /sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	dto, err := h.sessionService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create quote session", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// @Summary Get quote session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	dto, err := h.sessionService.GetDTO(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Add line item
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.AddLineItemRequest true "Service to add"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items [post]
func (h *SessionHandler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req domain.AddLineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.sessionService.AddLineItem(id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Remove line item
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items/{serviceId} [delete]
func (h *SessionHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	serviceID, ok := lineServiceID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	dto, err := h.sessionService.RemoveLineItem(id, serviceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Set line item quantity
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Param request body domain.SetQuantityRequest true "New quantity"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items/{serviceId}/quantity [put]
func (h *SessionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	serviceID, ok := lineServiceID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req domain.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.sessionService.SetQuantity(id, serviceID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Assign staff to a unit
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Param request body domain.AssignStaffRequest true "Assignment (null staffId clears)"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items/{serviceId}/assignments [put]
func (h *SessionHandler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	serviceID, ok := lineServiceID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req domain.AssignStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.sessionService.AssignStaff(id, serviceID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Set a unit's start time
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Param request body domain.SetAssignmentTimeRequest true "Start time"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items/{serviceId}/assignments/start [put]
func (h *SessionHandler) SetAssignmentStart(w http.ResponseWriter, r *http.Request) {
	h.setAssignmentTime(w, r, h.sessionService.SetAssignmentStart)
}

// @Summary Set a unit's end time
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param serviceId path string true "Service ID"
// @Param request body domain.SetAssignmentTimeRequest true "End time"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/items/{serviceId}/assignments/end [put]
func (h *SessionHandler) SetAssignmentEnd(w http.ResponseWriter, r *http.Request) {
	h.setAssignmentTime(w, r, h.sessionService.SetAssignmentEnd)
}

func (h *SessionHandler) setAssignmentTime(
	w http.ResponseWriter,
	r *http.Request,
	apply func(uuid.UUID, uuid.UUID, *domain.SetAssignmentTimeRequest) (*domain.SessionDTO, error),
) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}
	serviceID, ok := lineServiceID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var req domain.SetAssignmentTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := apply(id, serviceID, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Update booking fields
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.UpdateBookingRequest true "Booking fields (omitted fields unchanged)"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/booking [patch]
func (h *SessionHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req domain.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.sessionService.UpdateBooking(id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Set discount
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.SetDiscountRequest true "Discount"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/discount [put]
func (h *SessionHandler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req domain.SetDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.sessionService.SetDiscount(id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Set client
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.SetSessionClientRequest true "Client selection"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/client [put]
func (h *SessionHandler) SetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req domain.SetSessionClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.sessionService.SetClient(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Get totals
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.TotalsDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/totals [get]
func (h *SessionHandler) Totals(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	dto, err := h.sessionService.Totals(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Get staff availability
// @Description Returns the advisory available/busy roster split for the
// @Description session's current booking window. The split never blocks an
// @Description assignment; busy staff can still be booked.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.AvailabilityDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/availability [get]
func (h *SessionHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	dto, err := h.sessionService.Availability(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Submit session as quote
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body domain.SubmitQuoteRequest false "Submission options"
// @Success 201 {object} domain.QuoteDTO
// @Failure 422 {object} domain.APIError "Aggregated validation failures"
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	var req domain.SubmitQuoteRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	dto, err := h.quoteService.Submit(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto)
}

// @Summary Reset session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.SessionDTO
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	dto, err := h.sessionService.Reset(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto)
}

// @Summary Cancel session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return
	}

	if err := h.sessionService.Cancel(id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
