package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/service"
)

type StaffHandler struct {
	staffService *service.StaffService
	logger       *zap.Logger
}

func NewStaffHandler(staffService *service.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		logger:       logger,
	}
}

// @Summary List staff
// @Tags Staff
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param active query bool false "Only active staff"
// @Param role query string false "Filter by role"
// @Success 200 {object} domain.PaginatedResponse
// @Router /staff [get]
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	activeOnly := r.URL.Query().Get("active") == "true"
	role := r.URL.Query().Get("role")

	result, err := h.staffService.List(r.Context(), page, pageSize, activeOnly, role)
	if err != nil {
		h.logger.Error("failed to list staff", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list staff")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// @Summary Create staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body domain.CreateStaffRequest true "Staff data"
// @Success 201 {object} domain.StaffMemberDTO
// @Failure 400 {object} domain.APIError
// @Router /staff [post]
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.staffService.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create staff member", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto)
}

// @Summary Get staff member
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} domain.StaffMemberDTO
// @Failure 404 {object} domain.APIError
// @Router /staff/{id} [get]
func (h *StaffHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	dto, err := h.staffService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// @Summary Update staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body domain.UpdateStaffRequest true "Staff data"
// @Success 200 {object} domain.StaffMemberDTO
// @Failure 404 {object} domain.APIError
// @Router /staff/{id} [put]
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	var req domain.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	dto, err := h.staffService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto)
}

// @Summary Delete staff member
// @Tags Staff
// @Param id path string true "Staff ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Router /staff/{id} [delete]
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	if err := h.staffService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
