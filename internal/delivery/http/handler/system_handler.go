package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"

	"github.com/gorilla/mux"
)

// SystemHandler serves landing-page sections, system settings and the
// audit trail.
type SystemHandler struct {
	systemUsecase usecase.SystemUsecase
	validator     *validator.CustomValidator
}

func NewSystemHandler(systemUsecase usecase.SystemUsecase, validator *validator.CustomValidator) *SystemHandler {
	return &SystemHandler{
		systemUsecase: systemUsecase,
		validator:     validator,
	}
}

// Sections

func (h *SystemHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	section, err := h.systemUsecase.CreateSection(r.Context(), actor, &req)
	if err != nil {
		if err == usecase.ErrSectionTypeTaken {
			response.Conflict(w, "Section of this type already exists")
			return
		}
		response.InternalServerError(w, "Failed to create section")
		return
	}

	response.Success(w, http.StatusCreated, "Section created successfully", section)
}

func (h *SystemHandler) GetAllSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.systemUsecase.ListSections(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list sections")
		return
	}

	response.Success(w, http.StatusOK, "Sections retrieved successfully", sections)
}

func (h *SystemHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid section ID")
		return
	}

	var req dto.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	section, err := h.systemUsecase.UpdateSection(r.Context(), actor, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSectionNotFound:
			response.NotFound(w, "Section not found")
		case usecase.ErrSectionTypeTaken:
			response.Conflict(w, "Section of this type already exists")
		default:
			response.InternalServerError(w, "Failed to update section")
		}
		return
	}

	response.Success(w, http.StatusOK, "Section updated successfully", section)
}

func (h *SystemHandler) ToggleSectionActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid section ID")
		return
	}

	section, err := h.systemUsecase.ToggleSectionActive(r.Context(), actor, id)
	if err != nil {
		if err == usecase.ErrSectionNotFound {
			response.NotFound(w, "Section not found")
			return
		}
		response.InternalServerError(w, "Failed to toggle section")
		return
	}

	response.Success(w, http.StatusOK, "Section updated successfully", section)
}

func (h *SystemHandler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ReorderSectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	sections, err := h.systemUsecase.ReorderSections(r.Context(), actor, &req)
	if err != nil {
		if err == usecase.ErrSectionNotFound {
			response.NotFound(w, "Section not found")
			return
		}
		response.InternalServerError(w, "Failed to reorder sections")
		return
	}

	response.Success(w, http.StatusOK, "Sections reordered successfully", sections)
}

func (h *SystemHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid section ID")
		return
	}

	if err := h.systemUsecase.DeleteSection(r.Context(), actor, id); err != nil {
		if err == usecase.ErrSectionNotFound {
			response.NotFound(w, "Section not found")
			return
		}
		response.InternalServerError(w, "Failed to delete section")
		return
	}

	response.Success(w, http.StatusOK, "Section deleted successfully", nil)
}

// Settings

func (h *SystemHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.systemUsecase.CreateSetting(r.Context(), actor, &req)
	if err != nil {
		if err == usecase.ErrSettingKeyTaken {
			response.Conflict(w, "Setting key already exists")
			return
		}
		response.InternalServerError(w, "Failed to create setting")
		return
	}

	response.Success(w, http.StatusCreated, "Setting created successfully", setting)
}

func (h *SystemHandler) GetAllSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.systemUsecase.ListSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

func (h *SystemHandler) GetSettingByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		response.BadRequest(w, "Invalid setting key")
		return
	}

	setting, err := h.systemUsecase.GetSettingByKey(r.Context(), key)
	if err != nil {
		if err == usecase.ErrSettingNotFound {
			response.NotFound(w, "Setting not found")
			return
		}
		response.InternalServerError(w, "Failed to get setting")
		return
	}

	response.Success(w, http.StatusOK, "Setting retrieved successfully", setting)
}

func (h *SystemHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid setting ID")
		return
	}

	var req dto.SettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setting, err := h.systemUsecase.UpdateSetting(r.Context(), actor, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSettingNotFound:
			response.NotFound(w, "Setting not found")
		case usecase.ErrSettingKeyTaken:
			response.Conflict(w, "Setting key already exists")
		default:
			response.InternalServerError(w, "Failed to update setting")
		}
		return
	}

	response.Success(w, http.StatusOK, "Setting updated successfully", setting)
}

func (h *SystemHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid setting ID")
		return
	}

	if err := h.systemUsecase.DeleteSetting(r.Context(), actor, id); err != nil {
		if err == usecase.ErrSettingNotFound {
			response.NotFound(w, "Setting not found")
			return
		}
		response.InternalServerError(w, "Failed to delete setting")
		return
	}

	response.Success(w, http.StatusOK, "Setting deleted successfully", nil)
}

// Audit logs

func (h *SystemHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	filter := &entity.AuditLogFilter{
		Action: r.URL.Query().Get("action"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	logs, err := h.systemUsecase.ListAuditLogs(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

func (h *SystemHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	log, err := h.systemUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		response.NotFound(w, "Audit log not found")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", log)
}
