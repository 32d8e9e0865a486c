package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

// MedicalHandler serves prescriptions and medical records.
type MedicalHandler struct {
	medicalUsecase usecase.MedicalUsecase
	validator      *validator.CustomValidator
}

func NewMedicalHandler(medicalUsecase usecase.MedicalUsecase, validator *validator.CustomValidator) *MedicalHandler {
	return &MedicalHandler{
		medicalUsecase: medicalUsecase,
		validator:      validator,
	}
}

func (h *MedicalHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.medicalUsecase.CreatePrescription(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *MedicalHandler) GetPrescription(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	prescription, err := h.medicalUsecase.GetPrescription(r.Context(), actor, id)
	if err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *MedicalHandler) GetAllPrescriptions(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	prescriptions, err := h.medicalUsecase.ListPrescriptions(r.Context(), actor)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *MedicalHandler) DeactivatePrescription(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid prescription ID")
		return
	}

	if err := h.medicalUsecase.DeactivatePrescription(r.Context(), actor, id); err != nil {
		if err == usecase.ErrPrescriptionNotFound {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deactivated successfully", nil)
}

func (h *MedicalHandler) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.medicalUsecase.CreateMedicalRecord(r.Context(), actor, &req)
	if err != nil {
		if err == usecase.ErrPatientNotFound {
			response.BadRequest(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalHandler) GetPatientMedicalRecords(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	records, err := h.medicalUsecase.ListMedicalRecords(r.Context(), actor, patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
