package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

// DirectoryHandler serves the reference catalog: specializations,
// services, clinics, departments and doctor affiliations.
type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// Specializations

func (h *DirectoryHandler) CreateSpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.directoryUsecase.CreateSpecialization(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrSpecializationTaken {
			response.Conflict(w, "Specialization name already exists")
			return
		}
		response.InternalServerError(w, "Failed to create specialization")
		return
	}

	response.Success(w, http.StatusCreated, "Specialization created successfully", specialization)
}

func (h *DirectoryHandler) GetAllSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.directoryUsecase.ListSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

func (h *DirectoryHandler) UpdateSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid specialization ID")
		return
	}

	var req dto.SpecializationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialization, err := h.directoryUsecase.UpdateSpecialization(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrSpecializationTaken:
			response.Conflict(w, "Specialization name already exists")
		default:
			response.InternalServerError(w, "Failed to update specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization updated successfully", specialization)
}

func (h *DirectoryHandler) DeleteSpecialization(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid specialization ID")
		return
	}

	if err := h.directoryUsecase.DeleteSpecialization(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrSpecializationNotFound:
			response.NotFound(w, "Specialization not found")
		case usecase.ErrSpecializationInUse:
			response.Conflict(w, "Specialization is still referenced by doctors or services")
		default:
			response.InternalServerError(w, "Failed to delete specialization")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialization deleted successfully", nil)
}

// Services

func (h *DirectoryHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.directoryUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceTaken:
			response.Conflict(w, "Service name already exists")
		case usecase.ErrSpecializationInvalid:
			response.BadRequest(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

func (h *DirectoryHandler) GetAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.directoryUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *DirectoryHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	var req dto.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.directoryUsecase.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrServiceTaken:
			response.Conflict(w, "Service name already exists")
		case usecase.ErrSpecializationInvalid:
			response.BadRequest(w, "Specialization not found")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *DirectoryHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	if err := h.directoryUsecase.DeleteService(r.Context(), id); err != nil {
		if err == usecase.ErrServiceNotFound {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to delete service")
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

// Clinics

func (h *DirectoryHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.ClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.directoryUsecase.CreateClinic(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create clinic")
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *DirectoryHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	clinic, err := h.directoryUsecase.GetClinic(r.Context(), id)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *DirectoryHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.directoryUsecase.ListClinics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *DirectoryHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	var req dto.ClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.directoryUsecase.UpdateClinic(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to update clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *DirectoryHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	if err := h.directoryUsecase.DeleteClinic(r.Context(), id); err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to delete clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}

// Departments

func (h *DirectoryHandler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	department, err := h.directoryUsecase.CreateDepartment(r.Context(), clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Head doctor not found")
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", department)
}

func (h *DirectoryHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid clinic ID")
		return
	}

	departments, err := h.directoryUsecase.ListDepartments(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Failed to list departments")
		return
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", departments)
}

// Affiliations

func (h *DirectoryHandler) CreateAffiliation(w http.ResponseWriter, r *http.Request) {
	var req dto.AffiliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affiliation, err := h.directoryUsecase.CreateAffiliation(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Doctor not found")
		case usecase.ErrClinicNotFound:
			response.BadRequest(w, "Clinic not found")
		case usecase.ErrAffiliationExists:
			response.Conflict(w, "Doctor is already affiliated with this clinic")
		default:
			response.InternalServerError(w, "Failed to create affiliation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Affiliation created successfully", affiliation)
}

func (h *DirectoryHandler) GetDoctorAffiliations(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	affiliations, err := h.directoryUsecase.ListAffiliationsByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list affiliations")
		return
	}

	response.Success(w, http.StatusOK, "Affiliations retrieved successfully", affiliations)
}
