package handler

import (
	"net/http"

	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
)

// PublicHandler serves the anonymous surface: the doctor directory,
// open slots, approved reviews and landing-page content.
type PublicHandler struct {
	doctorUsecase    usecase.DoctorUsecase
	slotUsecase      usecase.TimeSlotUsecase
	reviewUsecase    usecase.ReviewUsecase
	directoryUsecase usecase.DirectoryUsecase
	systemUsecase    usecase.SystemUsecase
}

func NewPublicHandler(
	doctorUsecase usecase.DoctorUsecase,
	slotUsecase usecase.TimeSlotUsecase,
	reviewUsecase usecase.ReviewUsecase,
	directoryUsecase usecase.DirectoryUsecase,
	systemUsecase usecase.SystemUsecase,
) *PublicHandler {
	return &PublicHandler{
		doctorUsecase:    doctorUsecase,
		slotUsecase:      slotUsecase,
		reviewUsecase:    reviewUsecase,
		directoryUsecase: directoryUsecase,
		systemUsecase:    systemUsecase,
	}
}

// GetDoctors lists available, verified doctors.
func (h *PublicHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListPublic(r.Context(), doctorFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *PublicHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetPublicByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// GetDoctorSlots lists a doctor's open slots for one day.
func (h *PublicHandler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required")
		return
	}

	slots, err := h.slotUsecase.ListByDoctorAndDate(r.Context(), nil, doctorID, date)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.BadRequest(w, "Invalid date")
			return
		}
		response.InternalServerError(w, "Failed to list time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

// GetDoctorReviews lists a doctor's approved reviews.
func (h *PublicHandler) GetDoctorReviews(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	reviews, err := h.reviewUsecase.ListPublicByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *PublicHandler) GetSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.directoryUsecase.ListSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}

func (h *PublicHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.directoryUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *PublicHandler) GetClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.directoryUsecase.ListClinics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

// GetSections returns active landing-page sections.
func (h *PublicHandler) GetSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.systemUsecase.ListPublicSections(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list sections")
		return
	}

	response.Success(w, http.StatusOK, "Sections retrieved successfully", sections)
}

// GetSettings returns settings flagged as public.
func (h *PublicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.systemUsecase.ListPublicSettings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}
