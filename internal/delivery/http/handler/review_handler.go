package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.Create(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.BadRequest(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.BadRequest(w, "Patient not found")
		case usecase.ErrReviewAlreadyExists:
			response.Conflict(w, "Review for this appointment already exists")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review submitted successfully", review)
}

func (h *ReviewHandler) GetAllReviews(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	filter := &entity.ReviewFilter{
		DoctorID:   queryInt(r, "doctor_id"),
		PatientID:  queryInt(r, "patient_id"),
		IsApproved: queryBool(r, "is_approved"),
	}

	reviews, err := h.reviewUsecase.List(r.Context(), actor, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list reviews")
		return
	}

	response.Success(w, http.StatusOK, "Reviews retrieved successfully", reviews)
}

func (h *ReviewHandler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid review ID")
		return
	}

	review, err := h.reviewUsecase.Approve(r.Context(), actor, id)
	if err != nil {
		if err == usecase.ErrReviewNotFound {
			response.NotFound(w, "Review not found")
			return
		}
		response.InternalServerError(w, "Failed to approve review")
		return
	}

	response.Success(w, http.StatusOK, "Review approved successfully", review)
}

func (h *ReviewHandler) RejectReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid review ID")
		return
	}

	if err := h.reviewUsecase.Reject(r.Context(), actor, id); err != nil {
		if err == usecase.ErrReviewNotFound {
			response.NotFound(w, "Review not found")
			return
		}
		response.InternalServerError(w, "Failed to reject review")
		return
	}

	response.Success(w, http.StatusOK, "Review rejected successfully", nil)
}
