package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// ReviewToResponse converts a DoctorReview entity to ReviewResponse DTO
func ReviewToResponse(review *entity.DoctorReview) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	response := &dto.ReviewResponse{
		ID:             review.ID,
		DoctorID:       review.DoctorID,
		Doctor:         review.Doctor.User.FullName,
		PatientID:      review.PatientID,
		Patient:        review.Patient.FullName(),
		AppointmentID:  review.AppointmentID,
		Rating:         review.Rating,
		WaitTimeRating: review.WaitTimeRating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt,
	}

	if review.WouldRecommend != nil {
		response.WouldRecommend = *review.WouldRecommend
	}
	if review.IsApproved != nil {
		response.IsApproved = *review.IsApproved
	}

	return response
}

// ReviewsToResponses converts a slice of reviews
func ReviewsToResponses(reviews []entity.DoctorReview) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *ReviewToResponse(&reviews[i]))
	}
	return responses
}
