package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:              doctor.ID,
		FullName:        doctor.User.FullName,
		Email:           doctor.User.Email,
		Specialization:  doctor.Specialization.Name,
		LicenseNumber:   doctor.LicenseNumber,
		ExperienceYears: doctor.ExperienceYears,
		Education:       doctor.Education,
		Bio:             doctor.Bio,
		OfficeNumber:    doctor.OfficeNumber,
		ConsultationFee: doctor.ConsultationFee,
		Rating:          doctor.Rating,
		ReviewCount:     doctor.ReviewCount,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}

	if doctor.IsAvailable != nil {
		response.IsAvailable = *doctor.IsAvailable
	}
	if doctor.IsVerified != nil {
		response.IsVerified = *doctor.IsVerified
	}

	return response
}

// DoctorToPublicResponse strips account details not meant for anonymous readers
func DoctorToPublicResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	response := DoctorToResponse(doctor)
	if response == nil {
		return nil
	}
	response.Email = ""
	response.LicenseNumber = ""
	return response
}

// DoctorsToListResponse converts a page of doctors plus total count
func DoctorsToListResponse(doctors []entity.Doctor, total int64, public bool) *dto.DoctorListResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		if public {
			responses = append(responses, *DoctorToPublicResponse(&doctors[i]))
		} else {
			responses = append(responses, *DoctorToResponse(&doctors[i]))
		}
	}
	return &dto.DoctorListResponse{Doctors: responses, Total: total}
}
