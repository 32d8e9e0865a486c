package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		Doctor:          appointment.Doctor.User.FullName,
		PatientID:       appointment.PatientID,
		Patient:         appointment.Patient.FullName(),
		Date:            appointment.Date.Format("2006-01-02"),
		Time:            appointment.Time,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		Notes:           appointment.Notes,
		Symptoms:        appointment.Symptoms,
		DurationMinutes: appointment.DurationMinutes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Service != nil {
		response.Service = appointment.Service.Name
	}
	if appointment.IsUrgent != nil {
		response.IsUrgent = *appointment.IsUrgent
	}

	return response
}

// AppointmentsToListResponse converts a slice of appointments
func AppointmentsToListResponse(appointments []entity.Appointment) *dto.AppointmentListResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return &dto.AppointmentListResponse{Appointments: responses, Total: len(responses)}
}
