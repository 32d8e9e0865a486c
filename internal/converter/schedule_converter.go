package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// ScheduleToResponse converts a Schedule entity to ScheduleResponse DTO
func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:        schedule.ID,
		DoctorID:  schedule.DoctorID,
		Doctor:    schedule.Doctor.User.FullName,
		DayOfWeek: schedule.DayOfWeek,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		CreatedAt: schedule.CreatedAt,
		UpdatedAt: schedule.UpdatedAt,
	}

	if schedule.IsWorking != nil {
		response.IsWorking = *schedule.IsWorking
	}

	return response
}

// SchedulesToResponses converts a slice of schedules
func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *ScheduleToResponse(&schedules[i]))
	}
	return responses
}

// TimeSlotToResponse converts a TimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot *entity.TimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.TimeSlotResponse{
		ID:        slot.ID,
		DoctorID:  slot.DoctorID,
		Date:      slot.Date.Format("2006-01-02"),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}

	if slot.IsAvailable != nil {
		response.IsAvailable = *slot.IsAvailable
	}

	return response
}

// TimeSlotsToResponses converts a slice of time slots
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, 0, len(slots))
	for i := range slots {
		responses = append(responses, *TimeSlotToResponse(&slots[i]))
	}
	return responses
}
