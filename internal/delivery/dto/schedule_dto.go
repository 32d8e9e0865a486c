package dto

import "time"

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID  int    `json:"doctor_id" validate:"required,min=1"`
	DayOfWeek int    `json:"day_of_week" validate:"required,min=1,max=7"`
	StartTime string `json:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" validate:"required,hhmm"`
	IsWorking *bool  `json:"is_working"`
}

type UpdateScheduleRequest struct {
	StartTime string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime   string `json:"end_time" validate:"omitempty,hhmm"`
	IsWorking *bool  `json:"is_working"`
}

// Response DTOs

type ScheduleResponse struct {
	ID        int       `json:"id"`
	DoctorID  int       `json:"doctor_id"`
	Doctor    string    `json:"doctor,omitempty"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	IsWorking bool      `json:"is_working"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GenerateSlotsRequest materializes bookable slots from the weekly schedule.
type GenerateSlotsRequest struct {
	DoctorID int    `json:"doctor_id" validate:"required,min=1"`
	DateFrom string `json:"date_from" validate:"required,dateymd"`
	DateTo   string `json:"date_to" validate:"required,dateymd"`
}

type TimeSlotResponse struct {
	ID          int    `json:"id"`
	DoctorID    int    `json:"doctor_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type GenerateSlotsResponse struct {
	Created int                `json:"created"`
	Skipped int                `json:"skipped"`
	Slots   []TimeSlotResponse `json:"slots"`
}
