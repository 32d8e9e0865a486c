package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:             p.ID,
		PatientID:      p.PatientID,
		Patient:        p.Patient.FullName(),
		DoctorID:       p.DoctorID,
		Doctor:         p.Doctor.User.FullName,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		Duration:       p.Duration,
		Instructions:   p.Instructions,
		CreatedAt:      p.CreatedAt,
	}

	if p.IsActive != nil {
		response.IsActive = *p.IsActive
	}

	return response
}

// PrescriptionsToResponses converts a slice of prescriptions
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		responses = append(responses, *PrescriptionToResponse(&prescriptions[i]))
	}
	return responses
}

// MedicalRecordToResponse converts a MedicalRecord entity
func MedicalRecordToResponse(r *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if r == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:        r.ID,
		PatientID: r.PatientID,
		DoctorID:  r.DoctorID,
		Diagnosis: r.Diagnosis,
		Treatment: r.Treatment,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}

	if r.Doctor != nil {
		response.Doctor = r.Doctor.User.FullName
	}

	return response
}

// MedicalRecordsToResponses converts a slice of medical records
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *MedicalRecordToResponse(&records[i]))
	}
	return responses
}
