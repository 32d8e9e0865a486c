package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// SpecializationToResponse converts a Specialization entity
func SpecializationToResponse(s *entity.Specialization) *dto.SpecializationResponse {
	if s == nil {
		return nil
	}
	return &dto.SpecializationResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Icon:        s.Icon,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SpecializationsToResponses converts a slice of specializations
func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, 0, len(specializations))
	for i := range specializations {
		responses = append(responses, *SpecializationToResponse(&specializations[i]))
	}
	return responses
}

// ServiceToResponse converts a Service entity
func ServiceToResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}

	response := &dto.ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if s.Specialization != nil {
		response.Specialization = s.Specialization.Name
	}
	if s.IsActive != nil {
		response.IsActive = *s.IsActive
	}

	return response
}

// ServicesToResponses converts a slice of services
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		responses = append(responses, *ServiceToResponse(&services[i]))
	}
	return responses
}

// ClinicToResponse converts a Clinic entity
func ClinicToResponse(c *entity.Clinic) *dto.ClinicResponse {
	if c == nil {
		return nil
	}

	response := &dto.ClinicResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		WorkingHours: c.WorkingHours,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.IsActive != nil {
		response.IsActive = *c.IsActive
	}
	for i := range c.Departments {
		response.Departments = append(response.Departments, *DepartmentToResponse(&c.Departments[i]))
	}

	return response
}

// ClinicsToResponses converts a slice of clinics
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, 0, len(clinics))
	for i := range clinics {
		responses = append(responses, *ClinicToResponse(&clinics[i]))
	}
	return responses
}

// DepartmentToResponse converts a Department entity
func DepartmentToResponse(d *entity.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:           d.ID,
		ClinicID:     d.ClinicID,
		Name:         d.Name,
		Description:  d.Description,
		HeadDoctorID: d.HeadDoctorID,
		CreatedAt:    d.CreatedAt,
	}
}

// AffiliationToResponse converts a DoctorClinic entity
func AffiliationToResponse(a *entity.DoctorClinic) *dto.AffiliationResponse {
	if a == nil {
		return nil
	}

	response := &dto.AffiliationResponse{
		ID:       a.ID,
		DoctorID: a.DoctorID,
		ClinicID: a.ClinicID,
		Clinic:   a.Clinic.Name,
	}

	if a.Department != nil {
		response.Department = a.Department.Name
	}
	if a.IsActive != nil {
		response.IsActive = *a.IsActive
	}

	return response
}

// AffiliationsToResponses converts a slice of affiliations
func AffiliationsToResponses(affiliations []entity.DoctorClinic) []dto.AffiliationResponse {
	responses := make([]dto.AffiliationResponse, 0, len(affiliations))
	for i := range affiliations {
		responses = append(responses, *AffiliationToResponse(&affiliations[i]))
	}
	return responses
}
