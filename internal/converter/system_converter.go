package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
)

// SectionToResponse converts a Section entity
func SectionToResponse(s *entity.Section) *dto.SectionResponse {
	if s == nil {
		return nil
	}

	response := &dto.SectionResponse{
		ID:           s.ID,
		SectionType:  s.SectionType,
		Title:        s.Title,
		Subtitle:     s.Subtitle,
		Description:  s.Description,
		Content:      s.Content,
		DisplayOrder: s.DisplayOrder,
		UpdatedAt:    s.UpdatedAt,
	}

	if s.IsActive != nil {
		response.IsActive = *s.IsActive
	}

	return response
}

// SectionsToResponses converts a slice of sections
func SectionsToResponses(sections []entity.Section) []dto.SectionResponse {
	responses := make([]dto.SectionResponse, 0, len(sections))
	for i := range sections {
		responses = append(responses, *SectionToResponse(&sections[i]))
	}
	return responses
}

// SettingToResponse converts a SystemSetting entity
func SettingToResponse(s *entity.SystemSetting) *dto.SettingResponse {
	if s == nil {
		return nil
	}

	response := &dto.SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		DataType:    s.DataType,
		UpdatedAt:   s.UpdatedAt,
	}

	if s.IsPublic != nil {
		response.IsPublic = *s.IsPublic
	}

	return response
}

// SettingsToResponses converts a slice of settings
func SettingsToResponses(settings []entity.SystemSetting) []dto.SettingResponse {
	responses := make([]dto.SettingResponse, 0, len(settings))
	for i := range settings {
		responses = append(responses, *SettingToResponse(&settings[i]))
	}
	return responses
}
