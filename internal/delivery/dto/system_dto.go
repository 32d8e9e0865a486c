package dto

import "time"

// Landing-page sections

type SectionRequest struct {
	SectionType  string                 `json:"section_type" validate:"required,oneof=hero features services about testimonials contact"`
	Title        string                 `json:"title" validate:"omitempty,max=255"`
	Subtitle     string                 `json:"subtitle" validate:"omitempty,max=500"`
	Description  string                 `json:"description" validate:"omitempty"`
	Content      map[string]interface{} `json:"content" validate:"omitempty"`
	IsActive     *bool                  `json:"is_active"`
	DisplayOrder int                    `json:"display_order" validate:"omitempty,gte=0"`
}

type SectionOrderItem struct {
	ID           int `json:"id" validate:"required,gt=0"`
	DisplayOrder int `json:"display_order" validate:"gte=0"`
}

type ReorderSectionsRequest struct {
	Sections []SectionOrderItem `json:"sections" validate:"required,min=1,dive"`
}

type SectionResponse struct {
	ID           int                    `json:"id"`
	SectionType  string                 `json:"section_type"`
	Title        string                 `json:"title,omitempty"`
	Subtitle     string                 `json:"subtitle,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Content      map[string]interface{} `json:"content,omitempty"`
	IsActive     bool                   `json:"is_active"`
	DisplayOrder int                    `json:"display_order"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// System settings

type SettingRequest struct {
	Key         string `json:"key" validate:"required,max=255"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	DataType    string `json:"data_type" validate:"omitempty,oneof=string integer boolean json"`
	IsPublic    *bool  `json:"is_public"`
}

type SettingResponse struct {
	ID          int       `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description,omitempty"`
	DataType    string    `json:"data_type"`
	IsPublic    bool      `json:"is_public"`
	UpdatedAt   time.Time `json:"updated_at"`
}
