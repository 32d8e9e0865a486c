package entity

import "time"

// Setting data types
const (
	SettingTypeString  = "string"
	SettingTypeInteger = "integer"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// SystemSetting is a keyed configuration value editable from the console
type SystemSetting struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Key         string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	DataType    string    `gorm:"type:varchar(20);not null;default:'string'" json:"data_type"`
	IsPublic    *bool     `gorm:"not null;default:false" json:"is_public"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}
