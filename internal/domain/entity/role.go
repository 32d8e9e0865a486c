package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDClient  = 1
	RoleIDDoctor  = 2
	RoleIDManager = 3
)

// RoleNames constants
const (
	RoleClient  = "client"
	RoleDoctor  = "doctor"
	RoleManager = "manager"
)

// RoleNameByID maps a role ID to its name, empty string when unknown.
func RoleNameByID(roleID int) string {
	switch roleID {
	case RoleIDClient:
		return RoleClient
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDManager:
		return RoleManager
	}
	return ""
}
