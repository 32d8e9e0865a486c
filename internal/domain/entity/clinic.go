package entity

import "time"

// Clinic is a medical center doctors are affiliated with
type Clinic struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email        string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	WorkingHours JSON      `gorm:"type:jsonb" json:"working_hours,omitempty"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Departments []Department   `gorm:"foreignKey:ClinicID" json:"departments,omitempty"`
	Doctors     []DoctorClinic `gorm:"foreignKey:ClinicID" json:"doctors,omitempty"`
}

func (Clinic) TableName() string {
	return "clinics"
}

// Department is a unit inside a clinic, optionally led by a doctor
type Department struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	ClinicID     int       `gorm:"not null;index" json:"clinic_id"`
	Name         string    `gorm:"type:varchar(200);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	HeadDoctorID *int      `gorm:"index" json:"head_doctor_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Clinic     Clinic  `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	HeadDoctor *Doctor `gorm:"foreignKey:HeadDoctorID" json:"head_doctor,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

// DoctorClinic links a doctor to a clinic, optionally to a department.
// Unique per (doctor, clinic).
type DoctorClinic struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;uniqueIndex:idx_doctor_clinic" json:"doctor_id"`
	ClinicID     int       `gorm:"not null;uniqueIndex:idx_doctor_clinic" json:"clinic_id"`
	DepartmentID *int      `gorm:"index" json:"department_id,omitempty"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor     Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Clinic     Clinic      `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (DoctorClinic) TableName() string {
	return "doctor_clinics"
}
