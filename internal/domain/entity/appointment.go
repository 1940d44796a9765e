package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending AppointmentStatus = "pending"
)

// Appointment binds one doctor to one patient at a date and time. Rows are
// created once, never updated or deleted, and mirrored once into the turn log.
type Appointment struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string            `gorm:"type:varchar(10);not null" json:"date"`
	Time      string            `gorm:"type:varchar(5);not null" json:"time"`
	DoctorID  int64             `gorm:"not null;index" json:"doctor_id"`
	PatientID int64             `gorm:"not null;index" json:"patient_id"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}
