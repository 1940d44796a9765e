package entity

import "time"

const (
	PriorityPending = "Pending"
	PriorityHigh    = "High"
	PriorityLow     = "Low"

	// UnassignedDoctor is the assigned_doctor marker for patients without a
	// booked appointment. Once booked the column holds the doctor id as text.
	UnassignedDoctor = "unassigned"
)

// PriorityAgeThreshold is strict: a patient aged exactly 60 is Low.
const PriorityAgeThreshold = 60

// Patient represents a registered patient. Priority starts as "Pending" and is
// rewritten by the assignment rules once registration succeeds.
type Patient struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Age            int       `gorm:"not null" json:"age"`
	Gender         string    `gorm:"type:char(1);not null;check:gender IN ('F','M')" json:"gender"`
	Phone          string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email          string    `gorm:"type:varchar(255);not null" json:"email"`
	Priority       *string   `gorm:"type:varchar(20)" json:"priority,omitempty"`
	AssignedDoctor string    `gorm:"type:varchar(100);not null;default:'unassigned'" json:"assigned_doctor"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PriorityFor derives a patient's urgency label from age.
func PriorityFor(age int) string {
	if age > PriorityAgeThreshold {
		return PriorityHigh
	}
	return PriorityLow
}

// IsUnassigned reports whether the patient has no doctor yet.
func (p *Patient) IsUnassigned() bool {
	return p.AssignedDoctor == "" || p.AssignedDoctor == UnassignedDoctor
}
