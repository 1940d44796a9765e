package entity

import "time"

// AvailableSlots is the fixed set of bookable time ranges. Operators pick one
// by 1-based index at registration.
var AvailableSlots = []string{
	"08:00-12:00",
	"12:00-16:00",
	"16:00-20:00",
	"20:00-00:00",
}

// Role rotations keyed by the experience flag. A doctor's role is derived
// solely from the flag and the generated identifier.
var (
	ExperiencedRoles = []string{"Cardiologist", "Neurosurgeon", "Traumatologist"}
	JuniorRoles      = []string{"General Practitioner", "Medical Assistant", "Resident"}
)

// Doctor represents a registered doctor. Role stays NULL until the assignment
// rules run after a successful registration.
type Doctor struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialty     string    `gorm:"type:varchar(100);not null" json:"specialty"`
	Phone         string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	HasExperience bool      `gorm:"not null" json:"has_experience"`
	Role          *string   `gorm:"type:varchar(100)" json:"role,omitempty"`
	AvailableSlot string    `gorm:"type:varchar(11);not null" json:"available_slot"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// RoleFor derives the role for a doctor from the experience flag and its
// store-assigned identifier: rotation[id mod 3].
func RoleFor(hasExperience bool, id int64) string {
	if hasExperience {
		return ExperiencedRoles[id%int64(len(ExperiencedRoles))]
	}
	return JuniorRoles[id%int64(len(JuniorRoles))]
}
