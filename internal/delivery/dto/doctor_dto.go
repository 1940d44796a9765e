package dto

type RegisterDoctorRequest struct {
	Name          string `json:"name" validate:"required"`
	Specialty     string `json:"specialty" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	HasExperience bool   `json:"has_experience"`
	// SlotIndex is the 1-based pick from entity.AvailableSlots.
	SlotIndex int `json:"slot_index" validate:"required,gte=1,lte=4"`
}

type DoctorResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	HasExperience bool   `json:"has_experience"`
	Role          string `json:"role,omitempty"`
	AvailableSlot string `json:"available_slot"`
}
