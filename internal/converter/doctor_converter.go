package converter

import (
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	role := ""
	if doctor.Role != nil {
		role = *doctor.Role
	}
	return &dto.DoctorResponse{
		ID:            doctor.ID,
		Name:          doctor.Name,
		Specialty:     doctor.Specialty,
		Phone:         doctor.Phone,
		Email:         doctor.Email,
		HasExperience: doctor.HasExperience,
		Role:          role,
		AvailableSlot: doctor.AvailableSlot,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}
