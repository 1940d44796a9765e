package converter

import (
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	priority := entity.PriorityPending
	if patient.Priority != nil {
		priority = *patient.Priority
	}
	return &dto.PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Priority:       priority,
		AssignedDoctor: patient.AssignedDoctor,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
