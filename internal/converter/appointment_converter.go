package converter

import (
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment, doctor *entity.Doctor, patient *entity.Patient) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		Date:        appointment.Date,
		Time:        appointment.Time,
		DoctorID:    appointment.DoctorID,
		DoctorName:  doctor.Name,
		PatientID:   appointment.PatientID,
		PatientName: patient.Name,
		Status:      string(appointment.Status),
	}
}
