package dto

import "hospital-turn-system/internal/domain/entity"

type CreateAppointmentRequest struct {
	DoctorID  int64  `json:"doctor_id" validate:"required,gt=0"`
	PatientID int64  `json:"patient_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DoctorID    int64  `json:"doctor_id"`
	DoctorName  string `json:"doctor_name"`
	PatientID   int64  `json:"patient_id"`
	PatientName string `json:"patient_name"`
	Status      string `json:"status"`
}

// BookingContext carries the read-only reports shown to the operator before
// the booking prompts.
type BookingContext struct {
	Appointments []entity.AppointmentDetail `json:"appointments"`
	Doctors      []DoctorResponse           `json:"doctors"`
}
