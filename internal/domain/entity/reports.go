package entity

// AppointmentDetail is the joined view of an appointment used by the listing
// report and the turn log writer.
type AppointmentDetail struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DoctorName      string `json:"doctor_name"`
	DoctorSpecialty string `json:"doctor_specialty"`
	PatientName     string `json:"patient_name"`
	PatientAge      int    `json:"patient_age"`
	Status          string `json:"status"`
}

// PatientOverview is a patient listing row with the assigned doctor resolved
// to a display name.
type PatientOverview struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Age                int    `json:"age"`
	Gender             string `json:"gender"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Priority           string `json:"priority"`
	AssignedDoctorName string `json:"assigned_doctor_name"`
}
