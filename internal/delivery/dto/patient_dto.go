package dto

type RegisterPatientRequest struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0"`
	Gender string `json:"gender" validate:"required,oneof=F M"`
	Phone  string `json:"phone" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

type PatientResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Priority       string `json:"priority"`
	AssignedDoctor string `json:"assigned_doctor"`
}
