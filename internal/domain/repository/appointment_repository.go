package repository

import (
	"hospital-turn-system/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	// FindDetailByID returns the appointment joined with doctor and patient,
	// or (nil, nil) when the id resolves to no row.
	FindDetailByID(db *gorm.DB, id int64) (*entity.AppointmentDetail, error)
	FindAllDetails(db *gorm.DB) ([]entity.AppointmentDetail, error)
}
