package repository

import (
	"hospital-turn-system/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	// UpdateRole writes the derived role. Returns affected rows so callers can
	// tell a vanished doctor apart from a store failure.
	UpdateRole(db *gorm.DB, id int64, role string) (int64, error)
}
