package repository

import (
	"hospital-turn-system/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindUnassigned(db *gorm.DB) ([]entity.Patient, error)
	FindOverviews(db *gorm.DB) ([]entity.PatientOverview, error)
	UpdatePriority(db *gorm.DB, id int64, priority string) (int64, error)
	// AssignDoctor stores the doctor id in the patient's assigned_doctor column.
	AssignDoctor(db *gorm.DB, patientID, doctorID int64) (int64, error)
}
