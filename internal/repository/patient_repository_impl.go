package repository

import (
	"errors"
	"strconv"

	"hospital-turn-system/internal/domain/entity"
	domainRepo "hospital-turn-system/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindUnassigned(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where("assigned_doctor = ?", entity.UnassignedDoctor).
		Order("id").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// FindOverviews resolves the assigned_doctor text column to a doctor name.
// The column holds 'unassigned' or a doctor id rendered as text, so the name
// lookup only runs for rows that hold an id.
func (r *patientRepository) FindOverviews(db *gorm.DB) ([]entity.PatientOverview, error) {
	var rows []entity.PatientOverview
	err := db.Raw(`
		SELECT p.id, p.name, p.age, p.gender, p.phone, p.email,
		       COALESCE(p.priority, ?) AS priority,
		       CASE
		           WHEN p.assigned_doctor = ? THEN ?
		           ELSE COALESCE(
		               (SELECT d.name FROM doctors d WHERE d.id = CAST(p.assigned_doctor AS BIGINT)),
		               ?)
		       END AS assigned_doctor_name
		FROM patients p
		ORDER BY p.id`,
		entity.PriorityPending,
		entity.UnassignedDoctor, entity.UnassignedDoctor, entity.UnassignedDoctor,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *patientRepository) UpdatePriority(db *gorm.DB, id int64, priority string) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("id = ?", id).
		Update("priority", priority)
	return result.RowsAffected, result.Error
}

func (r *patientRepository) AssignDoctor(db *gorm.DB, patientID, doctorID int64) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("id = ?", patientID).
		Update("assigned_doctor", strconv.FormatInt(doctorID, 10))
	return result.RowsAffected, result.Error
}
