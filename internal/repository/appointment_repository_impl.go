package repository

import (
	"hospital-turn-system/internal/domain/entity"
	domainRepo "hospital-turn-system/internal/domain/repository"

	"gorm.io/gorm"
)

const appointmentDetailSelect = `
SELECT a.id, a.date, a.time,
       d.name AS doctor_name, d.specialty AS doctor_specialty,
       p.name AS patient_name, p.age AS patient_age,
       a.status
FROM appointments a
JOIN doctors d ON a.doctor_id = d.id
JOIN patients p ON a.patient_id = p.id`

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindDetailByID(db *gorm.DB, id int64) (*entity.AppointmentDetail, error) {
	var detail entity.AppointmentDetail
	result := db.Raw(appointmentDetailSelect+" WHERE a.id = ?", id).Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &detail, nil
}

func (r *appointmentRepository) FindAllDetails(db *gorm.DB) ([]entity.AppointmentDetail, error) {
	var details []entity.AppointmentDetail
	err := db.Raw(appointmentDetailSelect + " ORDER BY a.id").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
