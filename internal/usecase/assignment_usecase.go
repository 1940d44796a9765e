package usecase

import (
	"context"
	"time"

	"hospital-turn-system/internal/domain/entity"
	"hospital-turn-system/internal/domain/repository"
	"hospital-turn-system/internal/service"
	"hospital-turn-system/pkg/apperr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = apperr.New(apperr.NotFound, "doctor not found")
	ErrPatientNotFound     = apperr.New(apperr.NotFound, "patient not found")
	ErrAssignmentTimedOut  = apperr.New(apperr.Timeout, "timed out waiting for patient registration")
	ErrRegistrationAborted = apperr.New(apperr.Persistence, "patient registration aborted before an outcome arrived")
)

// AssignmentUsecase derives and stores the post-registration classifications:
// a doctor's role and a patient's priority.
type AssignmentUsecase interface {
	AssignDoctorRole(ctx context.Context, doctorID int64) (string, error)
	AssignPatientPriority(ctx context.Context, patientID int64) (string, error)
	// AwaitPatientPriority blocks until the registration outcome arrives, then
	// assigns the priority. The wait is bounded by timeout; expiry surfaces as
	// ErrAssignmentTimedOut and ctx cancellation as ctx.Err(), so the worker
	// can always terminate.
	AwaitPatientPriority(ctx context.Context, outcome <-chan PatientOutcome, timeout time.Duration) (string, error)
}

type assignmentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	audit       service.AuditService
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		audit:       audit,
	}
}

// AssignDoctorRole looks up the experience flag and writes back
// rotation[id mod 3]. A missing doctor is an error; store failures are
// reported and swallowed, the doctor simply keeps a NULL role.
func (u *assignmentUsecase) AssignDoctorRole(ctx context.Context, doctorID int64) (string, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to read doctor %d for role assignment: %+v", doctorID, err)
		return "", nil
	}
	if doctor == nil {
		return "", ErrDoctorNotFound
	}

	role := entity.RoleFor(doctor.HasExperience, doctor.ID)

	rows, err := u.doctorRepo.UpdateRole(u.db.WithContext(ctx), doctorID, role)
	if err != nil {
		u.log.Warnf("Failed to assign role to doctor %d: %+v", doctorID, err)
		return "", nil
	}
	if rows == 0 {
		return "", ErrDoctorNotFound
	}

	u.log.Infof("Role assigned: doctor=%d, role=%s", doctorID, role)
	u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionRoleAssign, entity.JSON{
		"doctor_id": doctorID,
		"role":      role,
	})

	return role, nil
}

func (u *assignmentUsecase) AssignPatientPriority(ctx context.Context, patientID int64) (string, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to read patient %d for priority assignment: %+v", patientID, err)
		return "", apperr.Wrap(apperr.Persistence, "failed to read patient", err)
	}
	if patient == nil {
		return "", ErrPatientNotFound
	}

	priority := entity.PriorityFor(patient.Age)

	rows, err := u.patientRepo.UpdatePriority(u.db.WithContext(ctx), patientID, priority)
	if err != nil {
		u.log.Warnf("Failed to assign priority to patient %d: %+v", patientID, err)
		return "", apperr.Wrap(apperr.Persistence, "failed to assign priority", err)
	}
	if rows == 0 {
		return "", ErrPatientNotFound
	}

	u.log.Infof("Priority assigned: patient=%d, priority=%s", patientID, priority)
	u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionPriorityAssign, entity.JSON{
		"patient_id": patientID,
		"priority":   priority,
	})

	return priority, nil
}

func (u *assignmentUsecase) AwaitPatientPriority(ctx context.Context, outcome <-chan PatientOutcome, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result, ok := <-outcome:
		if !ok {
			return "", ErrRegistrationAborted
		}
		if result.Err != nil {
			return "", result.Err
		}
		return u.AssignPatientPriority(ctx, result.Patient.ID)
	case <-timer.C:
		return "", ErrAssignmentTimedOut
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
