package usecase

import (
	"context"

	"hospital-turn-system/internal/converter"
	"hospital-turn-system/internal/delivery/dto"
	"hospital-turn-system/internal/domain/entity"
	"hospital-turn-system/internal/domain/repository"
	"hospital-turn-system/internal/service"
	"hospital-turn-system/pkg/apperr"
	"hospital-turn-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TurnMirror is the handoff point to the appointment log writer.
type TurnMirror interface {
	Enqueue(ctx context.Context, appointmentID int64) error
}

// AppointmentUsecase drives a booking end to end: concurrent read-only
// reports, reference pre-validation, the insert, and the propagation fan-out.
type AppointmentUsecase interface {
	// GatherBookingContext loads the appointment and doctor reports shown
	// before the operator picks a doctor. The two queries run concurrently;
	// no ordering holds between them.
	GatherBookingContext(ctx context.Context) (*dto.BookingContext, error)
	// ListUnassignedPatients is the report shown while the operator finishes
	// the remaining prompts.
	ListUnassignedPatients(ctx context.Context) ([]dto.PatientResponse, error)
	ListAppointments(ctx context.Context) ([]entity.AppointmentDetail, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	turnMirror      TurnMirror
	audit           service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	turnMirror TurnMirror,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		validator:       customValidator,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		turnMirror:      turnMirror,
		audit:           audit,
	}
}

func (u *appointmentUsecase) GatherBookingContext(ctx context.Context) (*dto.BookingContext, error) {
	var (
		appointments []entity.AppointmentDetail
		doctors      []entity.Doctor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appointments, err = u.appointmentRepo.FindAllDetails(u.db.WithContext(gctx))
		return err
	})
	g.Go(func() error {
		var err error
		doctors, err = u.doctorRepo.FindAll(u.db.WithContext(gctx))
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load booking reports: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to load booking reports", err)
	}

	return &dto.BookingContext{
		Appointments: appointments,
		Doctors:      converter.DoctorsToResponses(doctors),
	}, nil
}

func (u *appointmentUsecase) ListUnassignedPatients(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindUnassigned(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list unassigned patients: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to list unassigned patients", err)
	}
	return converter.PatientsToResponses(patients), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context) ([]entity.AppointmentDetail, error) {
	details, err := u.appointmentRepo.FindAllDetails(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to list appointments", err)
	}
	return details, nil
}

// CreateAppointment books a turn.
//
// Flow:
// 1. Validate the request and pre-validate both references concurrently;
//    the store's foreign keys stay on as a backstop.
// 2. Insert the appointment with status "pending". The single insert is
//    atomic, a failure leaves no partial state.
// 3. Propagate concurrently: hand the committed id to the turn log writer
//    and store the doctor on the patient row. Both complete before the
//    booking returns; no ordering holds between them.
//
// A turn log failure never unwinds the booking: the row is already durable
// and the mirror is a non-critical side effect.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, validationError(u.validator, err)
	}

	opID := uuid.NewString()
	log := u.log.WithFields(logrus.Fields{
		"operation_id": opID,
		"doctor_id":    req.DoctorID,
		"patient_id":   req.PatientID,
	})

	var (
		doctor  *entity.Doctor
		patient *entity.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctor, err = u.doctorRepo.FindByID(u.db.WithContext(gctx), req.DoctorID)
		return err
	})
	g.Go(func() error {
		var err error
		patient, err = u.patientRepo.FindByID(u.db.WithContext(gctx), req.PatientID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warnf("Failed to resolve booking references: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to resolve booking references", err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment := &entity.Appointment{
		Date:      req.Date,
		Time:      req.Time,
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Status:    entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isForeignKeyError(err, "") {
			return nil, apperr.Wrap(apperr.Validation, "doctor or patient no longer exists", err)
		}
		log.Warnf("Failed to insert appointment: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to insert appointment", err)
	}
	log.Infof("Appointment %d committed", appointment.ID)

	pg, pctx := errgroup.WithContext(ctx)
	pg.Go(func() error {
		rows, err := u.patientRepo.AssignDoctor(u.db.WithContext(pctx), req.PatientID, req.DoctorID)
		if err != nil {
			return apperr.Wrap(apperr.Persistence, "appointment committed but doctor assignment failed", err)
		}
		if rows == 0 {
			return ErrPatientNotFound
		}
		return nil
	})
	pg.Go(func() error {
		if err := u.turnMirror.Enqueue(pctx, appointment.ID); err != nil {
			// Non-critical: the appointment stands regardless of the mirror.
			log.Warnf("Turn log handoff failed: %+v", err)
		}
		return nil
	})
	if err := pg.Wait(); err != nil {
		log.Warnf("Booking propagation failed: %+v", err)
		return nil, err
	}

	u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionTurnCreate, entity.JSON{
		"operation_id":   opID,
		"appointment_id": appointment.ID,
		"doctor_id":      req.DoctorID,
		"patient_id":     req.PatientID,
	})

	return converter.AppointmentToResponse(appointment, doctor, patient), nil
}
