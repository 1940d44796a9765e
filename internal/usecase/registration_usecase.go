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

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken    = apperr.New(apperr.Conflict, "username already in use")
	ErrPasswordMismatch = apperr.New(apperr.Validation, "passwords do not match")
	ErrInvalidSlot      = apperr.New(apperr.Validation, "selected time slot is out of range")
)

// UserOutcome hands a user registration result from the worker that performed
// the insert to the confirmation step that depends on it.
type UserOutcome struct {
	User *dto.UserResponse
	Err  error
}

// PatientOutcome hands a patient registration result to the
// priority-assignment worker.
type PatientOutcome struct {
	Patient *dto.PatientResponse
	Err     error
}

type RegistrationUsecase interface {
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	// RegisterUserAsync runs RegisterUser in its own worker and returns a
	// single-use channel carrying the outcome for the confirmation step.
	RegisterUserAsync(ctx context.Context, req *dto.RegisterUserRequest) <-chan UserOutcome

	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)

	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	// RegisterPatientAsync runs RegisterPatient in its own worker and returns
	// a single-use channel consumed by the priority-assignment wait.
	RegisterPatientAsync(ctx context.Context, req *dto.RegisterPatientRequest) <-chan PatientOutcome

	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	ListPatientOverviews(ctx context.Context) ([]entity.PatientOverview, error)
}

type registrationUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	validator   *validator.CustomValidator
	userRepo    repository.UserRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
	audit       service.AuditService
}

func NewRegistrationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
) RegistrationUsecase {
	return &registrationUsecase{
		db:          db,
		log:         log,
		validator:   customValidator,
		userRepo:    userRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
		audit:       audit,
	}
}

// RegisterUser inserts a staff account. Username uniqueness is enforced by
// the store's unique index; the resulting constraint violation is the sole
// source of truth for duplicates, there is no read-then-write check.
func (u *registrationUsecase) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, validationError(u.validator, err)
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to hash password", err)
	}

	user := &entity.User{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		Password: string(hashedPassword),
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to register user", err)
	}

	u.audit.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"username": user.Username,
	})

	return converter.UserToResponse(user), nil
}

func (u *registrationUsecase) RegisterUserAsync(ctx context.Context, req *dto.RegisterUserRequest) <-chan UserOutcome {
	outcome := make(chan UserOutcome, 1)
	go func() {
		defer close(outcome)
		user, err := u.RegisterUser(ctx, req)
		outcome <- UserOutcome{User: user, Err: err}
	}()
	return outcome
}

func (u *registrationUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, validationError(u.validator, err)
	}
	if req.SlotIndex < 1 || req.SlotIndex > len(entity.AvailableSlots) {
		return nil, ErrInvalidSlot
	}

	doctor := &entity.Doctor{
		Name:          req.Name,
		Specialty:     req.Specialty,
		Phone:         req.Phone,
		Email:         req.Email,
		HasExperience: req.HasExperience,
		AvailableSlot: entity.AvailableSlots[req.SlotIndex-1],
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to register doctor", err)
	}

	u.log.Infof("Doctor registered: id=%d, slot=%s", doctor.ID, doctor.AvailableSlot)
	u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionDoctorRegister, entity.JSON{
		"doctor_id": doctor.ID,
		"slot":      doctor.AvailableSlot,
	})

	return converter.DoctorToResponse(doctor), nil
}

func (u *registrationUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, validationError(u.validator, err)
	}

	priority := entity.PriorityPending
	patient := &entity.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		Priority:       &priority,
		AssignedDoctor: entity.UnassignedDoctor,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to register patient", err)
	}

	u.log.Infof("Patient registered: id=%d, priority=%s", patient.ID, priority)
	u.audit.Record(u.db.WithContext(ctx), nil, entity.AuditActionPatientRegister, entity.JSON{
		"patient_id": patient.ID,
	})

	return converter.PatientToResponse(patient), nil
}

func (u *registrationUsecase) RegisterPatientAsync(ctx context.Context, req *dto.RegisterPatientRequest) <-chan PatientOutcome {
	outcome := make(chan PatientOutcome, 1)
	go func() {
		defer close(outcome)
		patient, err := u.RegisterPatient(ctx, req)
		outcome <- PatientOutcome{Patient: patient, Err: err}
	}()
	return outcome
}

func (u *registrationUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to list doctors", err)
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *registrationUsecase) ListPatientOverviews(ctx context.Context) ([]entity.PatientOverview, error) {
	overviews, err := u.patientRepo.FindOverviews(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to list patients", err)
	}
	return overviews, nil
}
