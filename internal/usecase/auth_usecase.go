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

var ErrInvalidCredentials = apperr.New(apperr.Validation, "invalid username or password")

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	validator *validator.CustomValidator
	userRepo  repository.UserRepository
	audit     service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	userRepo repository.UserRepository,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:        db,
		log:       log,
		validator: customValidator,
		userRepo:  userRepo,
		audit:     audit,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, validationError(u.validator, err)
	}

	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, apperr.Wrap(apperr.Persistence, "failed to look up user", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u.audit.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"username": user.Username,
	})

	return converter.UserToResponse(user), nil
}
