package service

import (
	"hospital-turn-system/internal/domain/entity"
	"hospital-turn-system/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes one audit_logs row per state-changing operation.
// Failures are logged and swallowed so the audit trail never blocks the
// primary operation.
type AuditService interface {
	Record(tx *gorm.DB, userID *int64, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(tx *gorm.DB, userID *int64, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
