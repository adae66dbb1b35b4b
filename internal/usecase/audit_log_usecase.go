package usecase

import (
	"context"

	"go-doctors-portal/internal/converter"
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultAuditLogLimit caps GET /audit-logs when no limit is given.
const DefaultAuditLogLimit = 100

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, limit int) ([]dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, limit int) ([]dto.AuditLogResponse, error) {
	if limit <= 0 {
		limit = DefaultAuditLogLimit
	}

	logs, err := u.auditLogRepo.FindAll(u.db.WithContext(ctx), limit)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogsToResponses(logs), nil
}
