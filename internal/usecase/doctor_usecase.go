package usecase

import (
	"context"
	"errors"

	"go-doctors-portal/internal/converter"
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
	"go-doctors-portal/internal/domain/repository"
	"go-doctors-portal/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorEmailExists = errors.New("doctor email already exists")

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, actor string, req *dto.CreateDoctorRequest) (*dto.InsertResult, error)
	DeleteDoctor(ctx context.Context, actor, email string) (*dto.DeleteResult, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, actor string, req *dto.CreateDoctorRequest) (*dto.InsertResult, error) {
	doctor := converter.CreateDoctorRequestToEntity(req)

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	// Audit failures never undo the insert.
	if err := u.auditService.LogCreate(ctx, actor, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	result := converter.InsertResult(doctor.ID)
	return &result, nil
}

// DeleteDoctor reports deletedCount=0 for unknown emails.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, actor, email string) (*dto.DeleteResult, error) {
	deleted, err := u.doctorRepo.DeleteByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %s: %+v", email, err)
		return nil, err
	}

	if deleted > 0 {
		if err := u.auditService.LogDelete(ctx, actor, entity.AuditActionDoctorDelete, "doctor", email, map[string]interface{}{"email": email}); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	result := converter.DeleteResult(deleted)
	return &result, nil
}
