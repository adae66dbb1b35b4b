package usecase

import (
	"context"
	"errors"

	"go-doctors-portal/internal/converter"
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
	"go-doctors-portal/internal/domain/repository"
	"go-doctors-portal/internal/service"
	"go-doctors-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	// IsAdmin reports false for unknown emails.
	IsAdmin(ctx context.Context, email string) (bool, error)
	CheckAdmin(ctx context.Context, email string) (*dto.AdminStatusResponse, error)
	MakeAdmin(ctx context.Context, actor, email string) (*dto.UpdateResult, error)
	UpsertUser(ctx context.Context, email string, req *dto.UpsertUserRequest) (*dto.UpsertUserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		auditService: auditService,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", email, err)
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role.IsAdmin(), nil
}

func (u *userUsecase) CheckAdmin(ctx context.Context, email string) (*dto.AdminStatusResponse, error) {
	admin, err := u.IsAdmin(ctx, email)
	if err != nil {
		return nil, err
	}
	return &dto.AdminStatusResponse{Admin: admin}, nil
}

// MakeAdmin promotes an existing user. Unknown emails are reported through
// a zero matched count, never created.
func (u *userUsecase) MakeAdmin(ctx context.Context, actor, email string) (*dto.UpdateResult, error) {
	outcome, err := u.userRepo.UpdateRole(u.db.WithContext(ctx), email, entity.RoleAdmin)
	if err != nil {
		u.log.Warnf("Failed to promote user %s: %+v", email, err)
		return nil, err
	}

	if outcome.ModifiedCount > 0 {
		newValue := map[string]interface{}{"role": string(entity.RoleAdmin)}
		if err := u.auditService.LogUpdate(ctx, actor, entity.AuditActionUserPromote, "user", email, nil, newValue); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	result := converter.UpdateOutcomeToResult(outcome)
	return &result, nil
}

// UpsertUser registers or refreshes a user and issues a fresh access token
// for that email. Role is never written here.
func (u *userUsecase) UpsertUser(ctx context.Context, email string, req *dto.UpsertUserRequest) (*dto.UpsertUserResponse, error) {
	user, fields := converter.UpsertUserRequestToEntity(email, req)

	outcome, err := u.userRepo.Upsert(u.db.WithContext(ctx), user, fields)
	if err != nil {
		u.log.Warnf("Failed to upsert user %s: %+v", email, err)
		return nil, err
	}

	token, err := u.jwtService.GenerateAccessToken(email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	return &dto.UpsertUserResponse{
		Result: converter.UpdateOutcomeToResult(outcome),
		Token:  token,
	}, nil
}
