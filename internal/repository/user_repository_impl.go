package repository

import (
	"errors"

	"go-doctors-portal/internal/domain/entity"
	domainRepo "go-doctors-portal/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Upsert locks the existing row so two registrations for the same email
// cannot both take the insert branch. The ON CONFLICT clause covers the
// remaining window where the row does not exist yet.
func (r *userRepository) Upsert(db *gorm.DB, user *entity.User, fields []string) (*entity.UpdateOutcome, error) {
	outcome := &entity.UpdateOutcome{}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing entity.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("email = ?", user.Email).
			First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			columns := append(append([]string{}, fields...), "updated_at")
			onConflict := clause.OnConflict{
				Columns:   []clause.Column{{Name: "email"}},
				DoUpdates: clause.AssignmentColumns(columns),
			}
			if err := tx.Clauses(onConflict).Create(user).Error; err != nil {
				return err
			}
			id := user.ID
			outcome.UpsertedCount = 1
			outcome.UpsertedID = &id
			return nil
		}
		if err != nil {
			return err
		}

		outcome.MatchedCount = 1
		if len(fields) == 0 {
			*user = existing
			return nil
		}

		result := tx.Model(&existing).Select(fields).Updates(user)
		if result.Error != nil {
			return result.Error
		}
		outcome.ModifiedCount = result.RowsAffected
		user.ID = existing.ID
		user.Role = existing.Role
		user.CreatedAt = existing.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

func (r *userRepository) UpdateRole(db *gorm.DB, email string, role entity.Role) (*entity.UpdateOutcome, error) {
	outcome := &entity.UpdateOutcome{}

	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&outcome.MatchedCount).Error; err != nil {
		return nil, err
	}
	if outcome.MatchedCount == 0 {
		return outcome, nil
	}

	// Only rows whose role actually changes count as modified.
	result := db.Model(&entity.User{}).
		Where("email = ? AND role IS DISTINCT FROM ?", email, role).
		Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	outcome.ModifiedCount = result.RowsAffected

	return outcome, nil
}
