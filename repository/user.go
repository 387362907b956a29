package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"laundryhub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	// Create fails with ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	CreateReset(ctx context.Context, reset *models.PasswordReset) error
	// ResetPassword consumes an unused, unexpired reset token and stores the
	// new password hash in one transaction.
	ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormUserRepository) Create(ctx context.Context, u *models.User) error {
	u.Email = normalizeEmail(u.Email)

	var existing models.User
	err := r.db.WithContext(ctx).Where("email = ?", u.Email).First(&existing).Error
	if err == nil {
		return persistErr("create user", "This email is already registered. Please try logging in.", ErrDuplicate)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return persistErr("create user", "Database error", err)
	}

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return persistErr("create user", "Failed to create user", err)
	}
	return nil
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	return r.found(&u, "find user", err)
}

func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return r.found(&u, "find user", err)
}

func (r *GormUserRepository) found(u *models.User, op string, err error) (*models.User, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistErr(op, "User not found", ErrNotFound)
	}
	if err != nil {
		return nil, persistErr(op, "Database error", err)
	}
	return u, nil
}

func (r *GormUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
	if err != nil {
		return persistErr("touch last login", "Database error", err)
	}
	return nil
}

func (r *GormUserRepository) CreateReset(ctx context.Context, reset *models.PasswordReset) error {
	if err := r.db.WithContext(ctx).Create(reset).Error; err != nil {
		return persistErr("create reset", "Failed to start password reset", err)
	}
	return nil
}

func (r *GormUserRepository) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordReset
		err := tx.Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).
			First(&reset).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return persistErr("reset password", "Reset link is invalid or has expired", ErrNotFound)
		}
		if err != nil {
			return persistErr("reset password", "Database error", err)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password", passwordHash).Error; err != nil {
			return persistErr("reset password", "Failed to update password", err)
		}
		if err := tx.Model(&reset).Update("used_at", now).Error; err != nil {
			return persistErr("reset password", "Failed to update password", err)
		}
		return nil
	})
}
