// Package repository is the gorm-backed persistence for users, bookings and
// notification logs.
package repository

import (
	"context"
	"errors"

	"laundryhub-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	// ListByUser returns the user's bookings, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Booking, error)
	// Delete fails with ErrNotFound when the booking is missing or not the user's.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// DueOn returns bookings of any user with the given pickup date and status.
	DueOn(ctx context.Context, pickupDate string, statuses ...models.BookingStatus) ([]models.Booking, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, b *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return persistErr("create booking", "Failed to create booking. Please try again.", err)
	}
	return nil
}

func (r *GormBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, persistErr("list bookings", "Failed to fetch bookings", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistErr("get booking", "Booking not found", ErrNotFound)
	}
	if err != nil {
		return nil, persistErr("get booking", "Failed to fetch booking", err)
	}
	return &b, nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&models.Booking{})
	if result.Error != nil {
		return persistErr("delete booking", "Failed to delete booking", result.Error)
	}
	if result.RowsAffected == 0 {
		return persistErr("delete booking", "Booking not found", ErrNotFound)
	}
	return nil
}

func (r *GormBookingRepository) DueOn(ctx context.Context, pickupDate string, statuses ...models.BookingStatus) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Where("pickup_date = ?", pickupDate)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var bookings []models.Booking
	if err := q.Order("created_at ASC").Find(&bookings).Error; err != nil {
		return nil, persistErr("due bookings", "Failed to fetch bookings", err)
	}
	return bookings, nil
}
