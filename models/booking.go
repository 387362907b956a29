package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// PickupDateLayout is how pickup dates are stored and accepted.
const PickupDateLayout = "2006-01-02"

// Booking is a pickup request. It does not reference any cart.
type Booking struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	CustomerName        string  `gorm:"not null" json:"customer_name"`
	Email               string  `gorm:"not null" json:"email"`
	Phone               string  `gorm:"not null" json:"phone"`
	Address             string  `gorm:"type:text;not null" json:"address"`
	PickupDate          string  `gorm:"type:varchar(10);index;not null" json:"pickup_date"`
	PickupTime          string  `gorm:"not null" json:"pickup_time"`
	ServiceType         string  `gorm:"not null" json:"service_type"`
	SpecialInstructions *string `gorm:"type:text" json:"special_instructions"`

	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt time.Time     `json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	if !b.Status.Valid() {
		return fmt.Errorf("invalid booking status %q", b.Status)
	}
	return
}
