// services/booking_notifications.go
package services

import (
	"context"
	"fmt"
	"time"

	"laundryhub-backend/logger"
	"laundryhub-backend/models"
	"laundryhub-backend/repository"
	"laundryhub-backend/utils"

	"github.com/robfig/cron/v3"
)

const (
	TypeConfirmation = "confirmation"
	TypeReminder     = "reminder"
)

// BookingNotifier sends booking confirmations and day-before pickup reminders
// and records every attempt.
type BookingNotifier struct {
	notifier Notifier
	bookings repository.BookingRepository
	logs     repository.NotificationLogRepository
	now      func() time.Time
	cron     *cron.Cron
}

func NewBookingNotifier(n Notifier, bookings repository.BookingRepository, logs repository.NotificationLogRepository) *BookingNotifier {
	return &BookingNotifier{notifier: n, bookings: bookings, logs: logs, now: time.Now}
}

// Confirm tells the customer the booking was received. Failures are logged,
// never returned.
func (s *BookingNotifier) Confirm(ctx context.Context, b *models.Booking) {
	msg := fmt.Sprintf("Hi %s, your %s pickup on %s (%s) is booked. We'll contact you shortly to confirm.",
		b.CustomerName, b.ServiceType, b.PickupDate, b.PickupTime)
	s.deliver(ctx, b, TypeConfirmation, msg)
}

// StartScheduler runs SendPickupReminders on spec (cron syntax).
func (s *BookingNotifier) StartScheduler(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.SendPickupReminders(ctx)
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	logger.Get().Info("reminder scheduler started", "schedule", spec)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *BookingNotifier) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SendPickupReminders messages every pending or confirmed booking whose
// pickup is tomorrow. It returns how many reminders were attempted.
func (s *BookingNotifier) SendPickupReminders(ctx context.Context) int {
	log := logger.Get()
	tomorrow := utils.BeginningOfDay(s.now()).AddDate(0, 0, 1).Format(models.PickupDateLayout)

	due, err := s.bookings.DueOn(ctx, tomorrow, models.StatusPending, models.StatusConfirmed)
	if err != nil {
		log.Error("failed to fetch bookings for reminders", "date", tomorrow, "error", err)
		return 0
	}

	for i := range due {
		b := &due[i]
		msg := fmt.Sprintf("Hi %s, reminder: we'll pick up your laundry tomorrow (%s), %s at %s.",
			b.CustomerName, b.PickupDate, b.PickupTime, b.Address)
		s.deliver(ctx, b, TypeReminder, msg)
	}
	log.Info("pickup reminders processed", "date", tomorrow, "count", len(due))
	return len(due)
}

func (s *BookingNotifier) deliver(ctx context.Context, b *models.Booking, kind, msg string) {
	log := logger.Get()
	channel, err := s.notifier.Send(ctx, b.Phone, msg)

	status := "sent"
	errorMsg := ""
	if err != nil {
		log.Warn("failed to send notification", "booking_id", b.ID, "type", kind, "error", err)
		status = "failed"
		errorMsg = err.Error()
	}

	entry := &models.NotificationLog{
		BookingID:    b.ID,
		Type:         kind,
		Message:      msg,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       s.now(),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.Warn("failed to log notification", "booking_id", b.ID, "error", err)
	}
}
