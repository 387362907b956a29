package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"laundryhub-backend/catalog"
	"laundryhub-backend/models"
	"laundryhub-backend/repository"
	"laundryhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PickupWindows are the time ranges a booking may ask for.
var PickupWindows = []string{
	"Morning (8AM - 12PM)",
	"Afternoon (12PM - 5PM)",
	"Evening (5PM - 8PM)",
}

type BookingInput struct {
	FirstName           string `json:"firstName" binding:"required"`
	LastName            string `json:"lastName" binding:"required"`
	Email               string `json:"email" binding:"required"`
	Phone               string `json:"phone" binding:"required"`
	Address             string `json:"address" binding:"required"`
	PickupDate          string `json:"pickupDate" binding:"required"`
	PickupTime          string `json:"pickupTime" binding:"required"`
	ServiceType         string `json:"serviceType" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// Confirmer is told about every booking once it is stored.
type Confirmer interface {
	Confirm(ctx context.Context, b *models.Booking)
}

type BookingController struct {
	Bookings  repository.BookingRepository
	Confirmer Confirmer
	Now       func() time.Time
}

func (bc *BookingController) now() time.Time {
	if bc.Now != nil {
		return bc.Now()
	}
	return time.Now()
}

func (bc *BookingController) GetBookingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serviceTypes":  catalog.ServiceTypes(),
		"pickupWindows": PickupWindows,
	})
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		respondWithFailure(c, err)
		return
	}

	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := bc.validate(&input); err != nil {
		respondWithFailure(c, err)
		return
	}

	booking := models.Booking{
		UserID:       userID,
		CustomerName: strings.TrimSpace(input.FirstName) + " " + strings.TrimSpace(input.LastName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		PickupDate:   input.PickupDate,
		PickupTime:   input.PickupTime,
		ServiceType:  input.ServiceType,
		Status:       models.StatusPending,
	}
	if notes := strings.TrimSpace(input.SpecialInstructions); notes != "" {
		booking.SpecialInstructions = &notes
	}

	if err := bc.Bookings.Create(c.Request.Context(), &booking); err != nil {
		respondWithFailure(c, err)
		return
	}
	if bc.Confirmer != nil {
		bc.Confirmer.Confirm(c.Request.Context(), &booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"title":    "Booking confirmed!",
		"message":  "We'll pick up your laundry on " + booking.PickupDate + " (" + booking.PickupTime + ").",
		"booking":  booking,
		"redirect": "/booking-list",
	})
}

func (bc *BookingController) validate(in *BookingInput) error {
	if err := utils.ValidateEmail(in.Email); err != nil {
		return err
	}
	if !utils.ValidatePhone(in.Phone) {
		return &utils.ValidationError{Field: "phone", Message: "Please enter a valid phone number"}
	}

	now := bc.now()
	date, err := time.ParseInLocation(models.PickupDateLayout, in.PickupDate, now.Location())
	if err != nil {
		return &utils.ValidationError{Field: "pickupDate", Message: "Please choose a valid pickup date"}
	}
	if utils.DaysBetween(now, date) < 0 {
		return &utils.ValidationError{Field: "pickupDate", Message: "Pickup date cannot be in the past"}
	}

	validWindow := false
	for _, w := range PickupWindows {
		if w == in.PickupTime {
			validWindow = true
			break
		}
	}
	if !validWindow {
		return &utils.ValidationError{Field: "pickupTime", Message: "Please choose a pickup time"}
	}
	if !catalog.IsServiceType(in.ServiceType) {
		return &utils.ValidationError{Field: "serviceType", Message: "Please choose a service type"}
	}
	return nil
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		respondWithFailure(c, err)
		return
	}

	bookings, err := bc.Bookings.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	userID, id, ok := bookingIDs(c)
	if !ok {
		return
	}

	booking, err := bc.Bookings.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	userID, id, ok := bookingIDs(c)
	if !ok {
		return
	}

	if err := bc.Bookings.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func bookingIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		respondWithFailure(c, err)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
