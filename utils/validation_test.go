package utils

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+1 (555) 000-0000"))
	assert.True(t, ValidatePhone("9171234567"))
	assert.False(t, ValidatePhone("phone"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("john@example.com"))
	assert.NoError(t, ValidateEmail(" jane.doe+laundry@mail.example.ph "))

	for _, bad := range []string{"", "john", "john@", "@example.com", "john doe@example.com", "john@@example.com"} {
		err := ValidateEmail(bad)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), bad)
		assert.Equal(t, "email", verr.Field)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))

	err := ValidatePassword("12345")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "password", verr.Field)
	assert.Equal(t, "Password must be at least 6 characters", verr.Message)
}

func TestValidateCredentials_EmailFirst(t *testing.T) {
	err := ValidateCredentials("bad", "1")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
}

func TestDates(t *testing.T) {
	at := time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), BeginningOfDay(at))
	assert.Equal(t, 2, DaysBetween(at, time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(at, time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)))

	days := NextDays(at, 3)
	require.Len(t, days, 3)
	assert.Equal(t, 10, days[0].Day())
	assert.Equal(t, 12, days[2].Day())
}

func TestDaysBetween_AcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-03-08 is only 23 hours long in New York.
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, ny)
	assert.Equal(t, -1, DaysBetween(now, time.Date(2026, 3, 8, 0, 0, 0, 0, ny)))
	assert.Equal(t, 0, DaysBetween(now, time.Date(2026, 3, 9, 0, 0, 0, 0, ny)))

	// 2026-11-01 is 25 hours long.
	now = time.Date(2026, 11, 1, 0, 30, 0, 0, ny)
	assert.Equal(t, 1, DaysBetween(now, time.Date(2026, 11, 2, 0, 0, 0, 0, ny)))
	assert.Equal(t, -1, DaysBetween(time.Date(2026, 11, 2, 0, 0, 0, 0, ny), now))
}
