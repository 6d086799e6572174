package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Budi"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-03")
	assert.True(t, ok)

	for _, invalid := range []string{"2025-13-01", "03/03/2025", "2025-3-3", "", "yesterday"} {
		_, ok := IsValidDate(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestIsValidClock(t *testing.T) {
	for _, valid := range []string{"00:00", "09:00", "23:59"} {
		assert.True(t, IsValidClock(valid), valid)
	}
	for _, invalid := range []string{"24:00", "9:00", "09:60", "09:00:00", ""} {
		assert.False(t, IsValidClock(invalid), invalid)
	}
}

func TestParseClock(t *testing.T) {
	minutes, ok := ParseClock("09:00")
	assert.True(t, ok)
	assert.Equal(t, 540, minutes)

	minutes, ok = ParseClock("00:00")
	assert.True(t, ok)
	assert.Equal(t, 0, minutes)

	minutes, ok = ParseClock("23:59")
	assert.True(t, ok)
	assert.Equal(t, 1439, minutes)

	_, ok = ParseClock("25:00")
	assert.False(t, ok)
}

func TestIsValidScore(t *testing.T) {
	assert.True(t, IsValidScore(0))
	assert.True(t, IsValidScore(100))
	assert.True(t, IsValidScore(87.5))
	assert.False(t, IsValidScore(-0.1))
	assert.False(t, IsValidScore(100.1))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee", Message: "employee is required"},
		{Field: "communication", Message: "communication must be between 0 and 100"},
	}

	assert.Equal(t, "employee: employee is required; communication: communication must be between 0 and 100", errs.Error())
	assert.Equal(t, map[string]string{
		"employee":      "employee is required",
		"communication": "communication must be between 0 and 100",
	}, errs.ToMap())
}
