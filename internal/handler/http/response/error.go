package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/appraisal"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/punch"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrNoValidPunches):
		BadRequest(w, "No valid date/time data in the uploaded records", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrSnapshotNotFound):
		NotFound(w, "Ledger snapshot not found")
	case errors.Is(err, ledger.ErrEmptySelection):
		NotFound(w, "No ledger rows match the selected criteria")

	// Appraisal domain errors
	case errors.Is(err, appraisal.ErrEmployeeNotInLedger):
		NotFound(w, "Employee has no ledger rows in the selected period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
