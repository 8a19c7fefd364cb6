package util

import "errors"

var (
	ErrNotAuthenticated      = errors.New("not authenticated")
	ErrInvalidRole           = errors.New("role must be student or teacher")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrNotFound              = errors.New("record not found")
	ErrSubmissionNotFound    = errors.New("submission not found")
	ErrStatusFinal           = errors.New("submission has already been reviewed")
	ErrInvalidStatus         = errors.New("status must be approved or rejected")
	ErrNoDataset             = errors.New("teacher hasn't uploaded any performance data yet")
	ErrStudentNotFound       = errors.New("registration number or semester doesn't match our records")
	ErrUnsupportedFile       = errors.New("dataset must be a .csv or .xlsx file")
	ErrUnsupportedAttachment = errors.New("attachment must be a pdf, doc, docx, image, csv or xlsx file")
	ErrEmptyDataset          = errors.New("dataset contains no student rows")

	ErrAIKeyMissing       = errors.New("AI API key is not configured")
	ErrRateLimited        = errors.New("Rate limit exceeded. Please try again later.")
	ErrQuotaExceeded      = errors.New("Payment required. Please add credits to your workspace.")
	ErrUnknownInsightType = errors.New("unknown insight type")
)

// ValidationError names the first required field that failed.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "", "required", "required_if":
		return "missing required field: " + e.Field
	}
	return "invalid field " + e.Field + ": " + e.Rule
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
