// Package validate checks incoming booking requests before anything is
// stored or sent.
package validate

import (
	"regexp"

	"github.com/nutrilife/booking-api/internal/domain"
)

// Same shape nodemailer-era clients already rely on: non-whitespace non-@
// local part, non-whitespace non-@ domain with at least one dot.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingRequest is the caller-supplied payload for a new booking.
type BookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Package string `json:"package"`
	Message string `json:"message"`
}

// Booking returns nil if req may become a booking, or a
// *domain.ValidationError naming the first offending field. No side effects.
func Booking(req BookingRequest) error {
	required := []struct {
		field, value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"date", req.Date},
		{"package", req.Package},
	}
	for _, r := range required {
		if r.value == "" {
			return &domain.ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if !emailRe.MatchString(req.Email) {
		return &domain.ValidationError{Field: "email", Reason: "has invalid format"}
	}

	if !domain.Package(req.Package).Valid() {
		return &domain.ValidationError{Field: "package", Reason: "is not a known plan"}
	}

	return nil
}
