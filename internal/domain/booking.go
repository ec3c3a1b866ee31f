package domain

import "time"

// StatusPending is the status every booking starts in. Status stays an open
// string after that: callers may set any non-empty value via the update
// endpoint, there is no enforced transition graph.
const StatusPending = "pending"

type Package string

const (
	PackageStarter Package = "starter"
	PackageGrowth  Package = "growth"
	PackagePremium Package = "premium"
)

// Valid reports whether p is one of the known plans.
func (p Package) Valid() bool {
	switch p {
	case PackageStarter, PackageGrowth, PackagePremium:
		return true
	}
	return false
}

// DisplayName returns the customer-facing plan name used in emails.
func (p Package) DisplayName() string {
	switch p {
	case PackageStarter:
		return "Starter Plan - $99/month"
	case PackageGrowth:
		return "Growth Plan - $199/month"
	case PackagePremium:
		return "Premium Plan - $299/month"
	}
	return string(p)
}

// Booking is the sole entity of the system. Every field except Status is
// immutable after creation.
type Booking struct {
	BookingID string    `json:"bookingId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Package   Package   `json:"package"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
