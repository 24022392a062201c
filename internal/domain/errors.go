package domain

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrDraftNotFound   = errors.New("booking draft not found")
)

var (
	ErrCarAlreadyBooked = errors.New("Car is already booked")
	ErrBookingNotActive = errors.New("booking is not active")
	ErrBookingNotOwned  = errors.New("booking belongs to another user")
	ErrResumeInProgress = errors.New("draft resume already in progress")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrRentalTooShort = errors.New("rental must be at least 12 hours")
	ErrPhoneRequired  = errors.New("phone number is required")
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)
