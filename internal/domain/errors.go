package domain

import "errors"

var (
	// ErrAlreadySuppliedByOther is returned when an item is currently supplied by a different account
	ErrAlreadySuppliedByOther = errors.New("item already supplied by another account")

	// ErrNotOwner is returned when an account tries to revoke an item it does not own
	ErrNotOwner = errors.New("caller is not the supply owner")

	// ErrNotFound is returned when an item has no active supply record
	ErrNotFound = errors.New("supply record not found")

	// ErrNoSupplyAvailable is returned when a purchase arrives while the active supply set is empty
	ErrNoSupplyAvailable = errors.New("no supply available")

	// ErrNothingToClaim is returned when an account claims with a zero unclaimed balance
	ErrNothingToClaim = errors.New("nothing to claim")

	// ErrTransferFailed is returned when the external fund transfer fails during a claim
	ErrTransferFailed = errors.New("fund transfer failed")

	// ErrInvalidAmount is returned for zero, negative or malformed payment amounts
	ErrInvalidAmount = errors.New("invalid amount")
)
