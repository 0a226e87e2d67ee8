// Package ledger holds the engine-level failure kinds shared by the actions,
// the service layer, and the HTTP handlers.
package ledger

import "errors"

var (
	// ErrOwnerNotFound reports that no owner matches the given email.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAccountNotFound reports that the account does not exist or does not
	// belong to the requesting owner. The two cases are deliberately
	// indistinguishable so an owner cannot probe for other owners' accounts.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds reports that a debit would take the account
	// balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount reports an amount that is not positive or carries
	// more than two decimal places.
	ErrInvalidAmount = errors.New("amount must be a positive value with at most two decimal places")

	// ErrSameAccount reports a transfer whose source and destination are the
	// same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
)
