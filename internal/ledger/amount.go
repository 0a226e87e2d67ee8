package ledger

import "github.com/shopspring/decimal"

// ValidateAmount checks that amount is usable as money in a ledger
// operation: strictly positive, at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.Exponent() < -2 {
		return ErrInvalidAmount
	}
	return nil
}
