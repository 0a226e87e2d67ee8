package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	cases := []struct {
		amount string
		valid  bool
	}{
		{"0.01", true},
		{"1", true},
		{"200.00", true},
		{"999999.99", true},
		{"1.5", true},
		{"0", false},
		{"0.00", false},
		{"-0.01", false},
		{"-200.00", false},
		{"1.001", false},
		{"0.005", false},
	}

	for _, tc := range cases {
		err := ValidateAmount(decimal.RequireFromString(tc.amount))
		if tc.valid {
			assert.NoError(t, err, "amount %s", tc.amount)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", tc.amount)
		}
	}
}
