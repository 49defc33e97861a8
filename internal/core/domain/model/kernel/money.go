package kernel

import (
	"fmt"

	"driverops/internal/pkg/errs"

	"driverops/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money
// that bypassed the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money is an immutable value object representing a monetary amount in minor
// units (cents) together with its ISO 4217 currency code. Order totals and
// driver earnings are expressed with this type.
type Money struct {
	amountCents int64
	currency    string
	guard       guard.ConstructorGuard
}

// NewMoney creates a validated Money value.
//
// Validation rules:
//   - amountCents must not be negative
//   - currency must be a three-letter code (e.g. "MYR")
func NewMoney(amountCents int64, currency string) (Money, error) {
	if amountCents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amountCents", fmt.Errorf("%d is negative", amountCents))
	}

	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	return Money{
		amountCents: amountCents,
		currency:    currency,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// AmountCents returns the amount in minor units.
func (m Money) AmountCents() int64 {
	return m.amountCents
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amountCents == other.amountCents && m.currency == other.currency
}

// Validate checks that the Money was created through its constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%s %d.%02d", m.currency, m.amountCents/100, m.amountCents%100)
}
