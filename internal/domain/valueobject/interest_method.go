package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// InterestMethod – immutable value object
// ---------------------------------------------------------------------------

// InterestMethod selects how interest is computed over the life of a loan.
type InterestMethod struct {
	value string
}

const (
	interestMethodFlat     = "flat"
	interestMethodReducing = "reducing_balance"
)

var (
	// InterestMethodFlat charges interest once on the original principal and
	// spreads it evenly across installments.
	InterestMethodFlat = InterestMethod{value: interestMethodFlat}

	// InterestMethodReducingBalance charges interest each period on the
	// outstanding principal, which declines as principal is repaid.
	InterestMethodReducingBalance = InterestMethod{value: interestMethodReducing}
)

var validInterestMethods = map[string]InterestMethod{
	interestMethodFlat:     InterestMethodFlat,
	interestMethodReducing: InterestMethodReducingBalance,
}

// NewInterestMethod creates an InterestMethod from a raw string.
func NewInterestMethod(s string) (InterestMethod, error) {
	v, ok := validInterestMethods[s]
	if !ok {
		return InterestMethod{}, fmt.Errorf("invalid interest method: %q", s)
	}
	return v, nil
}

// String returns the string representation of the method.
func (m InterestMethod) String() string { return m.value }

// IsZero returns true if the method has not been initialised.
func (m InterestMethod) IsZero() bool { return m.value == "" }

// Equal returns true when both methods carry the same value.
func (m InterestMethod) Equal(other InterestMethod) bool { return m.value == other.value }
