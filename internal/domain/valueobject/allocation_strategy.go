package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentComponent and AllocationStrategy
// ---------------------------------------------------------------------------

// PaymentComponent is one of the four buckets a repayment can be applied to.
type PaymentComponent string

const (
	ComponentPenalty   PaymentComponent = "penalty"
	ComponentFee       PaymentComponent = "fee"
	ComponentInterest  PaymentComponent = "interest"
	ComponentPrincipal PaymentComponent = "principal"
)

// AllocationStrategy is the fixed priority order in which a repayment is
// applied across outstanding penalty/fee/interest/principal components.
type AllocationStrategy struct {
	value string
	order [4]PaymentComponent
}

const (
	strategyPenaltiesFeesInterestPrincipal = "penalties_fees_interest_principal"
	strategyInterestPrincipalPenaltiesFees = "interest_principal_penalties_fees"
	strategyInterestPenaltiesFeesPrincipal = "interest_penalties_fees_principal"
	strategyPrincipalInterestFeesPenalties = "principal_interest_fees_penalties"
	strategyDefault                        = "interest_fee_principal_penalty"
)

var (
	StrategyPenaltiesFeesInterestPrincipal = AllocationStrategy{
		value: strategyPenaltiesFeesInterestPrincipal,
		order: [4]PaymentComponent{ComponentPenalty, ComponentFee, ComponentInterest, ComponentPrincipal},
	}
	StrategyInterestPrincipalPenaltiesFees = AllocationStrategy{
		value: strategyInterestPrincipalPenaltiesFees,
		order: [4]PaymentComponent{ComponentInterest, ComponentPrincipal, ComponentPenalty, ComponentFee},
	}
	StrategyInterestPenaltiesFeesPrincipal = AllocationStrategy{
		value: strategyInterestPenaltiesFeesPrincipal,
		order: [4]PaymentComponent{ComponentInterest, ComponentPenalty, ComponentFee, ComponentPrincipal},
	}
	StrategyPrincipalInterestFeesPenalties = AllocationStrategy{
		value: strategyPrincipalInterestFeesPenalties,
		order: [4]PaymentComponent{ComponentPrincipal, ComponentInterest, ComponentFee, ComponentPenalty},
	}

	// StrategyDefault is applied whenever a product carries no strategy code or
	// an unrecognised one. Interest first, then fee, then principal, then penalty.
	StrategyDefault = AllocationStrategy{
		value: strategyDefault,
		order: [4]PaymentComponent{ComponentInterest, ComponentFee, ComponentPrincipal, ComponentPenalty},
	}
)

var validStrategies = map[string]AllocationStrategy{
	strategyPenaltiesFeesInterestPrincipal: StrategyPenaltiesFeesInterestPrincipal,
	strategyInterestPrincipalPenaltiesFees: StrategyInterestPrincipalPenaltiesFees,
	strategyInterestPenaltiesFeesPrincipal: StrategyInterestPenaltiesFeesPrincipal,
	strategyPrincipalInterestFeesPenalties: StrategyPrincipalInterestFeesPenalties,
	strategyDefault:                        StrategyDefault,
}

// NewAllocationStrategy creates an AllocationStrategy from a raw code.
// Unknown codes return StrategyDefault together with
// ErrUnknownAllocationStrategy so callers can log the misconfiguration
// without blocking loan servicing.
func NewAllocationStrategy(s string) (AllocationStrategy, error) {
	if s == "" {
		return StrategyDefault, nil
	}
	v, ok := validStrategies[s]
	if !ok {
		return StrategyDefault, fmt.Errorf("%w: %q", ErrUnknownAllocationStrategy, s)
	}
	return v, nil
}

// String returns the strategy code.
func (s AllocationStrategy) String() string { return s.value }

// IsZero returns true if the strategy has not been initialised.
func (s AllocationStrategy) IsZero() bool { return s.value == "" }

// Equal returns true when both strategies carry the same value.
func (s AllocationStrategy) Equal(other AllocationStrategy) bool { return s.value == other.value }

// Order returns the four components in application order.
func (s AllocationStrategy) Order() []PaymentComponent {
	if s.IsZero() {
		s = StrategyDefault
	}
	return []PaymentComponent{s.order[0], s.order[1], s.order[2], s.order[3]}
}
