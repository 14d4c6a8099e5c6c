// Package score implements the two pure leaf stages of the pipeline:
// normalization of raw ratings and aggregation of the normalized pair.
package score

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

// Normalize rescales a raw rating to [0,1] linearly over the policy scale:
// scale minimum maps to 0, scale maximum to 1. The division is exact in
// decimal, so equal raws always normalize to identical bytes.
func Normalize(raw int, scale policy.ScaleConfig) (decimal.Decimal, error) {
	if raw < scale.Min || raw > scale.Max {
		return decimal.Decimal{}, fmt.Errorf("raw rating %d outside [%d,%d]: %w",
			raw, scale.Min, scale.Max, types.ErrInvalidInput)
	}

	span := decimal.NewFromInt(int64(scale.Max - scale.Min))
	offset := decimal.NewFromInt(int64(raw - scale.Min))
	return offset.Div(span), nil
}

// ValidateConfidence range-checks a confidence rating. Confidence is carried
// as inert metadata and never transformed.
func ValidateConfidence(confidence int, scale policy.ScaleConfig) error {
	if confidence < scale.Min || confidence > scale.Max {
		return fmt.Errorf("confidence %d outside [%d,%d]: %w",
			confidence, scale.Min, scale.Max, types.ErrInvalidInput)
	}
	return nil
}

// Aggregate combines the normalized dimensions into the overall risk score.
// The multiplicative form is deliberate: a zero in either dimension forces
// zero overall, and one elevated dimension alone cannot produce a high
// score. No weighting or clamping is applied.
func Aggregate(likelihood, impact decimal.Decimal, scoring policy.ScoringConfig) (decimal.Decimal, error) {
	if scoring.Method != policy.MethodMultiply {
		return decimal.Decimal{}, fmt.Errorf("scoring method %q: %w",
			scoring.Method, types.ErrInvariantViolation)
	}
	if outOfUnit(likelihood) {
		return decimal.Decimal{}, fmt.Errorf("likelihood_norm %s outside [0,1]: %w",
			likelihood, types.ErrInvariantViolation)
	}
	if outOfUnit(impact) {
		return decimal.Decimal{}, fmt.Errorf("impact_norm %s outside [0,1]: %w",
			impact, types.ErrInvariantViolation)
	}

	return likelihood.Mul(impact), nil
}

func outOfUnit(d decimal.Decimal) bool {
	return d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1))
}
