// Package rules maps a risk category to a recommended decision and applies
// human overrides. Low and Medium are fixed mappings; High and Critical
// resolve through the policy tie-break defaults so the output stays a pure
// function of (category, configuration).
package rules

import (
	"fmt"
	"strings"

	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

// Outcome carries both the baseline mapping and what was actually applied.
// Computed always holds the baseline; Applied diverges only under a valid
// override, and the divergence is recorded rather than folded back into
// policy.
type Outcome struct {
	Computed      types.Decision
	Applied       types.Decision
	TieBreak      bool
	Overridden    bool
	Justification string
}

// Decide resolves the baseline decision for category and applies the
// optional override. An override without a justification is rejected before
// anything is sealed.
func Decide(category types.RiskCategory, defaults policy.TieBreakDefaults, override *types.Override) (Outcome, error) {
	out := Outcome{}

	switch category {
	case types.CategoryLow:
		out.Computed = types.DecisionAccept
	case types.CategoryMedium:
		out.Computed = types.DecisionReduce
	case types.CategoryHigh:
		out.Computed = defaults.High
		out.TieBreak = true
	case types.CategoryCritical:
		out.Computed = defaults.Critical
		out.TieBreak = true
	default:
		return Outcome{}, fmt.Errorf("unknown category %q: %w", category, types.ErrInvariantViolation)
	}

	out.Applied = out.Computed

	if override != nil {
		if !override.Decision.Valid() {
			return Outcome{}, fmt.Errorf("unknown decision %q: %w",
				override.Decision, types.ErrInvalidOverride)
		}
		if strings.TrimSpace(override.Justification) == "" {
			return Outcome{}, fmt.Errorf("justification is required: %w", types.ErrInvalidOverride)
		}
		out.Applied = override.Decision
		out.Overridden = true
		out.Justification = override.Justification
	}

	return out, nil
}
