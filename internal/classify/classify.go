// Package classify maps an overall risk score onto the policy band table.
package classify

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

// Classify selects the band whose [Min, Max) interval contains overall; the
// top band is closed at Max. An overall outside [0,1] is an upstream defect
// and is reported, never clamped.
func Classify(overall decimal.Decimal, bands []policy.Band) (types.RiskCategory, policy.Band, error) {
	if overall.IsNegative() || overall.GreaterThan(decimal.NewFromInt(1)) {
		return "", policy.Band{}, fmt.Errorf("overall %s outside [0,1]: %w",
			overall, types.ErrInvariantViolation)
	}

	for i, band := range bands {
		last := i == len(bands)-1
		if overall.LessThan(band.Min) {
			continue
		}
		if overall.LessThan(band.Max) || (last && overall.Equal(band.Max)) {
			return band.Category, band, nil
		}
	}

	// Unreachable with a validated band table.
	return "", policy.Band{}, fmt.Errorf("no band contains %s: %w",
		overall, types.ErrInvariantViolation)
}
