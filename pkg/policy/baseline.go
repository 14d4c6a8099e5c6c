package policy

import (
	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/pkg/types"
)

// BaselineVersion names the compiled-in reference policy.
const BaselineVersion = "v1"

// Baseline returns policy v1. Bands follow the published reference numbers;
// High resolves to mitigate and Critical to stop. It is a convenience
// default, not an implicit fallback: callers still pass it explicitly.
func Baseline() Loaded {
	cfg := Config{
		PolicyID:      "veridict-baseline",
		PolicyVersion: BaselineVersion,
		Scale:         ScaleConfig{Min: 1, Max: 5},
		Scoring:       ScoringConfig{Method: MethodMultiply},
		Bands: []Band{
			{Category: types.CategoryLow, Min: decimal.Zero, Max: dec("0.2")},
			{Category: types.CategoryMedium, Min: dec("0.2"), Max: dec("0.4")},
			{Category: types.CategoryHigh, Min: dec("0.4"), Max: dec("0.7")},
			{Category: types.CategoryCritical, Min: dec("0.7"), Max: dec("1")},
		},
		Defaults: TieBreakDefaults{
			High:     types.DecisionMitigate,
			Critical: types.DecisionStop,
		},
	}

	hash, err := Hash(cfg)
	if err != nil {
		// The baseline view contains only strings, ints and decimals; a
		// canonicalization failure here is a programming error.
		panic(err)
	}

	return Loaded{Config: cfg, Hash: hash}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
