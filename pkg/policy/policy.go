// Package policy holds the versioned configuration that parametrizes an
// evaluation: normalization scale, aggregation method, category band table
// and the High/Critical tie-break defaults. A policy is passed explicitly
// into every evaluation; the engine holds no ambient active policy.
package policy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/internal/crypto"
	"github.com/davidahmann/veridict/pkg/types"
)

type Config struct {
	PolicyID      string
	PolicyVersion string
	Scale         ScaleConfig
	Scoring       ScoringConfig
	Bands         []Band
	Defaults      TieBreakDefaults
}

// ScaleConfig bounds the raw rating scale. Normalization is the linear
// rescale (raw-Min)/(Max-Min).
type ScaleConfig struct {
	Min int
	Max int
}

type ScoringConfig struct {
	Method string
}

// MethodMultiply is the only supported aggregation operator: a zero in either
// dimension forces overall risk to zero, and only joint elevation raises it.
const MethodMultiply = "multiply"

// Band is one half-open category interval [Min, Max); the top band is closed
// at Max so the table covers all of [0,1].
type Band struct {
	Category types.RiskCategory
	Min      decimal.Decimal
	Max      decimal.Decimal
}

// TieBreakDefaults resolve the two categories whose baseline decision the
// prose policy leaves ambiguous. They are configuration, never inference.
type TieBreakDefaults struct {
	High     types.Decision
	Critical types.Decision
}

// Validate checks structural soundness: a total, ordered, gapless band table
// over [0,1] and admissible tie-break defaults.
func (c Config) Validate() error {
	if c.PolicyID == "" {
		return fmt.Errorf("policy_id is required")
	}
	if c.PolicyVersion == "" {
		return fmt.Errorf("policy_version is required")
	}
	if c.Scale.Min >= c.Scale.Max {
		return fmt.Errorf("scale min %d must be below max %d", c.Scale.Min, c.Scale.Max)
	}
	if c.Scoring.Method != MethodMultiply {
		return fmt.Errorf("unsupported scoring method: %q", c.Scoring.Method)
	}

	want := types.Categories()
	if len(c.Bands) != len(want) {
		return fmt.Errorf("band table must have %d bands, got %d", len(want), len(c.Bands))
	}

	zero := decimal.Zero
	one := decimal.NewFromInt(1)

	for i, band := range c.Bands {
		if band.Category != want[i] {
			return fmt.Errorf("band %d must be category %s, got %s", i, want[i], band.Category)
		}
		if band.Min.GreaterThanOrEqual(band.Max) {
			return fmt.Errorf("band %s is empty: [%s, %s)", band.Category, band.Min, band.Max)
		}
		if i > 0 && !band.Min.Equal(c.Bands[i-1].Max) {
			return fmt.Errorf("band %s does not start where %s ends: %s vs %s",
				band.Category, c.Bands[i-1].Category, band.Min, c.Bands[i-1].Max)
		}
	}
	if !c.Bands[0].Min.Equal(zero) {
		return fmt.Errorf("first band must start at 0, got %s", c.Bands[0].Min)
	}
	if !c.Bands[len(c.Bands)-1].Max.Equal(one) {
		return fmt.Errorf("last band must end at 1, got %s", c.Bands[len(c.Bands)-1].Max)
	}

	switch c.Defaults.High {
	case types.DecisionReduce, types.DecisionMitigate:
	default:
		return fmt.Errorf("high default must be reduce or mitigate, got %q", c.Defaults.High)
	}
	switch c.Defaults.Critical {
	case types.DecisionStop, types.DecisionEscalate:
	default:
		return fmt.Errorf("critical default must be stop or escalate, got %q", c.Defaults.Critical)
	}

	return nil
}

// Hash computes the canonical digest of a config. Used for compiled-in
// policies; file-loaded policies hash their raw bytes instead.
func Hash(c Config) (string, error) {
	bands := make([]any, 0, len(c.Bands))
	for _, band := range c.Bands {
		bands = append(bands, map[string]any{
			"category": string(band.Category),
			"min":      band.Min,
			"max":      band.Max,
		})
	}

	view := map[string]any{
		"policy_id":      c.PolicyID,
		"policy_version": c.PolicyVersion,
		"scale": map[string]any{
			"min": c.Scale.Min,
			"max": c.Scale.Max,
		},
		"scoring": map[string]any{
			"method": c.Scoring.Method,
		},
		"bands": bands,
		"defaults": map[string]any{
			"high":     string(c.Defaults.High),
			"critical": string(c.Defaults.Critical),
		},
	}

	canonical, err := crypto.Canonicalize(view)
	if err != nil {
		return "", err
	}
	return crypto.DigestWithPrefix(canonical), nil
}
