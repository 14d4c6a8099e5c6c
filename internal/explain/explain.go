// Package explain renders the deterministic rationale trail: one statement
// per pipeline stage, regenerable byte-for-byte from the same input and
// policy.
package explain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/internal/rules"
	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

const (
	CodeNormalizeLikelihood = "NORMALIZE_LIKELIHOOD"
	CodeNormalizeImpact     = "NORMALIZE_IMPACT"
	CodeAggregate           = "AGGREGATE"
	codeBandMatch           = "BAND_MATCH:"
	codeDecision            = "DECISION:"
	codeOverride            = "OVERRIDE:"
)

// Build produces the ordered rationale for one evaluation. Statement order
// mirrors stage order; texts use canonical decimal rendering so identical
// evaluations yield identical bytes.
func Build(cfg policy.Config, input types.RiskInput, norm types.NormalizedScore,
	overall decimal.Decimal, band policy.Band, outcome rules.Outcome) types.Rationale {

	rationale := types.Rationale{
		{
			Code: CodeNormalizeLikelihood,
			Text: fmt.Sprintf("likelihood raw %d on scale %d-%d normalized to %s",
				input.Likelihood.Raw, cfg.Scale.Min, cfg.Scale.Max, norm.Likelihood),
		},
		{
			Code: CodeNormalizeImpact,
			Text: fmt.Sprintf("impact severity raw %d on scale %d-%d normalized to %s",
				input.Impact.Raw, cfg.Scale.Min, cfg.Scale.Max, norm.Impact),
		},
		{
			Code: CodeAggregate,
			Text: fmt.Sprintf("overall risk %s = %s * %s (method %s)",
				overall, norm.Likelihood, norm.Impact, cfg.Scoring.Method),
		},
		{
			Code: codeBandMatch + string(band.Category),
			Text: fmt.Sprintf("overall %s falls in %s band %s",
				overall, band.Category, bandInterval(cfg, band)),
		},
	}

	decisionText := fmt.Sprintf("category %s maps to %s", band.Category, outcome.Computed)
	if outcome.TieBreak {
		decisionText = fmt.Sprintf("category %s resolved to %s by policy tie-break default",
			band.Category, outcome.Computed)
	}
	rationale = append(rationale, types.Statement{
		Code: codeDecision + string(outcome.Computed),
		Text: decisionText,
	})

	if outcome.Overridden {
		rationale = append(rationale, types.Statement{
			Code: codeOverride + string(outcome.Applied),
			Text: fmt.Sprintf("override applied %s over computed %s: %s",
				outcome.Applied, outcome.Computed, outcome.Justification),
		})
	}

	return rationale
}

func bandInterval(cfg policy.Config, band policy.Band) string {
	closing := ")"
	if len(cfg.Bands) > 0 && band.Category == cfg.Bands[len(cfg.Bands)-1].Category {
		closing = "]"
	}
	return fmt.Sprintf("[%s, %s%s", band.Min, band.Max, closing)
}
