package engine

import (
	"sort"

	"github.com/davidahmann/veridict/internal/crypto"
	"github.com/davidahmann/veridict/pkg/types"
)

// Fingerprint computes the canonical content hash of a raw input. Field
// ordering is fixed by canonicalization, domain sets are sorted, and every
// field participates, confidence included: the hash is input identity for
// audit, not scoring equivalence.
func Fingerprint(input types.RiskInput) (string, error) {
	canonical, err := crypto.Canonicalize(inputView(input))
	if err != nil {
		return "", err
	}
	return crypto.DigestWithPrefix(canonical), nil
}

// inputView projects a RiskInput onto the canonical map shape shared by
// Fingerprint and the sealed record body.
func inputView(input types.RiskInput) map[string]any {
	likelihood := map[string]any{
		"raw":        input.Likelihood.Raw,
		"confidence": input.Likelihood.Confidence,
		"basis":      string(input.Likelihood.Basis),
	}
	// Signals are an ordered list; absent and empty are the same thing.
	if len(input.Likelihood.Signals) > 0 {
		likelihood["signals"] = append([]string(nil), input.Likelihood.Signals...)
	}

	domains := make([]string, 0, len(input.Impact.Domains))
	for _, d := range input.Impact.Domains {
		domains = append(domains, string(d))
	}
	sort.Strings(domains)

	impact := map[string]any{
		"raw":                    input.Impact.Raw,
		"confidence":             input.Impact.Confidence,
		"domains":                domains,
		"worst_credible_outcome": input.Impact.WorstCredibleOutcome,
		"reversibility":          string(input.Impact.Reversibility),
		"acceptability_hint":     string(input.Impact.AcceptabilityHint),
	}

	return map[string]any{
		"likelihood": likelihood,
		"impact":     impact,
	}
}
