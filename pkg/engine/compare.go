package engine

import (
	"fmt"
	"strconv"

	"github.com/davidahmann/veridict/pkg/types"
)

// Difference is one field-level divergence between two records.
type Difference struct {
	Field string
	A     string
	B     string
}

// Compare reports field-level differences between two sealed records.
// Records sealed under different policy versions are refused with
// ErrNotComparable; the engine never merges or upgrades across versions.
// Identity fields (record ID, case ID, timestamp, signature) are not
// compared.
func Compare(a, b Record) ([]Difference, error) {
	if a.policyVersion != b.policyVersion {
		return nil, fmt.Errorf("policy_version %q vs %q: %w",
			a.policyVersion, b.policyVersion, types.ErrNotComparable)
	}

	var diffs []Difference
	add := func(field, av, bv string) {
		if av != bv {
			diffs = append(diffs, Difference{Field: field, A: av, B: bv})
		}
	}

	add("policy_hash", a.policyHash, b.policyHash)
	add("input_hash", a.inputHash, b.inputHash)
	add("likelihood_norm", a.norm.Likelihood.String(), b.norm.Likelihood.String())
	add("impact_norm", a.norm.Impact.String(), b.norm.Impact.String())
	add("overall", a.overall.String(), b.overall.String())
	add("category", string(a.category), string(b.category))
	add("computed", string(a.computed), string(b.computed))
	add("applied", string(a.applied), string(b.applied))
	add("overridden", strconv.FormatBool(a.overridden), strconv.FormatBool(b.overridden))
	add("override_justification", a.overrideJustification, b.overrideJustification)
	add("rationale", rationaleDigest(a.rationale), rationaleDigest(b.rationale))

	return diffs, nil
}

func rationaleDigest(r types.Rationale) string {
	out := ""
	for _, s := range r {
		out += s.Code + "=" + s.Text + "\n"
	}
	return out
}
