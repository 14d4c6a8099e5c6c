package engine

import (
	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

// Options tune one evaluation run. The zero value is valid: a generated
// case ID, the system clock, no signature.
type Options struct {
	CaseID string
	Clock  Clock
	Signer Signer
}

// Evaluate runs the full pipeline over one input under one policy and
// returns the sealed record. On any error nothing observable is produced.
func Evaluate(input types.RiskInput, pol policy.Loaded, override *types.Override, opts Options) (Record, error) {
	e, err := NewEvaluation(input, pol, opts.CaseID)
	if err != nil {
		return Record{}, err
	}
	if err := e.Score(); err != nil {
		return Record{}, err
	}
	if err := e.Classify(); err != nil {
		return Record{}, err
	}
	if err := e.Decide(override); err != nil {
		return Record{}, err
	}
	return e.Seal(opts.Clock, opts.Signer)
}
