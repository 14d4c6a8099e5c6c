package types

import "github.com/shopspring/decimal"

// NormalizedScore holds both dimensions rescaled to [0,1].
// Decimal keeps the values exact so rationale and record bodies are
// byte-reproducible.
type NormalizedScore struct {
	Likelihood decimal.Decimal `json:"likelihood_norm"`
	Impact     decimal.Decimal `json:"impact_norm"`
}

// Statement is one rationale entry, tied to a single pipeline stage.
type Statement struct {
	Code string `json:"code"`
	Text string `json:"text"`
}

// Rationale is the ordered factor trail behind a decision. Identical
// (input, policy) pairs always regenerate an identical sequence.
type Rationale []Statement
