package types

type LikelihoodBasis string

const (
	BasisHistoricalData  LikelihoodBasis = "historical_data"
	BasisMeasuredData    LikelihoodBasis = "measured_data"
	BasisExpertJudgement LikelihoodBasis = "expert_judgement"
	BasisAssumption      LikelihoodBasis = "assumption"
)

func (b LikelihoodBasis) Valid() bool {
	switch b {
	case BasisHistoricalData, BasisMeasuredData, BasisExpertJudgement, BasisAssumption:
		return true
	default:
		return false
	}
}

type ImpactDomain string

const (
	DomainFinancial       ImpactDomain = "financial"
	DomainLegalCompliance ImpactDomain = "legal_or_compliance"
	DomainOperational     ImpactDomain = "operational"
	DomainSafety          ImpactDomain = "safety"
	DomainReputation      ImpactDomain = "reputation"
	DomainStrategic       ImpactDomain = "strategic"
)

func (d ImpactDomain) Valid() bool {
	switch d {
	case DomainFinancial, DomainLegalCompliance, DomainOperational,
		DomainSafety, DomainReputation, DomainStrategic:
		return true
	default:
		return false
	}
}

type Reversibility string

const (
	ReversibleFully     Reversibility = "fully"
	ReversiblePartially Reversibility = "partially"
	ReversibleNot       Reversibility = "not_reversible"
)

func (r Reversibility) Valid() bool {
	switch r {
	case ReversibleFully, ReversiblePartially, ReversibleNot:
		return true
	default:
		return false
	}
}

type AcceptabilityHint string

const (
	AcceptabilityYes         AcceptabilityHint = "yes"
	AcceptabilityNo          AcceptabilityHint = "no"
	AcceptabilityConditional AcceptabilityHint = "only_under_conditions"
)

func (a AcceptabilityHint) Valid() bool {
	switch a {
	case AcceptabilityYes, AcceptabilityNo, AcceptabilityConditional:
		return true
	default:
		return false
	}
}

// LikelihoodInput carries the raw likelihood dimension. Confidence is inert
// metadata: it is range-checked, fingerprinted and echoed in records, but it
// never enters scoring arithmetic.
type LikelihoodInput struct {
	Raw        int             `json:"raw"`
	Confidence int             `json:"confidence"`
	Basis      LikelihoodBasis `json:"basis"`
	Signals    []string        `json:"signals,omitempty"`
}

// ImpactInput carries the raw impact dimension. Domains is a set; element
// order never affects the fingerprint.
type ImpactInput struct {
	Domains              []ImpactDomain    `json:"domains"`
	WorstCredibleOutcome string            `json:"worst_credible_outcome"`
	Reversibility        Reversibility     `json:"reversibility"`
	Raw                  int               `json:"raw"`
	Confidence           int               `json:"confidence"`
	AcceptabilityHint    AcceptabilityHint `json:"acceptability_hint"`
}

// RiskInput is the fully assembled input snapshot handed to the pipeline.
// It is consumed once and never mutated.
type RiskInput struct {
	Likelihood LikelihoodInput `json:"likelihood"`
	Impact     ImpactInput     `json:"impact"`
}
