package types

// Decision is a recommended action derived from a risk category.
type Decision string

const (
	DecisionAccept   Decision = "accept"
	DecisionReduce   Decision = "reduce"
	DecisionMitigate Decision = "mitigate"
	DecisionStop     Decision = "stop"
	DecisionEscalate Decision = "escalate"
)

func (d Decision) Valid() bool {
	switch d {
	case DecisionAccept, DecisionReduce, DecisionMitigate, DecisionStop, DecisionEscalate:
		return true
	default:
		return false
	}
}

// Override is a human substitution of the applied decision. It never alters
// the computed decision, and it is rejected without a justification.
type Override struct {
	Decision      Decision `json:"decision"`
	Justification string   `json:"justification"`
}
