package engine

import (
	"testing"

	"github.com/davidahmann/veridict/pkg/types"
)

func baseInput() types.RiskInput {
	return types.RiskInput{
		Likelihood: types.LikelihoodInput{
			Raw:        4,
			Confidence: 3,
			Basis:      types.BasisExpertJudgement,
			Signals:    []string{"vendor incident history", "expired pen test"},
		},
		Impact: types.ImpactInput{
			Domains:              []types.ImpactDomain{types.DomainFinancial, types.DomainReputation},
			WorstCredibleOutcome: "six figure remediation spend and churned accounts",
			Reversibility:        types.ReversiblePartially,
			Raw:                  3,
			Confidence:           4,
			AcceptabilityHint:    types.AcceptabilityConditional,
		},
	}
}

func TestFingerprintStable(t *testing.T) {
	a, err := Fingerprint(baseInput())
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, err := Fingerprint(baseInput())
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if a != b {
		t.Fatalf("fingerprint not stable: %s vs %s", a, b)
	}
}

func TestFingerprintIgnoresDomainOrder(t *testing.T) {
	a, err := Fingerprint(baseInput())
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}

	shuffled := baseInput()
	shuffled.Impact.Domains = []types.ImpactDomain{types.DomainReputation, types.DomainFinancial}
	b, err := Fingerprint(shuffled)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}

	if a != b {
		t.Fatalf("domain set order changed the fingerprint")
	}
}

func TestFingerprintSensitiveToEveryField(t *testing.T) {
	base, err := Fingerprint(baseInput())
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}

	mutations := map[string]func(*types.RiskInput){
		"likelihood raw":        func(in *types.RiskInput) { in.Likelihood.Raw = 5 },
		"likelihood confidence": func(in *types.RiskInput) { in.Likelihood.Confidence = 2 },
		"likelihood basis":      func(in *types.RiskInput) { in.Likelihood.Basis = types.BasisAssumption },
		"signals":               func(in *types.RiskInput) { in.Likelihood.Signals = []string{"vendor incident history"} },
		"signal order":          func(in *types.RiskInput) { in.Likelihood.Signals = []string{"expired pen test", "vendor incident history"} },
		"impact raw":            func(in *types.RiskInput) { in.Impact.Raw = 4 },
		"impact confidence":     func(in *types.RiskInput) { in.Impact.Confidence = 1 },
		"domains":               func(in *types.RiskInput) { in.Impact.Domains = []types.ImpactDomain{types.DomainFinancial} },
		"worst outcome":         func(in *types.RiskInput) { in.Impact.WorstCredibleOutcome = "minor rework" },
		"reversibility":         func(in *types.RiskInput) { in.Impact.Reversibility = types.ReversibleFully },
		"acceptability hint":    func(in *types.RiskInput) { in.Impact.AcceptabilityHint = types.AcceptabilityNo },
	}

	for name, mutate := range mutations {
		input := baseInput()
		mutate(&input)
		got, err := Fingerprint(input)
		if err != nil {
			t.Fatalf("fingerprint after %s: %v", name, err)
		}
		if got == base {
			t.Fatalf("mutation %q did not change the fingerprint", name)
		}
	}
}

func TestFingerprintTreatsNilAndEmptySignalsAlike(t *testing.T) {
	a := baseInput()
	a.Likelihood.Signals = nil
	b := baseInput()
	b.Likelihood.Signals = []string{}

	ha, err := Fingerprint(a)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	hb, err := Fingerprint(b)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if ha != hb {
		t.Fatalf("nil and empty signals fingerprint differently")
	}
}
