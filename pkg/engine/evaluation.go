package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/internal/classify"
	"github.com/davidahmann/veridict/internal/explain"
	"github.com/davidahmann/veridict/internal/rules"
	"github.com/davidahmann/veridict/internal/score"
	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

type Stage string

const (
	StageDraft      Stage = "draft"
	StageScored     Stage = "scored"
	StageClassified Stage = "classified"
	StageDecided    Stage = "decided"
	StageSealed     Stage = "sealed"
)

// Clock supplies the seal timestamp. It is read exactly once per evaluation.
type Clock func() time.Time

// Evaluation is one in-flight pass through the pipeline. It owns a private
// input snapshot; discarding a pre-seal evaluation has no observable effect.
type Evaluation struct {
	caseID     string
	stage      Stage
	cfg        policy.Config
	policyHash string

	input     types.RiskInput
	inputHash string

	norm      types.NormalizedScore
	overall   decimal.Decimal
	band      policy.Band
	category  types.RiskCategory
	outcome   rules.Outcome
	rationale types.Rationale
}

// NewEvaluation validates the policy and the input structure, fingerprints
// the input, and opens a Draft. An empty caseID gets a generated UUID.
func NewEvaluation(input types.RiskInput, pol policy.Loaded, caseID string) (*Evaluation, error) {
	if err := pol.Config.Validate(); err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}
	if err := validateStructure(input); err != nil {
		return nil, err
	}

	inputHash, err := Fingerprint(input)
	if err != nil {
		return nil, err
	}

	if caseID == "" {
		caseID = uuid.NewString()
	}

	return &Evaluation{
		caseID:     caseID,
		stage:      StageDraft,
		cfg:        pol.Config,
		policyHash: pol.Hash,
		input:      cloneInput(input),
		inputHash:  inputHash,
	}, nil
}

func (e *Evaluation) CaseID() string {
	return e.caseID
}

func (e *Evaluation) Stage() Stage {
	return e.stage
}

func (e *Evaluation) InputHash() string {
	return e.inputHash
}

// Score validates the scalar ratings, normalizes both dimensions and
// aggregates them. Draft -> Scored.
func (e *Evaluation) Score() error {
	if err := e.require(StageDraft); err != nil {
		return err
	}

	if err := score.ValidateConfidence(e.input.Likelihood.Confidence, e.cfg.Scale); err != nil {
		return fmt.Errorf("likelihood: %w", err)
	}
	if err := score.ValidateConfidence(e.input.Impact.Confidence, e.cfg.Scale); err != nil {
		return fmt.Errorf("impact: %w", err)
	}

	likelihood, err := score.Normalize(e.input.Likelihood.Raw, e.cfg.Scale)
	if err != nil {
		return fmt.Errorf("likelihood: %w", err)
	}
	impact, err := score.Normalize(e.input.Impact.Raw, e.cfg.Scale)
	if err != nil {
		return fmt.Errorf("impact: %w", err)
	}

	overall, err := score.Aggregate(likelihood, impact, e.cfg.Scoring)
	if err != nil {
		return err
	}

	e.norm = types.NormalizedScore{Likelihood: likelihood, Impact: impact}
	e.overall = overall
	e.stage = StageScored
	return nil
}

// Classify places the overall score in its policy band. Scored -> Classified.
func (e *Evaluation) Classify() error {
	if err := e.require(StageScored); err != nil {
		return err
	}

	category, band, err := classify.Classify(e.overall, e.cfg.Bands)
	if err != nil {
		return err
	}

	e.category = category
	e.band = band
	e.stage = StageClassified
	return nil
}

// Decide resolves the baseline decision, applies the optional override and
// builds the rationale. Classified -> Decided.
func (e *Evaluation) Decide(override *types.Override) error {
	if err := e.require(StageClassified); err != nil {
		return err
	}

	outcome, err := rules.Decide(e.category, e.cfg.Defaults, override)
	if err != nil {
		return err
	}

	e.outcome = outcome
	e.rationale = explain.Build(e.cfg, e.input, e.norm, e.overall, e.band, outcome)
	e.stage = StageDecided
	return nil
}

func (e *Evaluation) require(want Stage) error {
	if e.stage == StageSealed {
		return ErrSealed
	}
	if e.stage != want {
		return fmt.Errorf("stage %s, need %s: %w", e.stage, want, ErrStageOrder)
	}
	return nil
}

func validateStructure(input types.RiskInput) error {
	if !input.Likelihood.Basis.Valid() {
		return fmt.Errorf("likelihood basis %q: %w", input.Likelihood.Basis, types.ErrInvalidInput)
	}
	if len(input.Impact.Domains) == 0 {
		return fmt.Errorf("at least one impact domain is required: %w", types.ErrInvalidInput)
	}
	for _, d := range input.Impact.Domains {
		if !d.Valid() {
			return fmt.Errorf("impact domain %q: %w", d, types.ErrInvalidInput)
		}
	}
	if !input.Impact.Reversibility.Valid() {
		return fmt.Errorf("reversibility %q: %w", input.Impact.Reversibility, types.ErrInvalidInput)
	}
	if !input.Impact.AcceptabilityHint.Valid() {
		return fmt.Errorf("acceptability hint %q: %w", input.Impact.AcceptabilityHint, types.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Impact.WorstCredibleOutcome) == "" {
		return fmt.Errorf("worst credible outcome is required: %w", types.ErrInvalidInput)
	}
	return nil
}

func cloneInput(input types.RiskInput) types.RiskInput {
	out := input
	if input.Likelihood.Signals != nil {
		out.Likelihood.Signals = append([]string(nil), input.Likelihood.Signals...)
	}
	if input.Impact.Domains != nil {
		out.Impact.Domains = append([]types.ImpactDomain(nil), input.Impact.Domains...)
	}
	return out
}
