package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidahmann/veridict/internal/crypto"
	"github.com/davidahmann/veridict/pkg/types"
)

// RecordSchema versions the sealed body layout.
const RecordSchema = "veridict.audit.v1"

// Signer optionally signs sealed record digests for tamper evidence.
type Signer interface {
	KeyID() string
	SignEd25519(digest []byte) ([]byte, error)
}

// Record is one sealed evaluation. All fields are unexported and every
// accessor returns a copy: a Record is never mutated after Seal, only
// superseded by a new evaluation.
type Record struct {
	recordID string
	schema   string
	caseID   string

	policyID      string
	policyVersion string
	policyHash    string

	createdAt string
	inputHash string
	input     types.RiskInput

	norm     types.NormalizedScore
	overall  decimal.Decimal
	category types.RiskCategory

	computed              types.Decision
	applied               types.Decision
	tieBreak              bool
	overridden            bool
	overrideJustification string

	rationale types.Rationale

	body  []byte
	keyID string
	sig   []byte
}

// Seal captures the timestamp once, canonicalizes the full snapshot into the
// record body, derives the content-addressed record ID and optionally signs
// the digest. Decided -> Sealed, terminal. Seal is all-or-nothing: on error
// the evaluation stays in Decided and no partial record escapes.
func (e *Evaluation) Seal(clock Clock, signer Signer) (Record, error) {
	if err := e.require(StageDecided); err != nil {
		return Record{}, err
	}

	if clock == nil {
		clock = time.Now
	}
	createdAt := clock().UTC().Format(time.RFC3339Nano)

	decision := map[string]any{
		"computed":   string(e.outcome.Computed),
		"applied":    string(e.outcome.Applied),
		"tie_break":  e.outcome.TieBreak,
		"overridden": e.outcome.Overridden,
	}
	if e.outcome.Overridden {
		decision["justification"] = e.outcome.Justification
	}

	statements := make([]any, 0, len(e.rationale))
	for _, s := range e.rationale {
		statements = append(statements, map[string]any{
			"code": s.Code,
			"text": s.Text,
		})
	}

	body := map[string]any{
		"schema":     RecordSchema,
		"case_id":    e.caseID,
		"created_at": createdAt,
		"policy": map[string]any{
			"policy_id":      e.cfg.PolicyID,
			"policy_version": e.cfg.PolicyVersion,
			"policy_hash":    e.policyHash,
		},
		"input":      inputView(e.input),
		"input_hash": e.inputHash,
		"normalized": map[string]any{
			"likelihood_norm": e.norm.Likelihood,
			"impact_norm":     e.norm.Impact,
		},
		"overall":   e.overall,
		"category":  string(e.category),
		"decision":  decision,
		"rationale": statements,
	}

	canonical, err := crypto.Canonicalize(body)
	if err != nil {
		return Record{}, err
	}
	recordID := crypto.DigestWithPrefix(canonical)

	var keyID string
	var sig []byte
	if signer != nil {
		sig, err = signer.SignEd25519(crypto.DigestBytes(canonical))
		if err != nil {
			return Record{}, err
		}
		keyID = signer.KeyID()
	}

	e.stage = StageSealed

	return Record{
		recordID:              recordID,
		schema:                RecordSchema,
		caseID:                e.caseID,
		policyID:              e.cfg.PolicyID,
		policyVersion:         e.cfg.PolicyVersion,
		policyHash:            e.policyHash,
		createdAt:             createdAt,
		inputHash:             e.inputHash,
		input:                 cloneInput(e.input),
		norm:                  e.norm,
		overall:               e.overall,
		category:              e.category,
		computed:              e.outcome.Computed,
		applied:               e.outcome.Applied,
		tieBreak:              e.outcome.TieBreak,
		overridden:            e.outcome.Overridden,
		overrideJustification: e.outcome.Justification,
		rationale:             append(types.Rationale(nil), e.rationale...),
		body:                  canonical,
		keyID:                 keyID,
		sig:                   sig,
	}, nil
}

func (r Record) RecordID() string { return r.recordID }

func (r Record) Schema() string { return r.schema }

func (r Record) CaseID() string { return r.caseID }

func (r Record) PolicyID() string { return r.policyID }

func (r Record) PolicyVersion() string { return r.policyVersion }

func (r Record) PolicyHash() string { return r.policyHash }

// CreatedAt is the RFC 3339 UTC seal timestamp.
func (r Record) CreatedAt() string { return r.createdAt }

func (r Record) InputHash() string { return r.inputHash }

// Input returns a copy of the raw input snapshot.
func (r Record) Input() types.RiskInput { return cloneInput(r.input) }

func (r Record) Normalized() types.NormalizedScore { return r.norm }

func (r Record) Overall() decimal.Decimal { return r.overall }

func (r Record) Category() types.RiskCategory { return r.category }

// Computed is the baseline decision; Applied is what was actually carried
// out, which diverges only under a justified override.
func (r Record) Computed() types.Decision { return r.computed }

func (r Record) Applied() types.Decision { return r.applied }

func (r Record) TieBreak() bool { return r.tieBreak }

func (r Record) Overridden() bool { return r.overridden }

func (r Record) OverrideJustification() string { return r.overrideJustification }

func (r Record) Rationale() types.Rationale {
	return append(types.Rationale(nil), r.rationale...)
}

// Body returns a copy of the canonical sealed bytes the record ID addresses.
func (r Record) Body() []byte {
	return append([]byte(nil), r.body...)
}

func (r Record) KeyID() string { return r.keyID }

func (r Record) Signature() []byte {
	return append([]byte(nil), r.sig...)
}
