package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/davidahmann/veridict/pkg/engine"
	"github.com/davidahmann/veridict/pkg/policy"
	"github.com/davidahmann/veridict/pkg/types"
)

func sealRecord(t *testing.T, caseID string, rawImpact int, at string) engine.Record {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, at)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	input := types.RiskInput{
		Likelihood: types.LikelihoodInput{
			Raw:        4,
			Confidence: 3,
			Basis:      types.BasisExpertJudgement,
			Signals:    []string{"vendor incident history"},
		},
		Impact: types.ImpactInput{
			Domains:              []types.ImpactDomain{types.DomainFinancial},
			WorstCredibleOutcome: "six figure remediation spend",
			Reversibility:        types.ReversiblePartially,
			Raw:                  rawImpact,
			Confidence:           4,
			AcceptabilityHint:    types.AcceptabilityConditional,
		},
	}
	rec, err := engine.Evaluate(input, policy.Baseline(), nil, engine.Options{
		CaseID: caseID,
		Clock:  func() time.Time { return ts },
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	return rec
}

func TestStorePolicyVersionRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	pol := policy.Baseline()
	const yamlBody = "policy_id: veridict-baseline\npolicy_version: v1\n"

	err := store.PutPolicyVersion(PolicyVersionRecord{
		PolicyHash:    pol.Hash,
		PolicyID:      pol.Config.PolicyID,
		PolicyVersion: pol.Config.PolicyVersion,
		PolicyYAML:    yamlBody,
		CreatedAt:     "2026-08-25T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("put policy version: %v", err)
	}

	got, ok := store.GetPolicyVersion(pol.Hash)
	if !ok {
		t.Fatalf("policy version not found")
	}
	if got.PolicyVersion != pol.Config.PolicyVersion || got.PolicyYAML != yamlBody {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if _, ok := store.GetPolicyVersion("sha256:missing"); ok {
		t.Fatalf("unexpected hit for unknown hash")
	}
}

func TestStoreRecordRoundTrip(t *testing.T) {
	store := NewInMemoryStore()
	rec := sealRecord(t, "case-1", 3, "2026-08-25T09:00:00Z")

	row := RowFromRecord(rec, nil)
	if err := store.PutRecord(row); err != nil {
		t.Fatalf("put record: %v", err)
	}

	got, ok := store.GetRecord(rec.RecordID())
	if !ok {
		t.Fatalf("record not found")
	}
	if got.CaseID != "case-1" || got.Category != "medium" || got.Applied != "reduce" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.SupersedesRecordID != nil {
		t.Fatalf("unexpected supersedes link")
	}
	if len(got.BodyJSON) == 0 {
		t.Fatalf("body not persisted")
	}
}

func TestStorePutRecordIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	rec := sealRecord(t, "case-1", 3, "2026-08-25T09:00:00Z")

	row := RowFromRecord(rec, nil)
	if err := store.PutRecord(row); err != nil {
		t.Fatalf("put record: %v", err)
	}

	// Re-putting the same content-addressed ID must not clobber the row.
	altered := row
	altered.Category = "critical"
	if err := store.PutRecord(altered); err != nil {
		t.Fatalf("second put: %v", err)
	}

	got, _ := store.GetRecord(rec.RecordID())
	if got.Category != "medium" {
		t.Fatalf("idempotent put overwrote the row: %+v", got)
	}
}

func TestStoreListByCaseOrdering(t *testing.T) {
	store := NewInMemoryStore()

	first := sealRecord(t, "case-1", 3, "2026-08-25T09:00:00Z")
	second := sealRecord(t, "case-1", 4, "2026-08-25T11:00:00Z")
	other := sealRecord(t, "case-2", 3, "2026-08-25T10:00:00Z")

	firstID := first.RecordID()
	if err := store.PutRecord(RowFromRecord(second, &firstID)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.PutRecord(RowFromRecord(first, nil)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.PutRecord(RowFromRecord(other, nil)); err != nil {
		t.Fatalf("put: %v", err)
	}

	rows, err := store.ListByCase("case-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].RecordID != first.RecordID() || rows[1].RecordID != second.RecordID() {
		t.Fatalf("rows out of order: %s then %s", rows[0].RecordID, rows[1].RecordID)
	}
	if rows[1].SupersedesRecordID == nil || *rows[1].SupersedesRecordID != first.RecordID() {
		t.Fatalf("supersedes link lost: %+v", rows[1])
	}

	empty, err := store.ListByCase("case-none")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no rows, got %d", len(empty))
	}
}

func TestStoreWithTx(t *testing.T) {
	store := NewInMemoryStore()
	rec := sealRecord(t, "case-tx", 3, "2026-08-25T09:00:00Z")
	pol := policy.Baseline()

	err := store.WithTx(func(tx Tx) error {
		if err := tx.PutPolicyVersion(PolicyVersionRecord{
			PolicyHash:    pol.Hash,
			PolicyVersion: pol.Config.PolicyVersion,
		}); err != nil {
			return err
		}
		return tx.PutRecord(RowFromRecord(rec, nil))
	})
	if err != nil {
		t.Fatalf("with tx: %v", err)
	}

	if _, ok := store.GetRecord(rec.RecordID()); !ok {
		t.Fatalf("record not visible after tx")
	}
	if _, ok := store.GetPolicyVersion(pol.Hash); !ok {
		t.Fatalf("policy version not visible after tx")
	}

	sentinel := errors.New("boom")
	if err := store.WithTx(func(Tx) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("expected callback error, got %v", err)
	}
}
