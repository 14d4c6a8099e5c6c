// Package ledger defines the persistence boundary for sealed audit records.
// Durable storage is the embedding caller's responsibility; the in-memory
// implementation here is the reference store used by tests and small tools.
package ledger

import (
	"github.com/davidahmann/veridict/pkg/engine"
)

type Store interface {
	WithTx(fn func(Tx) error) error

	PutPolicyVersion(policy PolicyVersionRecord) error
	GetPolicyVersion(policyHash string) (PolicyVersionRecord, bool)

	PutRecord(rec RecordRow) error
	GetRecord(recordID string) (RecordRow, bool)
	ListByCase(caseID string) ([]RecordRow, error)
}

type Tx interface {
	PutPolicyVersion(policy PolicyVersionRecord) error
	GetPolicyVersion(policyHash string) (PolicyVersionRecord, bool)

	PutRecord(rec RecordRow) error
	GetRecord(recordID string) (RecordRow, bool)
	ListByCase(caseID string) ([]RecordRow, error)
}

// PolicyVersionRecord pins the exact policy bytes a record was sealed under.
type PolicyVersionRecord struct {
	PolicyHash    string
	PolicyID      string
	PolicyVersion string
	PolicyYAML    string
	CreatedAt     string
}

// RecordRow is the flattened storage shape of a sealed record. The canonical
// body carries the full snapshot; the scalar columns exist for lookup.
type RecordRow struct {
	RecordID           string
	CaseID             string
	PolicyHash         string
	PolicyVersion      string
	InputHash          string
	Category           string
	Computed           string
	Applied            string
	Overridden         bool
	SupersedesRecordID *string
	CreatedAt          string
	BodyJSON           []byte
	KeyID              string
	Sig                []byte
}

// RowFromRecord flattens a sealed record for storage. supersedes links a
// re-evaluation to the record it replaces; a sealed record is never edited,
// only superseded.
func RowFromRecord(rec engine.Record, supersedes *string) RecordRow {
	return RecordRow{
		RecordID:           rec.RecordID(),
		CaseID:             rec.CaseID(),
		PolicyHash:         rec.PolicyHash(),
		PolicyVersion:      rec.PolicyVersion(),
		InputHash:          rec.InputHash(),
		Category:           string(rec.Category()),
		Computed:           string(rec.Computed()),
		Applied:            string(rec.Applied()),
		Overridden:         rec.Overridden(),
		SupersedesRecordID: supersedes,
		CreatedAt:          rec.CreatedAt(),
		BodyJSON:           rec.Body(),
		KeyID:              rec.KeyID(),
		Sig:                rec.Signature(),
	}
}
