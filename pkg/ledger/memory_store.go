package ledger

import (
	"sort"
	"sync"
)

// InMemoryStore keeps rows in maps behind one mutex. Record puts are
// idempotent: record IDs are content-addressed, so re-putting an existing ID
// is a no-op rather than a mutation.
type InMemoryStore struct {
	mu sync.Mutex

	policies map[string]PolicyVersionRecord
	records  map[string]RecordRow
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		policies: make(map[string]PolicyVersionRecord),
		records:  make(map[string]RecordRow),
	}
}

func (s *InMemoryStore) WithTx(fn func(Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn((*memTx)(s))
}

type memTx InMemoryStore

func (s *InMemoryStore) PutPolicyVersion(policy PolicyVersionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memTx)(s).PutPolicyVersion(policy)
}

func (s *InMemoryStore) GetPolicyVersion(policyHash string) (PolicyVersionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memTx)(s).GetPolicyVersion(policyHash)
}

func (s *InMemoryStore) PutRecord(rec RecordRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memTx)(s).PutRecord(rec)
}

func (s *InMemoryStore) GetRecord(recordID string) (RecordRow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memTx)(s).GetRecord(recordID)
}

func (s *InMemoryStore) ListByCase(caseID string) ([]RecordRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (*memTx)(s).ListByCase(caseID)
}

func (tx *memTx) PutPolicyVersion(policy PolicyVersionRecord) error {
	tx.policies[policy.PolicyHash] = policy
	return nil
}

func (tx *memTx) GetPolicyVersion(policyHash string) (PolicyVersionRecord, bool) {
	policy, ok := tx.policies[policyHash]
	return policy, ok
}

func (tx *memTx) PutRecord(rec RecordRow) error {
	if _, ok := tx.records[rec.RecordID]; ok {
		return nil
	}
	tx.records[rec.RecordID] = rec
	return nil
}

func (tx *memTx) GetRecord(recordID string) (RecordRow, bool) {
	rec, ok := tx.records[recordID]
	return rec, ok
}

// ListByCase returns all rows for a case ordered by creation time, record ID
// breaking ties, so history reads are deterministic.
func (tx *memTx) ListByCase(caseID string) ([]RecordRow, error) {
	out := []RecordRow{}
	for _, rec := range tx.records {
		if rec.CaseID == caseID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].RecordID < out[j].RecordID
	})
	return out, nil
}
