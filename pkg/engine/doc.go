// Package engine runs the deterministic risk evaluation pipeline and seals
// its result into an immutable audit record.
//
// One evaluation walks a fixed state machine:
//
//	Draft -> Scored -> Classified -> Decided -> Sealed
//
// No stage may be skipped and no backward transition exists. Every stage is
// pure: it reads its predecessor's output plus the read-only policy
// configuration. The single permitted source of non-determinism is the UTC
// timestamp captured exactly once at seal time; it influences nothing but
// the record's created_at field. Evaluations under different policies can
// therefore run concurrently without coordination, provided each policy
// value is treated as read-only once published.
package engine
