package engine

import "errors"

var (
	ErrStageOrder           = errors.New("evaluation stage out of order")
	ErrSealed               = errors.New("evaluation already sealed")
	ErrRecordDigestMismatch = errors.New("record digest mismatch")
	ErrRecordSignature      = errors.New("record signature invalid")
	ErrRecordUnsigned       = errors.New("record is not signed")
)
