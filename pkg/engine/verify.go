package engine

import (
	"crypto/ed25519"

	"github.com/davidahmann/veridict/internal/crypto"
)

// Verify checks that the record ID still addresses the sealed body and that
// the signature over the body digest is valid.
func Verify(rec Record, publicKey ed25519.PublicKey) error {
	digestBytes := crypto.DigestBytes(rec.body)
	digest := crypto.DigestWithPrefix(rec.body)
	if rec.recordID != digest {
		return ErrRecordDigestMismatch
	}

	if len(rec.sig) == 0 {
		return ErrRecordUnsigned
	}

	ok, err := crypto.VerifyEd25519(publicKey, digestBytes, rec.sig)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRecordSignature
	}
	return nil
}
