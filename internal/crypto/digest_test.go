package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestDigestWithPrefix(t *testing.T) {
	got := DigestWithPrefix([]byte("hello"))
	if !strings.HasPrefix(got, "sha256:") {
		t.Fatalf("expected sha256 prefix, got %s", got)
	}
	if got != "sha256:"+DigestHex([]byte("hello")) {
		t.Fatalf("prefix digest mismatch: %s", got)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	priv, pub, err := KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	digest := DigestBytes([]byte("payload"))
	sig, err := SignEd25519(priv, digest)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	ok, err := VerifyEd25519(pub, digest, sig)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected valid signature")
	}

	other := DigestBytes([]byte("tampered"))
	ok, err = VerifyEd25519(pub, other, sig)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected invalid signature for different digest")
	}
}

func TestSignRejectsBadDigestLength(t *testing.T) {
	seed := bytes.Repeat([]byte{0x07}, 32)
	priv, pub, err := KeyPairFromSeed(seed)
	if err != nil {
		t.Fatalf("keypair: %v", err)
	}

	if _, err := SignEd25519(priv, []byte("short")); err != ErrInvalidDigestLen {
		t.Fatalf("expected ErrInvalidDigestLen, got %v", err)
	}
	if _, err := VerifyEd25519(pub, []byte("short"), nil); err != ErrInvalidDigestLen {
		t.Fatalf("expected ErrInvalidDigestLen, got %v", err)
	}
}

func TestKeyPairFromSeedRejectsBadSize(t *testing.T) {
	if _, _, err := KeyPairFromSeed([]byte("short")); err != ErrInvalidSeedSize {
		t.Fatalf("expected ErrInvalidSeedSize, got %v", err)
	}
}
