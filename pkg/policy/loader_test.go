package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davidahmann/veridict/pkg/types"
)

const policyYAML = `policy_id: veridict-baseline
policy_version: v1
scale:
  min: 1
  max: 5
scoring:
  method: multiply
bands:
  - category: low
    min: "0"
    max: "0.2"
  - category: medium
    min: "0.2"
    max: "0.4"
  - category: high
    min: "0.4"
    max: "0.7"
  - category: critical
    min: "0.7"
    max: "1"
defaults:
  high: mitigate
  critical: stop
`

func writePolicy(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	return path
}

func TestLoadPolicy(t *testing.T) {
	loaded, err := Load(writePolicy(t, policyYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Config.PolicyVersion != "v1" {
		t.Fatalf("unexpected version: %s", loaded.Config.PolicyVersion)
	}
	if !strings.HasPrefix(loaded.Hash, "sha256:") {
		t.Fatalf("expected sha256 hash, got %s", loaded.Hash)
	}
	if len(loaded.Bytes) == 0 {
		t.Fatalf("expected raw bytes retained")
	}
	if loaded.Config.Defaults.High != types.DecisionMitigate {
		t.Fatalf("unexpected high default: %s", loaded.Config.Defaults.High)
	}
	if got := loaded.Config.Bands[1].Max.String(); got != "0.4" {
		t.Fatalf("unexpected medium band max: %s", got)
	}
}

func TestLoadHashTracksBytes(t *testing.T) {
	a, err := Load(writePolicy(t, policyYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Same semantics, different bytes: trailing comment changes the hash.
	b, err := Load(writePolicy(t, policyYAML+"# note\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.Hash == b.Hash {
		t.Fatalf("expected hash to track raw bytes")
	}
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	bad := strings.Replace(policyYAML, `max: "0.4"`, `max: "0.5"`, 1)
	if _, err := Load(writePolicy(t, bad)); err == nil {
		t.Fatalf("expected validation error for overlapping bands")
	}

	bad = strings.Replace(policyYAML, `min: "0.2"`, `min: "zero point two"`, 1)
	if _, err := Load(writePolicy(t, bad)); err == nil {
		t.Fatalf("expected parse error for non-numeric bound")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
