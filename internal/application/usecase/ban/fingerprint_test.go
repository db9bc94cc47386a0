package ban

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	signals := map[string]string{
		"machine_id": "abc-123",
		"os":         "linux",
		"hostname":   "workstation",
	}

	first := Fingerprint(signals)
	second := Fingerprint(signals)

	if first != second {
		t.Errorf("expected identical fingerprints, got %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := map[string]string{"os": "linux", "machine_id": "abc"}
	b := map[string]string{"machine_id": "abc", "os": "linux"}

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("expected fingerprint to be independent of signal insertion order")
	}
}

func TestFingerprint_SensitiveToValues(t *testing.T) {
	a := Fingerprint(map[string]string{"machine_id": "abc"})
	b := Fingerprint(map[string]string{"machine_id": "abd"})

	if a == b {
		t.Error("expected different signals to produce different fingerprints")
	}
}

func TestFingerprint_KnownDigest(t *testing.T) {
	got := Fingerprint(map[string]string{"os": "linux"})

	sum := sha256.Sum256([]byte("os=linux\n"))
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFingerprint_EmptySignals(t *testing.T) {
	got := Fingerprint(nil)

	sum := sha256.Sum256(nil)
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Errorf("expected digest of empty input %s, got %s", want, got)
	}
}
