// Package ban contains device ban lookup and administration use cases.
package ban

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Fingerprint derives a stable device fingerprint from a set of device
// signals (hardware IDs, OS identifiers, and similar). Signals are
// canonicalized as sorted key=value lines so that map iteration order
// never changes the digest.
func Fingerprint(signals map[string]string) string {
	keys := make([]string, 0, len(signals))
	for k := range signals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(signals[k])
		b.WriteByte('\n')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
