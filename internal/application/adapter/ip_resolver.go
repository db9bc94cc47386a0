package adapter

import "context"

// IPResolver resolves the public IP address of the current host.
// Resolution is best-effort: callers must treat errors as "IP unknown"
// rather than failures.
type IPResolver interface {
	Resolve(ctx context.Context) (string, error)
}
