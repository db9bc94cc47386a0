package mock

import "context"

// IPResolver returns a fixed address, standing in for the public IP lookup
// service during tests.
type IPResolver struct {
	Address string
	Err     error
}

func NewIPResolver(address string) *IPResolver {
	return &IPResolver{Address: address}
}

func (r *IPResolver) Resolve(ctx context.Context) (string, error) {
	if r.Err != nil {
		return "", r.Err
	}
	return r.Address, nil
}
