package interfaces

import "context"

// IClientIPLookup never fails; implementations return a fixed fallback
// address instead.
//
//go:generate mockgen -source=client_ip_lookup_interface.go -destination=mocks/client_ip_lookup_interface_mock.go -package=mock_interfaces
type IClientIPLookup interface {
	GetClientIP(ctx context.Context) string
}
