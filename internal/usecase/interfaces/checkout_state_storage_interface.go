package interfaces

import "context"

// ICheckoutStateStorage is the durable key/value store behind draft
// snapshots. Get reports found=false for a missing key.
//
//go:generate mockgen -source=checkout_state_storage_interface.go -destination=mocks/checkout_state_storage_interface_mock.go -package=mock_interfaces
type ICheckoutStateStorage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
