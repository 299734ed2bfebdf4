package repository

import (
	"context"
	"sync"

	"storefront_checkout/internal/usecase/interfaces"
)

// CheckoutStateMemoryRepository keeps draft snapshots in process memory.
// Snapshots survive session eviction but not a restart.
type CheckoutStateMemoryRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ interfaces.ICheckoutStateStorage = (*CheckoutStateMemoryRepository)(nil)

func NewCheckoutStateMemoryRepository() *CheckoutStateMemoryRepository {
	return &CheckoutStateMemoryRepository{items: make(map[string][]byte)}
}

func (r *CheckoutStateMemoryRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (r *CheckoutStateMemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = append([]byte(nil), value...)
	return nil
}

func (r *CheckoutStateMemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}
