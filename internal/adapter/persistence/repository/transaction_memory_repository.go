package repository

import (
	"context"
	"fmt"
	"sync"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"
)

// TransactionMemoryRepository is the default transaction store when no
// DynamoDB table is configured.
type TransactionMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Transaction
}

var _ interfaces.ITransactionRepository = (*TransactionMemoryRepository)(nil)

func NewTransactionMemoryRepository() *TransactionMemoryRepository {
	return &TransactionMemoryRepository{items: make(map[string]entities.Transaction)}
}

func (r *TransactionMemoryRepository) Create(_ context.Context, t entities.Transaction) (entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[t.ID]; exists {
		return entities.Transaction{}, fmt.Errorf("transaction %s already exists", t.ID)
	}
	r.items[t.ID] = t
	return t, nil
}

// GetByID returns an empty Transaction when id is unknown.
func (r *TransactionMemoryRepository) GetByID(_ context.Context, id string) (entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}
