package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// ITransactionRepository persists resolved payment attempts.
//
//go:generate mockgen -source=transaction_repository_interface.go -destination=mocks/transaction_repository_interface_mock.go -package=mock_interfaces
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
}
