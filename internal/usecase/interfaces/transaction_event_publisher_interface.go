package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

//go:generate mockgen -source=transaction_event_publisher_interface.go -destination=mocks/transaction_event_publisher_interface_mock.go -package=mock_interfaces
type ITransactionEventPublisher interface {
	PublishTransactionCompleted(ctx context.Context, t entities.Transaction) error
}
