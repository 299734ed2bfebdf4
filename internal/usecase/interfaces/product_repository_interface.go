package interfaces

import (
	"context"

	"storefront_checkout/internal/domain/entities"
)

// IProductRepository is the remote catalog source.
//
// DecrementStock returns an empty Product when the item does not exist or
// has no stock left.
//
//go:generate mockgen -source=product_repository_interface.go -destination=mocks/product_repository_interface_mock.go -package=mock_interfaces
type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	DecrementStock(ctx context.Context, id string) (entities.Product, error)
}
